package repository

import (
	"linkbak/internal/db"
	"linkbak/internal/model"
)

type RunRepository struct{}

func NewRunRepository() *RunRepository {
	return &RunRepository{}
}

func (r *RunRepository) Save(run model.Run) error {
	return db.DB.Create(&run).Error
}

func (r *RunRepository) GetRecent(limit int) ([]model.Run, error) {
	var runs []model.Run
	result := db.DB.
		Order("started_at desc").
		Limit(limit).
		Find(&runs)

	return runs, result.Error
}

func (r *RunRepository) GetFailed() ([]model.Run, error) {
	var runs []model.Run
	result := db.DB.
		Where("status = ?", model.RunFailed).
		Order("started_at desc").
		Find(&runs)

	return runs, result.Error
}

type Stats struct {
	Total   int64
	Success int64
	Failed  int64
}

func (r *RunRepository) GetStats() (Stats, error) {
	var stats Stats
	if err := db.DB.Model(&model.Run{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}

	if err := db.DB.Model(&model.Run{}).
		Where("status = ?", model.RunSuccess).
		Count(&stats.Success).Error; err != nil {
		return stats, err
	}

	stats.Failed = stats.Total - stats.Success
	return stats, nil
}
