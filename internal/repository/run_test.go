package repository

import (
	"path/filepath"
	"testing"
	"time"

	"linkbak/internal/db"
	"linkbak/internal/model"
)

func setupDB(t *testing.T) *RunRepository {
	t.Helper()

	if err := db.Init(filepath.Join(t.TempDir(), "test.db")); err != nil {
		t.Fatal(err)
	}

	return NewRunRepository()
}

func TestSaveAndGetRecent(t *testing.T) {
	repo := setupDB(t)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	runs := []model.Run{
		{JobName: "j1", Snapshot: "2024-05-01_10-00-00", Status: model.RunSuccess, StartedAt: base},
		{JobName: "j1", Snapshot: "2024-05-01_11-00-00", Status: model.RunFailed, ExitCode: 10, StartedAt: base.Add(time.Hour)},
		{JobName: "j2", Snapshot: "2024-05-01_12-00-00", Status: model.RunSuccess, StartedAt: base.Add(2 * time.Hour)},
	}
	for _, r := range runs {
		if err := repo.Save(r); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := repo.GetRecent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("GetRecent(2) returned %d runs", len(recent))
	}
	if recent[0].Snapshot != "2024-05-01_12-00-00" {
		t.Errorf("newest run first, got %q", recent[0].Snapshot)
	}
}

func TestGetFailed(t *testing.T) {
	repo := setupDB(t)

	if err := repo.Save(model.Run{JobName: "j1", Snapshot: "a", Status: model.RunSuccess, StartedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(model.Run{JobName: "j1", Snapshot: "b", Status: model.RunFailed, ExitCode: 10, StartedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}

	failed, err := repo.GetFailed()
	if err != nil {
		t.Fatal(err)
	}
	if len(failed) != 1 || failed[0].Snapshot != "b" {
		t.Errorf("GetFailed() = %+v", failed)
	}
}

func TestGetStats(t *testing.T) {
	repo := setupDB(t)

	for i, status := range []model.RunStatus{model.RunSuccess, model.RunSuccess, model.RunFailed} {
		run := model.Run{JobName: "j1", Snapshot: string(rune('a' + i)), Status: status, StartedAt: time.Now()}
		if err := repo.Save(run); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := repo.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 3 || stats.Success != 2 || stats.Failed != 1 {
		t.Errorf("GetStats() = %+v", stats)
	}
}
