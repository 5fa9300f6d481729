package main

import (
	"linkbak/cmd"
	"os"
)

func main() {
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "backup")
	}
	cmd.Execute()
}
