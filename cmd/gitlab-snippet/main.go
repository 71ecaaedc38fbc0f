package main

import (
	"os"

	"github.com/efrecon/gitlab-snippet/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
