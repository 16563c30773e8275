package main

import (
	"os"

	"github.com/gitdraft/gitdraft/internal/cli"
	"github.com/gitdraft/gitdraft/internal/logger"
)

func main() {
	logger.Setup()
	os.Exit(cli.Run())
}
