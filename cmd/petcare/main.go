package main

import (
	"os"

	"petcare-go/pkg/logger"
)

func main() {
	log := logger.NewFromEnv()

	if err := newRootCmd(log).Execute(); err != nil {
		log.Critical("petcare: command failed", "err", err)
		os.Exit(1)
	}
}
