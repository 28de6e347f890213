package main

import (
	"github.com/reviewlab/reviewgraph/internal/server"
	"github.com/reviewlab/reviewgraph/internal/util"
	"github.com/reviewlab/reviewgraph/pkg/logger"
	"github.com/reviewlab/reviewgraph/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
