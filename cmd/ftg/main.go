package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/temirov/ftg/internal/cli"
	"github.com/temirov/ftg/internal/utils"
)

// usageExitStatus is returned after --help, matching the established tool.
const usageExitStatus = 1

// main is the entry point for the ftg command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(loggerInstance); applicationExecutionError != nil {
		if errors.Is(applicationExecutionError, cli.ErrUsageRequested) {
			_ = loggerInstance.Sync()
			os.Exit(usageExitStatus)
		}
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
