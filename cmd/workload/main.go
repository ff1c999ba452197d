package main

import (
	"log"
	"os"

	"github.com/Scusemua/go-utils/config"

	"github.com/scusemua/containers/common/configuration"
	"github.com/scusemua/containers/common/utils"
)

var (
	options      = configuration.DefaultContainerOptions()
	globalLogger = config.GetLogger("")
)

// Ensure that the options/configuration is valid.
func ValidateOptions() {
	flags, err := config.ValidateOptions(options)
	if err == config.ErrPrintUsage {
		flags.PrintDefaults()
		os.Exit(0)
	} else if err != nil {
		log.Fatal(err)
	}
}

func main() {
	ValidateOptions()

	if options.PrettyPrintOptions {
		globalLogger.Info("Starting workload with the following options:\n%s", options.PrettyString(2))
	} else {
		globalLogger.Info("Starting workload with the following options: %v", options)
	}

	workload := NewWorkload(options)
	err := workload.Run()

	for el := workload.Report().Front(); el != nil; el = el.Next() {
		globalLogger.Info("%-14s %v", el.Key, el.Value)
	}

	if err != nil {
		globalLogger.Error(utils.RedStyle.Render("Workload failed: %v"), err)
		os.Exit(1)
	}

	globalLogger.Info(utils.GreenStyle.Render("Workload completed. Slots in use: %d."), workload.Budget().InUse())
}
