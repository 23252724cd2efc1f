// cmd/tabmate/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"

	"github.com/bethropolis/tabmate/internal/app"
	"github.com/bethropolis/tabmate/internal/config"
	"github.com/bethropolis/tabmate/internal/logger"
)

func main() {
	// --- Argument & Flag Parsing ---
	var flags config.Flags
	args, err := flags.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		stlog.Fatalf("Error parsing flags: %v", err)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}
	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	// --- Configuration ---
	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flag.CommandLine, &flags)

	// --- Logger Initialization ---
	logger.SetDebugFilter(*flags.DebugLog)
	logOut, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("%v", err)
	}
	defer logOut.Close()
	logger.Init(cfg.Logger, logOut)

	var unknown *config.UnknownKeysError
	switch {
	case errors.As(cfgErr, &unknown):
		logger.Warnf("config: %v", cfgErr)
	case cfgErr != nil:
		logger.Errorf("config: %v, using defaults", cfgErr)
	}

	logger.Infof("starting %s %s", config.AppName, config.Version)
	logger.Debugf("indent options %+v, %d fields", cfg.Tabmate, cfg.Editor.Fields)
	if filePath != "" {
		logger.Debugf("file path specified: %s", filePath)
	}

	// --- Create and Run App ---
	tabmateApp, err := app.NewApp(cfg, filePath, nil)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		logOut.Close()
		os.Exit(1)
	}

	if err := tabmateApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		logOut.Close()
		os.Exit(1)
	}

	logger.Infof("%s finished", config.AppName)
}
