package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"FishLog/internal/cli/commands"
	"FishLog/internal/config"

	"go.uber.org/zap"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	// в CLI пишем в stderr только предупреждения и ошибки
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	commands.Logger = logger.Sugar()
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// dispatcher
	exitCode := commands.Dispatch(ctx, cfg, flag.Args())
	if exitCode == 0 {
		return
	}
	_ = logger.Sync()
	os.Exit(exitCode)
}

func printVersion() {
	fmt.Printf("FishLog CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
