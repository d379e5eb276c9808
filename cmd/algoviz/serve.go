package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/logger"
	"github.com/katalvlaran/algoviz/server"
)

func runServe(args []string, _, stderr io.Writer) error {
	fs := newFlagSet("serve", stderr)
	path := fs.String("config", "", "YAML configuration file")
	addr := fs.String("addr", "", "listen address, overrides server.addr")
	mode := fs.String("log-mode", "", "log mode: dev|prod|silence, overrides server.logMode")
	envFile := fs.String("env", "", "dotenv file with ALGOVIZ_* variables; the process environment wins")
	if err := parse(fs, args); err != nil {
		return err
	}

	cfg, err := loadConfig(*path)
	if err != nil {
		return err
	}
	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	lookup, err := config.LookupEnv(envFiles...)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *mode != "" {
		m, err := logger.ParseMode(*mode)
		if err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		cfg.Server.LogMode = m
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(cfg.Server.LogMode, nil)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("algoviz starting", slog.String("addr", cfg.Server.Addr), slog.String("logMode", cfg.Server.LogMode.String()))
	if err := server.New(cfg, log).Run(ctx); err != nil {
		return err
	}
	log.Info("algoviz stopped")

	return nil
}
