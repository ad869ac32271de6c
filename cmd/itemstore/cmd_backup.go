package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kwhite/itemstore/internal/backup"
	"github.com/kwhite/itemstore/internal/config"
	"go.uber.org/zap"
)

func runBackup(args []string, logger *zap.Logger) {
	fs := flag.NewFlagSet("backup", flag.ExitOnError)
	output := fs.String("output", "", "output file path (default: itemstore-backup-{timestamp}.tar.gz)")
	configFile := fs.String("config", "", "path to config file (also included in the backup)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}
	dbPath := cfg.GetString("database.path")

	if *output == "" {
		*output = fmt.Sprintf("itemstore-backup-%s.tar.gz", time.Now().Format("20060102-150405"))
	}

	ctx := context.Background()
	if err := backup.Backup(ctx, dbPath, *configFile, *output); err != nil {
		logger.Fatal("backup failed", zap.Error(err))
	}
	logger.Info("backup created",
		zap.String("database", dbPath),
		zap.String("output", *output))
}
