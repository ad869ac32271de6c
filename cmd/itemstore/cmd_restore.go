package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kwhite/itemstore/internal/backup"
	"go.uber.org/zap"
)

func runRestore(args []string, logger *zap.Logger) {
	fs := flag.NewFlagSet("restore", flag.ExitOnError)
	input := fs.String("input", "", "backup archive to restore (required)")
	dataDir := fs.String("data-dir", ".", "target directory for restored files")
	force := fs.Bool("force", false, "overwrite existing files")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *input == "" {
		fmt.Fprintln(os.Stderr, "error: --input is required")
		fs.Usage()
		os.Exit(1)
	}

	ctx := context.Background()
	if err := backup.Restore(ctx, *input, *dataDir, *force); err != nil {
		logger.Fatal("restore failed", zap.Error(err))
	}
	logger.Info("restore complete", zap.String("data_dir", *dataDir))
}
