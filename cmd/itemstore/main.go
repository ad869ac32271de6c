package main

import (
	"fmt"
	"os"

	"github.com/kwhite/itemstore/internal/version"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	switch os.Args[1] {
	case "backup":
		runBackup(os.Args[2:], logger)
	case "restore":
		runRestore(os.Args[2:], logger)
	case "version":
		fmt.Println(version.Info())
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: itemstore <command> [flags]

commands:
  backup    archive the item database to a tar.gz file
  restore   restore an item database from a backup archive
  version   print version information`)
}
