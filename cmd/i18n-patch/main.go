// Package main merges the fixed translation overlay into locale files.
package main

import (
	"flag"
	"os"

	"github.com/louisbranch/i18n-overlay/internal/platform/config"
	apperrors "github.com/louisbranch/i18n-overlay/internal/platform/errors"
	"github.com/louisbranch/i18n-overlay/internal/tools/i18npatch"
)

func main() {
	cfg, err := i18npatch.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := i18npatch.Run(cfg, os.Stdout, os.Stderr); err != nil {
		config.ExitCodef(apperrors.ExitCode(err), "Error: %s (%v)", apperrors.UserMessage(err, cfg.MessageLocale), err)
	}
}
