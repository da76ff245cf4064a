// Package i18npatch merges the fixed translation overlay into the French and
// English locale files.
package i18npatch

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/louisbranch/i18n-overlay/internal/platform/config"
	"github.com/louisbranch/i18n-overlay/internal/translations/jsondoc"
	"github.com/louisbranch/i18n-overlay/internal/translations/patcher"
	"golang.org/x/text/language"
)

// Config holds i18n patch command configuration.
type Config struct {
	FRPath        string `env:"I18N_PATCH_FR_PATH" envDefault:"fr.json"`
	ENPath        string `env:"I18N_PATCH_EN_PATH" envDefault:"en.json"`
	MessageLocale string `env:"I18N_PATCH_MESSAGE_LOCALE" envDefault:"en-US"`
	DryRun        bool
}

// Target is one locale file to patch.
type Target struct {
	Path   string
	Locale language.Tag
}

// French reports whether the target takes the French variant of each label.
func (t Target) French() bool {
	base, _ := t.Locale.Base()
	french, _ := language.French.Base()
	return base == french
}

// ParseConfig loads env defaults and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.FRPath, "fr", cfg.FRPath, "path to the French translation file (default: I18N_PATCH_FR_PATH or fr.json)")
	fs.StringVar(&cfg.ENPath, "en", cfg.ENPath, "path to the English translation file (default: I18N_PATCH_EN_PATH or en.json)")
	fs.StringVar(&cfg.MessageLocale, "message-locale", cfg.MessageLocale, "locale of error messages")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "report which files would change without writing them")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Targets returns the files to patch, French first.
func (cfg Config) Targets() []Target {
	return []Target{
		{Path: cfg.FRPath, Locale: language.French},
		{Path: cfg.ENPath, Locale: language.English},
	}
}

// Run patches every target in order and stops at the first failure.
func Run(cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, "i18n-patch: ", 0)

	targets := cfg.Targets()
	for _, target := range targets {
		if strings.TrimSpace(target.Path) == "" {
			return fmt.Errorf("%s path is required", target.Locale)
		}
	}

	for _, target := range targets {
		logger.Printf("patching %s (%s)", target.Path, target.Locale)
		if cfg.DryRun {
			changed, err := wouldChange(target)
			if err != nil {
				return fmt.Errorf("check %s: %w", target.Path, err)
			}
			status := "up to date"
			if changed {
				status = "would update"
			}
			if _, err := fmt.Fprintf(out, "%s %s (%s)\n", status, target.Path, target.Locale); err != nil {
				return err
			}
			continue
		}

		if err := patcher.Patch(target.Path, target.French()); err != nil {
			return fmt.Errorf("patch %s: %w", target.Path, err)
		}
		if _, err := fmt.Fprintf(out, "patched %s (%s)\n", target.Path, target.Locale); err != nil {
			return err
		}
	}

	if cfg.DryRun {
		return nil
	}
	_, err := fmt.Fprintln(out, "translations updated")
	return err
}

func wouldChange(target Target) (bool, error) {
	doc, err := jsondoc.Load(target.Path)
	if err != nil {
		return false, err
	}
	before := doc.Raw()
	if err := patcher.Apply(doc, target.French()); err != nil {
		return false, err
	}
	return !bytes.Equal(before, doc.Bytes()), nil
}
