package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"tvibe/internal/collection"
	"tvibe/internal/config"
	"tvibe/internal/preview"
	"tvibe/internal/targets/alacritty"
	"tvibe/internal/targets/nvim"
	"tvibe/internal/tui"
	"tvibe/pkg/logging"
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// filter returns the flag filter, or the configured one when no flag was given.
func (a *Application) filter() collection.Filter {
	if f := a.config.Options.Filter; f != nil {
		return *f
	}
	return a.config.TvibeConfig.DefaultFilter()
}

func (a *Application) params() collection.DeriveParams {
	return a.config.TvibeConfig.DeriveParams()
}

func (a *Application) resolveTheme() (*collection.Theme, error) {
	theme, err := ResolveTheme(a.services.Collection, a.config.Options, a.filter(), a.config.Rand)
	if err != nil {
		return nil, err
	}
	logging.Debug("Apply", "Resolved theme %s", theme.Name)
	return theme.Prepare(a.params()), nil
}

func (a *Application) resolveFont() (string, error) {
	if !a.config.Options.wantsFont() {
		return "", nil
	}
	families, err := a.services.FontFamilies()
	if err != nil {
		return "", err
	}
	font, err := ResolveFont(families, a.config.Options, a.config.Rand)
	if err != nil {
		return "", err
	}
	logging.Debug("Apply", "Resolved font %s", font)
	return font, nil
}

// runShow prints the theme instead of applying it.
func (a *Application) runShow(_ context.Context) error {
	theme, err := a.resolveTheme()
	if err != nil {
		return err
	}
	opts := a.config.Options
	out := a.config.Stdout

	var buf bytes.Buffer
	switch {
	case opts.ShowTOML:
		err = alacritty.WriteColors(&buf, theme.Colors)
	case opts.ShowFmt:
		err = preview.YAML(&buf, theme, a.params())
	}
	if err != nil {
		return err
	}

	if opts.Show || buf.Len() == 0 {
		if _, err := fmt.Fprintln(out, theme.Name); err != nil {
			return err
		}
		if err := preview.NewPrinter(out).Palette(theme.Palette()); err != nil {
			return err
		}
	}
	rendered := buf.String()
	if _, err := io.WriteString(out, rendered); err != nil {
		return err
	}

	if opts.Copy {
		return a.copyToClipboard(theme, rendered)
	}
	return nil
}

func (a *Application) copyToClipboard(theme *collection.Theme, rendered string) error {
	text := rendered
	if text == "" {
		text = theme.Name
	}
	if err := writeClipboard(text); err != nil {
		logging.Error("Apply", err, "Failed to copy to clipboard")
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	logging.Info("Apply", "Copied %s to clipboard", theme.Name)
	return nil
}

// runApply writes the theme and font into every enabled target.
func (a *Application) runApply(ctx context.Context) error {
	opts := a.config.Options

	var theme *collection.Theme
	if opts.wantsTheme() || !opts.wantsFont() {
		t, err := a.resolveTheme()
		if err != nil {
			return err
		}
		theme = t
	}
	font, err := a.resolveFont()
	if err != nil {
		return err
	}
	return a.apply(ctx, theme, font)
}

// RunPick lets the user choose a theme interactively and applies it.
func (a *Application) RunPick(ctx context.Context) error {
	logCh := logging.InitForTUI(a.level)
	lt, err := tui.Pick(a.services.Collection, a.filter(), logCh)
	logging.CloseTUIChannel()
	logging.InitForCLI(a.level, os.Stderr)
	if err != nil {
		if errors.Is(err, tui.ErrCancelled) {
			logging.Info("Picker", "No theme selected")
			return nil
		}
		return err
	}

	font, err := a.resolveFont()
	if err != nil {
		return err
	}
	return a.apply(ctx, lt.Theme().Prepare(a.params()), font)
}

func (a *Application) apply(ctx context.Context, theme *collection.Theme, font string) error {
	targets := a.config.TvibeConfig.Targets
	applied := 0

	if t := targets.Alacritty; t.IsEnabled() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := alacritty.Apply(config.ExpandPath(t.Path), theme, font); err != nil {
			logging.Error("Apply", err, "Failed to update alacritty")
			return err
		}
		applied++
	}

	if t := targets.Nvim; t.IsEnabled() && theme != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := nvim.Apply(config.ExpandPath(t.Path), theme); err != nil {
			logging.Error("Apply", err, "Failed to update neovim")
			return err
		}
		applied++
	}

	if applied == 0 {
		logging.Warn("Apply", "No targets enabled, nothing written")
	}
	return nil
}

// ListThemes prints the theme names under the active filter in columns.
func (a *Application) ListThemes(w io.Writer, width int) error {
	return preview.Columns(w, a.services.Collection.NameList(a.filter(), true), width)
}

// ListFonts prints the installed Nerd Font families in columns.
func (a *Application) ListFonts(w io.Writer, width int) error {
	families, err := a.services.FontFamilies()
	if err != nil {
		return err
	}
	if len(families) == 0 {
		logging.Warn("Fonts", "No Nerd Fonts found")
		return nil
	}
	return preview.Columns(w, families, width)
}
