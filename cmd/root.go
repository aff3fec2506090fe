package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tvibe/internal/app"
	"tvibe/internal/collection"
	"tvibe/internal/preview"
)

// Persistent flags shared by every command.
var (
	configPath string
	logLevel   string
)

// rootFlags are the theme and font selection flags of the root command.
type rootFlags struct {
	theme     string
	rand      bool
	dark      bool
	light     bool
	themeList bool
	font      string
	fontRand  bool
	fontList  bool
	show      bool
	showTOML  bool
	showFmt   bool
	copy      bool
}

var flags rootFlags

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tvibe [THEME]",
	Short: "Quickly change your terminal theme",
	Long: `tvibe applies one of the embedded terminal color themes to Alacritty and
Neovim. Themes are picked by fuzzy name, at random, or interactively with
'tvibe pick'. A full UI palette (background and foreground ramps, dim colors,
diff and comment colors) is derived from each theme's 22 base colors.

  tvibe dracula -f jetbrains   # set a theme and a Nerd Font (fuzzy match)
  tvibe -rdF                   # random dark theme and random Nerd Font
  tvibe -rls                   # show a random light theme's palette`,
	Args: cobra.MaximumNArgs(1),
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. no matching theme, unwritable config)
	SilenceUsage: true,
	RunE:         runRoot,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "tvibe version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// options turns the parsed flags and the optional positional theme into
// application options.
func (f rootFlags) options(args []string) app.Options {
	opts := app.Options{
		Theme:    f.theme,
		Rand:     f.rand,
		Font:     f.font,
		FontRand: f.fontRand,
		Show:     f.show,
		ShowTOML: f.showTOML,
		ShowFmt:  f.showFmt,
		Copy:     f.copy,
	}
	if opts.Theme == "" && len(args) > 0 {
		opts.Theme = args[0]
	}
	if f.dark || f.light {
		filter := collection.FilterFromFlags(f.light, f.dark)
		opts.Filter = &filter
	}
	return opts
}

// hasAction reports whether any flag asks for work beyond printing help.
func (f rootFlags) hasAction(args []string) bool {
	return len(args) > 0 || f.theme != "" || f.rand || f.font != "" || f.fontRand ||
		f.themeList || f.fontList
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !flags.hasAction(args) {
		return cmd.Help()
	}

	cfg := app.NewConfig(configPath, logLevel, flags.options(args), cmd.OutOrStdout())
	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if flags.themeList || flags.fontList {
		width := preview.TerminalWidth(os.Stdout)
		if flags.themeList {
			if err := application.ListThemes(cmd.OutOrStdout(), width); err != nil {
				return err
			}
		}
		if flags.fontList {
			if err := application.ListFonts(cmd.OutOrStdout(), width); err != nil {
				return err
			}
		}
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newPickCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newBuildCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $HOME/.config/tvibe/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	f := rootCmd.Flags()
	f.StringVarP(&flags.theme, "theme", "t", "", "apply a theme by name (fuzzy matching)")
	f.BoolVarP(&flags.rand, "rand", "r", false, "apply a random theme")
	f.BoolVarP(&flags.dark, "dark", "d", false, "only consider dark themes")
	f.BoolVarP(&flags.light, "light", "l", false, "only consider light themes")
	f.BoolVar(&flags.themeList, "theme-list", false, "list available themes")
	f.StringVarP(&flags.font, "font", "f", "", "set the font family by name (fuzzy matching)")
	f.BoolVarP(&flags.fontRand, "font-rand", "F", false, "pick a random Nerd Font")
	f.BoolVar(&flags.fontList, "font-list", false, "list installed Nerd Fonts")
	f.BoolVarP(&flags.show, "show", "s", false, "show the theme palette without applying it")
	f.BoolVar(&flags.showTOML, "show-toml", false, "print the theme as an Alacritty colors table")
	f.BoolVar(&flags.showFmt, "show-fmt", false, "print the full derived palette as YAML")
	f.BoolVar(&flags.copy, "copy", false, "copy the shown output to the clipboard")
}
