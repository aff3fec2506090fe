package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tvibe/internal/app"
	"tvibe/internal/collection"
)

func newPickCmd() *cobra.Command {
	var (
		dark, light bool
		font        string
		fontRand    bool
	)
	c := &cobra.Command{
		Use:   "pick",
		Short: "Choose a theme interactively",
		Long: `Opens a full screen picker: type to fuzzy search, tab to cycle the
dark/light filter, enter to apply the highlighted theme, esc to cancel.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.Options{Font: font, FontRand: fontRand}
			if dark || light {
				f := collection.FilterFromFlags(light, dark)
				opts.Filter = &f
			}
			application, err := app.NewApplication(app.NewConfig(configPath, logLevel, opts, cmd.OutOrStdout()))
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return application.RunPick(ctx)
		},
	}
	c.Flags().BoolVarP(&dark, "dark", "d", false, "start with the dark filter")
	c.Flags().BoolVarP(&light, "light", "l", false, "start with the light filter")
	c.Flags().StringVarP(&font, "font", "f", "", "also set the font family by name (fuzzy matching)")
	c.Flags().BoolVarP(&fontRand, "font-rand", "F", false, "also pick a random Nerd Font")
	return c
}
