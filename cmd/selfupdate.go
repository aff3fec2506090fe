package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"tvibe/pkg/logging"
)

const githubRepoSlug = "tvibe-sh/tvibe"

// release is the latest published build for this platform.
type release struct {
	version   *semver.Version
	assetURL  string
	assetName string
}

// Swapped in tests.
var (
	detectLatest   = detectLatestRelease
	updateTo       = selfupdate.UpdateTo
	executablePath = selfupdate.ExecutablePath
)

func detectLatestRelease(ctx context.Context, slug string) (release, bool, error) {
	rel, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(slug))
	if err != nil || !found {
		return release{}, found, err
	}
	v, err := semver.NewVersion(rel.Version())
	if err != nil {
		return release{}, false, fmt.Errorf("release %q has an invalid version: %w", rel.Version(), err)
	}
	return release{version: v, assetURL: rel.AssetURL, assetName: rel.AssetName}, true, nil
}

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update tvibe to the latest release",
		Long: `Checks for the latest release of tvibe on GitHub and, when it is newer
than the running version, replaces the current executable with it.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	current := rootCmd.Version
	if current == "" || current == "dev" {
		return errors.New("cannot self-update a development version")
	}
	currentVersion, err := semver.NewVersion(current)
	if err != nil {
		return fmt.Errorf("current version %q is not a release version: %w", current, err)
	}

	ctx := context.Background()
	if cmd != nil && cmd.Context() != nil {
		ctx = cmd.Context()
	}

	latest, found, err := detectLatest(ctx, githubRepoSlug)
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s could not be found", githubRepoSlug)
	}

	if !latest.version.GreaterThan(currentVersion) {
		logging.Info("SelfUpdate", "Current version (%s) is the latest", current)
		return nil
	}

	exe, err := executablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}
	logging.Info("SelfUpdate", "Updating %s from %s to %s", exe, current, latest.version)
	if err := updateTo(ctx, latest.assetURL, latest.assetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}
	logging.Info("SelfUpdate", "Successfully updated to version %s", latest.version)
	return nil
}
