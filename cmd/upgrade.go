package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const releaseRepo = "jvanvinkenroye/cinemaquery"

var checkOnly bool

// upgradeCmd represents the upgrade command
var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade cinemaquery to the latest release",
	// Self-update needs no API client.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runUpgrade,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)

	upgradeCmd.Flags().BoolVar(&checkOnly, "check", false, "only check for a newer release")
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	if _, err := semver.ParseTolerant(version); err != nil {
		return fmt.Errorf("cannot upgrade a non-release build (%s); install a released binary first", version)
	}

	latest, found, err := selfupdate.DetectLatest(cmd.Context(), selfupdate.ParseSlug(releaseRepo))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", releaseRepo)
	}

	if latest.LessOrEqual(version) {
		fmt.Printf("cinemaquery %s is up to date\n", version)
		return nil
	}

	fmt.Printf("Newer release available: %s (current %s)\n", latest.Version(), version)
	if checkOnly {
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}

	if err := selfupdate.UpdateTo(cmd.Context(), latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	fmt.Printf("Successfully updated to %s\n", latest.Version())
	return nil
}
