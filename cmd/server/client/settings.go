package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CWSpear/stumpy/internal/handlers/tracker/v1alpha1"
)

var snapshotTTL time.Duration

var settingsCmd = &cobra.Command{
	Use:   "settings [sword-logic] [start-state]",
	Short: "Show the settings, or replace them",
	Long: `Show the settings, or replace them. Examples:

  settings
  settings swordless standard`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client v1alpha1.TrackerServiceClient) error {
			if len(args) == 0 {
				resp, err := client.GetSettings(ctx, &v1alpha1.GetSettingsRequest{})
				if err != nil {
					return fmt.Errorf("failed to get settings: %w", err)
				}
				printSettings(resp.Settings)
				return nil
			}

			resp, err := client.UpdateSettings(ctx, &v1alpha1.UpdateSettingsRequest{
				Settings: &v1alpha1.Settings{SwordLogic: args[0], StartState: args[1]},
			})
			if err != nil {
				return fmt.Errorf("failed to update settings: %w", err)
			}
			printSettings(resp.Settings)
			return nil
		})
	},
}

var saveSnapshotCmd = &cobra.Command{
	Use:   "save-snapshot",
	Short: "Store the current tracker state",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client v1alpha1.TrackerServiceClient) error {
			resp, err := client.SaveSnapshot(ctx, &v1alpha1.SaveSnapshotRequest{
				TTLSeconds: int64(snapshotTTL / time.Second),
			})
			if err != nil {
				return fmt.Errorf("failed to save snapshot: %w", err)
			}

			fmt.Printf("Snapshot: %s\n", resp.SnapshotID)
			fmt.Printf("Created: %s\n", time.Unix(resp.CreatedAt, 0).UTC().Format(time.RFC3339))
			if resp.ExpiresAt != 0 {
				fmt.Printf("Expires: %s\n", time.Unix(resp.ExpiresAt, 0).UTC().Format(time.RFC3339))
			}
			return nil
		})
	},
}

var loadSnapshotCmd = &cobra.Command{
	Use:   "load-snapshot [snapshot-id]",
	Short: "Restore a stored tracker state",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client v1alpha1.TrackerServiceClient) error {
			resp, err := client.LoadSnapshot(ctx, &v1alpha1.LoadSnapshotRequest{SnapshotID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to load snapshot: %w", err)
			}
			fmt.Printf("Restored %s\n", args[0])
			printSettings(resp.Settings)
			return nil
		})
	},
}

func init() {
	saveSnapshotCmd.Flags().DurationVar(&snapshotTTL, "ttl", 0, "Expire the snapshot after this long (0 uses the server default)")
}

func printSettings(s *v1alpha1.Settings) {
	fmt.Printf("Sword logic: %s\n", s.SwordLogic)
	fmt.Printf("Start state: %s\n", s.StartState)
}
