package client

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/CWSpear/stumpy/internal/handlers/tracker/v1alpha1"
)

var dungeonWorld string

var dungeonsCmd = &cobra.Command{
	Use:   "dungeons",
	Short: "List dungeons with their progress",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client v1alpha1.TrackerServiceClient) error {
			resp, err := client.ListDungeons(ctx, &v1alpha1.ListDungeonsRequest{World: dungeonWorld})
			if err != nil {
				return fmt.Errorf("failed to list dungeons: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "KEY\tBOSS\tDEFEATED\tBEATABLE\tCHESTS\tREWARD\tLOCK")
			for _, d := range resp.Dungeons {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%t\t%t\t%d/%d\t%s\t%s\n",
					d.Key, d.Boss, d.BossDefeated, d.CanDefeatBoss,
					d.ItemChests, d.MaxItemChests, d.Reward, d.EntranceLock)
			}
			return w.Flush()
		})
	},
}

var dungeonCmd = &cobra.Command{
	Use:   "dungeon [dungeon] [action]",
	Short: "Show a dungeon, or apply an action to it",
	Long: `Show a dungeon, or apply an action to it. Actions:

  toggle-defeat, toggle-big-key, cycle-reward, cycle-entrance-lock,
  cycle-boss-forward, cycle-boss-backward, decrement-item-chests,
  decrement-total-chests, decrement-retro-chests, increment-small-keys, reset

Examples:

  dungeon misery_mire
  dungeon misery_mire cycle-entrance-lock`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client v1alpha1.TrackerServiceClient) error {
			if len(args) == 1 {
				resp, err := client.GetDungeon(ctx, &v1alpha1.GetDungeonRequest{Dungeon: args[0]})
				if err != nil {
					return fmt.Errorf("failed to get dungeon: %w", err)
				}
				printDungeon(resp.Dungeon)
				return nil
			}

			resp, err := client.UpdateDungeon(ctx, &v1alpha1.UpdateDungeonRequest{
				Dungeon: args[0],
				Action:  args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to update dungeon: %w", err)
			}
			printDungeon(resp.Dungeon)
			return nil
		})
	},
}

var bossCmd = &cobra.Command{
	Use:   "boss [dungeon]",
	Short: "Check whether the boss placed in a dungeon can be defeated",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client v1alpha1.TrackerServiceClient) error {
			resp, err := client.CanDefeatBoss(ctx, &v1alpha1.CanDefeatBossRequest{Dungeon: args[0]})
			if err != nil {
				return fmt.Errorf("failed to check boss: %w", err)
			}
			fmt.Printf("%s (placed boss: %s): defeatable=%t\n", resp.Dungeon, resp.Boss, resp.Defeatable)
			return nil
		})
	},
}

func init() {
	dungeonsCmd.Flags().StringVar(&dungeonWorld, "world", "", "Only list dungeons of one world (light, dark)")
}

func printDungeon(d *v1alpha1.Dungeon) {
	fmt.Printf("%s (%s)\n", d.Name, d.Key)
	fmt.Printf("  World: %s\n", d.World)
	fmt.Printf("  Boss: %s (placed: %s, defeated: %t, beatable: %t)\n", d.Boss, d.BossID, d.BossDefeated, d.CanDefeatBoss)
	fmt.Printf("  Item chests: %d/%d\n", d.ItemChests, d.MaxItemChests)
	fmt.Printf("  Total chests: %d/%d\n", d.TotalChests, d.MaxTotalChests)
	fmt.Printf("  Retro chests: %d\n", d.RetroChests)
	fmt.Printf("  Small keys: %d/%d\n", d.SmallKeys, d.MaxSmallKeys)
	fmt.Printf("  Big key: %t\n", d.BigKey)
	fmt.Printf("  Reward: %s\n", d.Reward)
	fmt.Printf("  Entrance lock: %s\n", d.EntranceLock)
	if d.Requirement != "" {
		fmt.Printf("  Requires: %s\n", d.Requirement)
	}
}
