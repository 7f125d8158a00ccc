package client

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/CWSpear/stumpy/internal/handlers/tracker/v1alpha1"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List every item and its level",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client v1alpha1.TrackerServiceClient) error {
			resp, err := client.ListItems(ctx, &v1alpha1.ListItemsRequest{})
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "KEY\tNAME\tLEVEL")
			for _, item := range resp.Items {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%d/%d\n", item.Key, item.Name, item.Level, item.MaxLevel)
			}
			return w.Flush()
		})
	},
}

var setItemCmd = &cobra.Command{
	Use:   "set-item [item] [level]",
	Short: "Set an item to an explicit level",
	Long: `Set an item to an explicit level. Examples:

  set-item glove 2
  set-item sword 0`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		level, err := strconv.ParseInt(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid level %q: %w", args[1], err)
		}

		return withClient(func(ctx context.Context, client v1alpha1.TrackerServiceClient) error {
			resp, err := client.SetItemLevel(ctx, &v1alpha1.SetItemLevelRequest{
				Item:  args[0],
				Level: int32(level),
			})
			if err != nil {
				return fmt.Errorf("failed to set item: %w", err)
			}
			printItem(resp.Item)
			return nil
		})
	},
}

var incrementItemCmd = &cobra.Command{
	Use:   "increment-item [item]",
	Short: "Step an item up one level, wrapping to zero past its maximum",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client v1alpha1.TrackerServiceClient) error {
			resp, err := client.IncrementItem(ctx, &v1alpha1.IncrementItemRequest{Item: args[0]})
			if err != nil {
				return fmt.Errorf("failed to increment item: %w", err)
			}
			printItem(resp.Item)
			return nil
		})
	},
}

func printItem(item *v1alpha1.Item) {
	fmt.Printf("%s (%s): %d/%d\n", item.Name, item.Key, item.Level, item.MaxLevel)
}
