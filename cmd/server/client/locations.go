package client

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/CWSpear/stumpy/internal/handlers/tracker/v1alpha1"
)

var (
	locationWorld string
	hideOpened    bool
)

var availabilityCmd = &cobra.Command{
	Use:   "availability [location]",
	Short: "Show the availability of one location, or of all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client v1alpha1.TrackerServiceClient) error {
			if len(args) == 1 {
				resp, err := client.GetItemLocation(ctx, &v1alpha1.GetItemLocationRequest{Location: args[0]})
				if err != nil {
					return fmt.Errorf("failed to get location: %w", err)
				}
				printLocation(resp.Location)
				return nil
			}

			resp, err := client.ListAvailability(ctx, &v1alpha1.ListAvailabilityRequest{World: locationWorld})
			if err != nil {
				return fmt.Errorf("failed to list availability: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "KEY\tWORLD\tAVAILABILITY\tOPENED")
			for _, loc := range resp.Locations {
				if hideOpened && loc.Opened {
					continue
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", loc.Key, loc.World, loc.Availability, loc.Opened)
			}
			return w.Flush()
		})
	},
}

var toggleLocationCmd = &cobra.Command{
	Use:   "toggle-location [location]",
	Short: "Mark a location opened, or unmark it",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client v1alpha1.TrackerServiceClient) error {
			resp, err := client.ToggleLocationOpened(ctx, &v1alpha1.ToggleLocationOpenedRequest{Location: args[0]})
			if err != nil {
				return fmt.Errorf("failed to toggle location: %w", err)
			}
			printLocation(resp.Location)
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset items, dungeons and locations",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client v1alpha1.TrackerServiceClient) error {
			if _, err := client.ResetAll(ctx, &v1alpha1.ResetAllRequest{}); err != nil {
				return fmt.Errorf("failed to reset: %w", err)
			}
			fmt.Println("Tracker reset")
			return nil
		})
	},
}

func init() {
	availabilityCmd.Flags().StringVar(&locationWorld, "world", "", "Only list locations of one world (light, dark)")
	availabilityCmd.Flags().BoolVar(&hideOpened, "hide-opened", false, "Skip locations already opened")
}

func printLocation(loc *v1alpha1.Location) {
	fmt.Printf("%s (%s, %s world): %s", loc.Name, loc.Key, loc.World, loc.Availability)
	if loc.Opened {
		fmt.Print(" [opened]")
	}
	fmt.Println()
}
