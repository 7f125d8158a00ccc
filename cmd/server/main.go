// Package main is the entry point for the tracker server and its test client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CWSpear/stumpy/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "stumpy",
	Short: "Randomizer progress tracker",
	Long:  `Stumpy tracks items, dungeons and item locations for a randomized run and reports what is reachable.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
