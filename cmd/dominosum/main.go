package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/dominosum/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dominosum",
		Short: "Domino block-sum logic puzzle",
		Long: `Dominosum is a single-player logic puzzle: eight dominoes cover a 4x4
grid, and the four 2x2 block sums must match the hidden solution's targets.`,
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.PlayCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
