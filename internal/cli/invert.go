package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubekit/cubekit"
)

var invertCmd = &cobra.Command{
	Use:   "invert <moves>",
	Short: "Print the inverse of a move sequence",
	Long: `Print the sequence that undoes the given moves: the moves in
reverse order with each turn inverted.

Example:
  cubekit invert "R U R' U'"`,
	Args: cobra.ExactArgs(1),
	RunE: runInvert,
}

func init() {
	rootCmd.AddCommand(invertCmd)
}

func runInvert(cmd *cobra.Command, args []string) error {
	moves, err := cubekit.ParseMoves(args[0])
	if err != nil {
		return err
	}
	fmt.Println(cubekit.FormatMoves(cubekit.InvertMoves(moves)))
	return nil
}
