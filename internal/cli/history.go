package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubekit/cubekit/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scrambles and their solutions",
	Long: `List the most recent scrambles saved with --save, newest first,
along with any recorded solutions.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of scrambles to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewScrambleRepository(db)
	scrambles, err := repo.ListScrambles(historyLimit)
	if err != nil {
		return err
	}

	if len(scrambles) == 0 {
		fmt.Println("No saved scrambles. Use 'cubekit scramble --save' to record one.")
		return nil
	}

	for _, s := range scrambles {
		fmt.Printf("%s  %s\n", s.CreatedAt.Local().Format(time.DateTime), s.ScrambleID)
		fmt.Printf("  scramble: %s (%d moves)\n", s.MovesText, s.MoveCount)
		if s.Seed != nil {
			fmt.Printf("  seed: %d\n", *s.Seed)
		}

		solutions, err := repo.ListSolutions(s.ScrambleID)
		if err != nil {
			return err
		}
		for _, sol := range solutions {
			fmt.Printf("  solution: %s (%d moves, %dms)\n", sol.MovesText, sol.MoveCount, sol.DurationMs)
		}
		fmt.Println()
	}

	return nil
}
