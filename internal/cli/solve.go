package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubekit/cubekit"
	"github.com/cubekit/cubekit/internal/solver"
	"github.com/cubekit/cubekit/internal/storage"
)

var (
	solveMaxDepth int
	solveTimeout  time.Duration
	solveSave     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <scramble>",
	Short: "Search for a solution to a short scramble",
	Long: `Apply the given scramble to a solved cube and search for a shortest
solution with breadth-first search.

The search is exhaustive, so only short scrambles (up to roughly 6
moves of net effect) are practical.

Examples:
  cubekit solve "R U F"
  cubekit solve "R U R' U'" --max-depth 5 --timeout 30s`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&solveMaxDepth, "max-depth", solver.DefaultMaxDepth, "Maximum solution length to consider")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", time.Minute, "Abort the search after this long")
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "Save the scramble and solution to the history database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	scramble, err := cubekit.ParseMoves(args[0])
	if err != nil {
		return err
	}
	state := cubekit.Solved().ApplySequence(scramble)

	fmt.Printf("Scramble: %s\n\n", cubekit.FormatMoves(scramble))
	fmt.Println(renderState(state))

	ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
	defer cancel()

	sv := &solver.Solver{MaxDepth: solveMaxDepth}
	start := time.Now()
	solution, err := sv.Solve(ctx, state)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("search failed after %s: %w", elapsed.Round(time.Millisecond), err)
	}

	if len(solution) == 0 {
		fmt.Println("Already solved.")
		return nil
	}

	fmt.Printf("Solution: %s (%d moves, found in %s)\n",
		cubekit.FormatMoves(solution), len(solution), elapsed.Round(time.Millisecond))

	if verbose {
		fmt.Println()
		fmt.Println(renderState(state.ApplySequence(solution)))
	}

	if solveSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := storage.NewScrambleRepository(db)
		scrambleID, err := repo.CreateScramble(cubekit.FormatMoves(scramble), len(scramble), nil)
		if err != nil {
			return err
		}
		if _, err := repo.CreateSolution(scrambleID, cubekit.FormatMoves(solution), len(solution), elapsed); err != nil {
			return err
		}
		fmt.Printf("Saved solution for scramble %s\n", scrambleID)
	}

	return nil
}
