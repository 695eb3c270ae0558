package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubekit/cubekit"
	"github.com/cubekit/cubekit/internal/storage"
)

var (
	scrambleLength int
	scrambleSeed   int64
	scrambleSave   bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence and show the scrambled state.

Examples:
  cubekit scramble
  cubekit scramble --length 30 --seed 7
  cubekit scramble --save`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 25, "Number of moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = time-based)")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Save the scramble to the history database")
}

func runScramble(cmd *cobra.Command, args []string) error {
	seed := scrambleSeed
	seeded := cmd.Flags().Changed("seed")
	if !seeded {
		seed = time.Now().UnixNano()
	}

	moves := cubekit.Scramble(rand.New(rand.NewSource(seed)), scrambleLength)
	notation := cubekit.FormatMoves(moves)
	state := cubekit.Solved().ApplySequence(moves)

	fmt.Printf("Scramble: %s\n\n", notation)
	fmt.Println(renderState(state))

	if scrambleSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := storage.NewScrambleRepository(db)
		var seedPtr *int64
		if seeded {
			seedPtr = &seed
		}
		id, err := repo.CreateScramble(notation, len(moves), seedPtr)
		if err != nil {
			return err
		}
		fmt.Printf("Saved scramble %s\n", id)
	}

	return nil
}
