package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubekit/cubekit"
)

var applyValidate bool

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply a space-separated move sequence to a solved cube and show the
resulting state.

Examples:
  cubekit apply "R U R' U'"
  cubekit apply "F2 D L'" --validate`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyValidate, "validate", false, "Run invariant checks on the result")
}

func runApply(cmd *cobra.Command, args []string) error {
	state, err := cubekit.Solved().ApplyNotation(args[0])
	if err != nil {
		return err
	}

	fmt.Println(renderState(state))
	fmt.Printf("Solved: %v\n", state.IsSolved())

	if applyValidate {
		reportValidation(state)
	}
	return nil
}

// reportValidation prints the results of both validators.
func reportValidation(state cubekit.State) {
	ok, violations := cubekit.Validate(state)
	fmt.Printf("Basic validation: %v\n", ok)
	for _, v := range violations {
		fmt.Printf("  - %s\n", v)
	}

	ok, violations = cubekit.ValidateParity(state)
	fmt.Printf("Parity validation: %v\n", ok)
	for _, v := range violations {
		fmt.Printf("  - %s\n", v)
	}
}
