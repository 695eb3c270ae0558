package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubekit/cubekit"
)

func TestSolveAlreadySolved(t *testing.T) {
	sv := &Solver{}
	solution, err := sv.Solve(context.Background(), cubekit.Solved())
	require.NoError(t, err)
	assert.Empty(t, solution)
}

func TestSolveSingleMoveScramble(t *testing.T) {
	sv := &Solver{}
	scrambled := cubekit.Solved().Apply(cubekit.R)

	solution, err := sv.Solve(context.Background(), scrambled)
	require.NoError(t, err)
	require.Len(t, solution, 1)
	assert.Equal(t, cubekit.RPrime, solution[0])
}

func TestSolveShortScrambles(t *testing.T) {
	scrambles := []string{
		"R U",
		"F D' L",
		"R U R' U'",
		"U2 F B'",
	}
	sv := &Solver{}
	for _, scramble := range scrambles {
		t.Run(scramble, func(t *testing.T) {
			moves, err := cubekit.ParseMoves(scramble)
			require.NoError(t, err)
			scrambled := cubekit.Solved().ApplySequence(moves)

			solution, err := sv.Solve(context.Background(), scrambled)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(solution), len(moves),
				"BFS must not return a longer solution than the scramble")
			assert.True(t, scrambled.ApplySequence(solution).IsSolved(),
				"solution %s does not solve scramble %s", cubekit.FormatMoves(solution), scramble)
		})
	}
}

func TestSolveRespectsDepthLimit(t *testing.T) {
	// A T-perm needs far more than 2 moves.
	scrambled := cubekit.Solved().ApplySequence(cubekit.TPerm)

	sv := &Solver{MaxDepth: 2}
	_, err := sv.Solve(context.Background(), scrambled)
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestSolveHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sv := &Solver{}
	scrambled := cubekit.Solved().Apply(cubekit.R).Apply(cubekit.U)
	_, err := sv.Solve(ctx, scrambled)
	assert.ErrorIs(t, err, context.Canceled)
}
