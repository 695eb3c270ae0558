// Package solver implements a breadth-first search solver over cube
// states. It consumes only the public cubekit operations and exists to
// exercise the engine the way a search collaborator would; it finds
// shortest solutions for short scrambles and is not a speed solver.
package solver

import (
	"context"
	"errors"

	"github.com/cubekit/cubekit"
)

// ErrNoSolution is returned when no solution exists within MaxDepth.
var ErrNoSolution = errors.New("solver: no solution within depth limit")

// DefaultMaxDepth bounds the search. Breadth-first over 18 moves grows
// roughly 13x per level after pruning, so anything much deeper than 6
// is impractical in memory.
const DefaultMaxDepth = 6

// Solver finds move sequences that bring a state to solved.
type Solver struct {
	// MaxDepth is the longest solution considered. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

// node is one frontier entry: a reached state and the moves that
// reached it.
type node struct {
	state cubekit.State
	moves []cubekit.Move
}

// Solve returns a shortest move sequence from state to solved, or
// ErrNoSolution if none exists within MaxDepth. The context is checked
// once per expanded node so a caller can cancel long searches.
func (sv *Solver) Solve(ctx context.Context, state cubekit.State) ([]cubekit.Move, error) {
	maxDepth := sv.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	if state.IsSolved() {
		return nil, nil
	}

	moves := cubekit.Moves()

	// States are values and compare by content, so they serve directly
	// as dedup keys.
	visited := map[cubekit.State]struct{}{state: {}}
	queue := []node{{state: state}}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cur := queue[0]
		queue = queue[1:]

		if len(cur.moves) >= maxDepth {
			continue
		}

		for _, m := range moves {
			if len(cur.moves) > 0 && redundant(cur.moves[len(cur.moves)-1], m) {
				continue
			}

			next := cur.state.Apply(m)
			if _, ok := visited[next]; ok {
				continue
			}

			seq := append(append(make([]cubekit.Move, 0, len(cur.moves)+1), cur.moves...), m)
			if next.IsSolved() {
				return seq, nil
			}

			visited[next] = struct{}{}
			queue = append(queue, node{state: next, moves: seq})
		}
	}

	return nil, ErrNoSolution
}

// redundant prunes successors that cannot be part of a shortest
// solution: a second turn of the same face (the pair collapses to one
// move or none), and the second ordering of an opposite-face pair
// (opposite faces commute, so only one ordering needs exploring).
func redundant(last, next cubekit.Move) bool {
	if next.Face == last.Face {
		return true
	}
	return next.Face.Opposite() == last.Face && next.Face < last.Face
}
