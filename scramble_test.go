package cubekit

import (
	"math/rand"
	"testing"
)

func TestScrambleLength(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 5, 25} {
		if got := len(Scramble(r, n)); got != n {
			t.Errorf("Scramble length = %d, want %d", got, n)
		}
	}
}

func TestScrambleAvoidsRedundantMoves(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		r := rand.New(rand.NewSource(seed))
		moves := Scramble(r, 50)
		for i := 1; i < len(moves); i++ {
			if moves[i].Face == moves[i-1].Face {
				t.Errorf("seed %d: consecutive moves on face %s at %d", seed, moves[i].Face, i)
			}
			if i >= 2 && moves[i].Face == moves[i-2].Face && moves[i-1].Face == moves[i].Face.Opposite() {
				t.Errorf("seed %d: opposite-face sandwich at %d: %s", seed, i, FormatMoves(moves[i-2:i+1]))
			}
		}
	}
}

func TestScrambleDeterministicPerSeed(t *testing.T) {
	a := Scramble(rand.New(rand.NewSource(7)), 30)
	b := Scramble(rand.New(rand.NewSource(7)), 30)
	if FormatMoves(a) != FormatMoves(b) {
		t.Error("same seed should produce the same scramble")
	}
}

func TestScrambleProducesValidStates(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	s := Solved().ApplySequence(Scramble(r, 25))
	if ok, violations := Validate(s); !ok {
		t.Errorf("scrambled state failed validation: %v", violations)
	}
}
