package cubekit

import (
	"math/rand"
	"testing"
)

func TestValidateSolved(t *testing.T) {
	ok, violations := Validate(Solved())
	if !ok {
		t.Errorf("solved state should validate, got %v", violations)
	}
	ok, violations = ValidateParity(Solved())
	if !ok {
		t.Errorf("solved state should pass parity checks, got %v", violations)
	}
}

func TestValidateReachableStates(t *testing.T) {
	// Anything reachable by legal moves passes both validators.
	for seed := int64(0); seed < 5; seed++ {
		r := rand.New(rand.NewSource(seed))
		s := Solved().ApplySequence(Scramble(r, 25))

		if ok, violations := Validate(s); !ok {
			t.Errorf("seed %d: reachable state failed basic validation: %v", seed, violations)
		}
		if ok, violations := ValidateParity(s); !ok {
			t.Errorf("seed %d: reachable state failed parity validation: %v", seed, violations)
		}
	}
}

func TestValidateCatchesColorCountDrift(t *testing.T) {
	s := Solved().WithSticker(FaceU, 0, Red) // 8 white, 10 red
	ok, violations := Validate(s)
	if ok {
		t.Fatal("state with 10 red stickers should fail validation")
	}
	if len(violations) < 2 {
		t.Errorf("expected violations for both white and red counts, got %v", violations)
	}
}

func TestValidateCatchesMovedCenter(t *testing.T) {
	// Swap two centers: counts stay 9 each, centers are wrong.
	s := Solved().WithSticker(FaceU, 4, Yellow).WithSticker(FaceD, 4, White)
	ok, violations := Validate(s)
	if ok {
		t.Fatal("state with swapped centers should fail validation")
	}
	if len(violations) != 2 {
		t.Errorf("expected 2 center violations, got %v", violations)
	}
}

func TestColorCounts(t *testing.T) {
	counts := ColorCounts(Solved().Apply(R).Apply(F2))
	if len(counts) != 6 {
		t.Fatalf("expected 6 colors, got %d", len(counts))
	}
	for c, n := range counts {
		if n != 9 {
			t.Errorf("color %s count = %d, want 9", c, n)
		}
	}
}

// The parity checks exist for states that preserve color counts yet
// are unreachable. Each corruption below passes Validate and must be
// rejected by ValidateParity.

func TestParityCatchesFlippedEdge(t *testing.T) {
	// Flip the UF edge in place by swapping its two stickers.
	s := Solved().
		WithSticker(FaceU, 7, Green).
		WithSticker(FaceF, 1, White)

	if ok, _ := Validate(s); !ok {
		t.Fatal("flipped edge should still pass basic validation")
	}
	ok, violations := ValidateParity(s)
	if ok {
		t.Fatal("single flipped edge should fail parity validation")
	}
	t.Log(violations)
}

func TestParityCatchesTwistedCorner(t *testing.T) {
	// Twist the URF corner: rotate its three stickers one step.
	s := Solved().
		WithSticker(FaceU, 8, Green).
		WithSticker(FaceR, 0, White).
		WithSticker(FaceF, 2, Red)

	if ok, _ := Validate(s); !ok {
		t.Fatal("twisted corner should still pass basic validation")
	}
	if ok, _ := ValidateParity(s); ok {
		t.Fatal("single twisted corner should fail parity validation")
	}
}

func TestParityCatchesSwappedEdgePair(t *testing.T) {
	// Exchange the UF and UR edge pieces (both keep White on top).
	s := Solved().
		WithSticker(FaceF, 1, Red).
		WithSticker(FaceR, 1, Green)

	if ok, _ := Validate(s); !ok {
		t.Fatal("swapped edge pair should still pass basic validation")
	}
	if ok, _ := ValidateParity(s); ok {
		t.Fatal("lone swapped edge pair should fail parity validation")
	}
}

func TestParityReportsUnrecognizedPiece(t *testing.T) {
	// Two White stickers on one edge match no real piece.
	s := Solved().WithSticker(FaceF, 1, White)
	ok, violations := ValidateParity(s)
	if ok {
		t.Fatal("impossible edge coloring should fail parity validation")
	}
	if len(violations) == 0 {
		t.Fatal("expected at least one violation message")
	}
}
