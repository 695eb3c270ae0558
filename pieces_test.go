package cubekit

import "testing"

func TestFindEdgeOnSolved(t *testing.T) {
	e, ok := FindEdge(Solved(), White, Green)
	if !ok {
		t.Fatal("white-green edge must exist on a solved cube")
	}
	// UF slot: U position 7, F position 1.
	if e.Face1 != FaceU || e.Pos1 != 7 || e.Face2 != FaceF || e.Pos2 != 1 {
		t.Errorf("white-green edge at %s[%d]/%s[%d], want U[7]/F[1]",
			e.Face1, e.Pos1, e.Face2, e.Pos2)
	}
	if e.Color1 != White || e.Color2 != Green {
		t.Errorf("edge colors = %s/%s, want W/G", e.Color1, e.Color2)
	}
}

func TestFindEdgeMatchesEitherOrder(t *testing.T) {
	a, okA := FindEdge(Solved(), White, Green)
	b, okB := FindEdge(Solved(), Green, White)
	if !okA || !okB || a != b {
		t.Error("FindEdge should be order-insensitive")
	}
}

func TestFindEdgeAfterMoves(t *testing.T) {
	// Every real edge piece stays findable no matter how the cube is
	// scrambled; only its location changes.
	s, err := Solved().ApplyNotation("F R U' B2 L D")
	if err != nil {
		t.Fatal(err)
	}
	e, ok := FindEdge(s, White, Green)
	if !ok {
		t.Fatal("white-green edge must remain findable after moves")
	}
	got := [2]Color{e.Color1, e.Color2}
	if got != [2]Color{White, Green} && got != [2]Color{Green, White} {
		t.Errorf("found edge has colors %s/%s", e.Color1, e.Color2)
	}
}

func TestFindEdgeNotFound(t *testing.T) {
	// No edge carries two stickers of the same color.
	if _, ok := FindEdge(Solved(), White, White); ok {
		t.Error("FindEdge(W, W) should report not found")
	}
	// White-Yellow is a center pair, not an edge.
	if _, ok := FindEdge(Solved(), White, Yellow); ok {
		t.Error("FindEdge(W, Y) should report not found")
	}
}

func TestFindCornerOnSolved(t *testing.T) {
	c, ok := FindCorner(Solved(), White, Red, Green)
	if !ok {
		t.Fatal("white-red-green corner must exist on a solved cube")
	}
	// URF slot: U[8], R[0], F[2].
	if c.Face1 != FaceU || c.Pos1 != 8 || c.Face2 != FaceR || c.Pos2 != 0 || c.Face3 != FaceF || c.Pos3 != 2 {
		t.Errorf("white-red-green corner at %s[%d]/%s[%d]/%s[%d], want U[8]/R[0]/F[2]",
			c.Face1, c.Pos1, c.Face2, c.Pos2, c.Face3, c.Pos3)
	}
}

func TestFindCornerNotFound(t *testing.T) {
	// Opposite colors never share a corner piece.
	if _, ok := FindCorner(Solved(), White, Yellow, Green); ok {
		t.Error("FindCorner with opposite colors should report not found")
	}
}

func TestAllPiecesFindableAfterScramble(t *testing.T) {
	s, err := Solved().ApplyNotation("R U2 F' L D B2 R' U F D2 L' B")
	if err != nil {
		t.Fatal(err)
	}
	solved := Solved()
	for i := range edgeSlots {
		home := solved.edgeAt(i)
		if _, ok := FindEdge(s, home.Color1, home.Color2); !ok {
			t.Errorf("edge %s%s not found after scramble", home.Color1, home.Color2)
		}
	}
	for i := range cornerSlots {
		home := solved.cornerAt(i)
		if _, ok := FindCorner(s, home.Color1, home.Color2, home.Color3); !ok {
			t.Errorf("corner %s%s%s not found after scramble", home.Color1, home.Color2, home.Color3)
		}
	}
}
