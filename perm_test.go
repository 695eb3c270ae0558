package cubekit

import "testing"

// Structural checks on the six authored quarter-turn permutations,
// independent of any behavioral move test: a quarter turn moves exactly
// 20 positions (8 on the turning face, 3 on each of the 4 neighbors)
// and fixes the other 34 (all centers, the opposite face, and the
// neighbor interiors).

func TestQuarterPermMovesExactlyTwenty(t *testing.T) {
	for _, f := range Faces {
		p := quarterPerm(f)
		if got := p.moved(); got != 20 {
			t.Errorf("quarter turn of %s moves %d positions, want 20", f, got)
		}
	}
}

func TestQuarterPermIsBijection(t *testing.T) {
	for _, f := range Faces {
		p := quarterPerm(f)
		var seen [stickerCount]bool
		for i, j := range p {
			if j < 0 || j >= stickerCount {
				t.Fatalf("face %s: perm[%d] = %d out of range", f, i, j)
			}
			if seen[j] {
				t.Errorf("face %s: source position %d used twice", f, j)
			}
			seen[j] = true
		}
	}
}

func TestQuarterPermFixesCenters(t *testing.T) {
	for _, f := range Faces {
		p := quarterPerm(f)
		for _, g := range Faces {
			center := g.Offset() + 4
			if p[center] != center {
				t.Errorf("quarter turn of %s moves the center of %s", f, g)
			}
		}
	}
}

func TestQuarterPermFixesOppositeFace(t *testing.T) {
	for _, f := range Faces {
		p := quarterPerm(f)
		opp := f.Opposite()
		for i := 0; i < 9; i++ {
			idx := opp.Offset() + i
			if p[idx] != idx {
				t.Errorf("quarter turn of %s moves position %d of opposite face %s", f, i, opp)
			}
		}
	}
}

func TestQuarterPermMovesThreePerNeighbor(t *testing.T) {
	for _, f := range Faces {
		p := quarterPerm(f)
		for _, g := range Faces {
			if g == f || g == f.Opposite() {
				continue
			}
			n := 0
			for i := 0; i < 9; i++ {
				idx := g.Offset() + i
				if p[idx] != idx {
					n++
				}
			}
			if n != 3 {
				t.Errorf("quarter turn of %s moves %d stickers of neighbor %s, want 3", f, n, g)
			}
		}
	}
}

func TestDerivedPermsMatchComposition(t *testing.T) {
	for _, f := range Faces {
		cw := permFor(Move{Face: f, Turn: CW})

		// counter-clockwise composed with clockwise is the identity
		if got := cw.then(permFor(Move{Face: f, Turn: CCW})); got != identity() {
			t.Errorf("%s then %s' is not the identity", f, f)
		}
		// the half turn equals two quarter turns
		if got := cw.then(cw); got != permFor(Move{Face: f, Turn: Double}) {
			t.Errorf("%s2 does not equal %s applied twice", f, f)
		}
		// four quarter turns are the identity
		if got := cw.then(cw).then(cw).then(cw); got != identity() {
			t.Errorf("%s x 4 is not the identity permutation", f)
		}
	}
}

func TestRingsCoverDistinctNeighborPositions(t *testing.T) {
	for _, f := range Faces {
		seen := map[int]bool{}
		for _, idx := range rings[f] {
			if idx < 0 || idx >= stickerCount {
				t.Fatalf("face %s ring has out-of-range index %d", f, idx)
			}
			owner := Face(idx / 9)
			if owner == f || owner == f.Opposite() {
				t.Errorf("face %s ring contains index %d on face %s", f, idx, owner)
			}
			if seen[idx] {
				t.Errorf("face %s ring repeats index %d", f, idx)
			}
			seen[idx] = true
		}
	}
}
