package cubekit

import "fmt"

// Permutation is a total mapping over the 54 absolute sticker positions.
// perm[i] = j means the sticker at position i after the move is the one
// that was at position j before it.
type Permutation [stickerCount]int

// identity returns the permutation that fixes every position.
func identity() Permutation {
	var p Permutation
	for i := range p {
		p[i] = i
	}
	return p
}

// apply evaluates the permutation against a state.
func (p Permutation) apply(s State) State {
	var out State
	for i := 0; i < stickerCount; i++ {
		out.stickers[i] = s.stickers[p[i]]
	}
	return out
}

// then composes two permutations: the result applies p first, then q.
func (p Permutation) then(q Permutation) Permutation {
	var c Permutation
	for i := 0; i < stickerCount; i++ {
		c[i] = p[q[i]]
	}
	return c
}

// inverse returns the functional inverse: p.then(p.inverse()) is the
// identity.
func (p Permutation) inverse() Permutation {
	var inv Permutation
	for i := 0; i < stickerCount; i++ {
		inv[p[i]] = i
	}
	return inv
}

// moved counts the positions the permutation does not fix. Any single
// quarter turn must move exactly 20 of the 54 positions.
func (p Permutation) moved() int {
	n := 0
	for i := 0; i < stickerCount; i++ {
		if p[i] != i {
			n++
		}
	}
	return n
}

// rings lists, for each face, the 12 adjacent-face stickers that rotate
// with a clockwise quarter turn of that face. Positions are absolute
// indices in cyclic order: the sticker at ring[i] moves to ring[i+3].
//
// These six tables are the only hand-authored geometry in the package.
// Everything else (counter-clockwise, half turns) is derived from them,
// so a direction error here cannot be masked by a compensating error in
// an independently written inverse table. Each ring's traversal
// direction was checked against the physical cube per face; a face can
// be internally self-consistent yet reversed relative to its neighbors,
// which no single-face identity test detects.
var rings = [faceCount][12]int{
	// U: top rows cycle F -> L -> B -> R
	FaceU: {18, 19, 20, 36, 37, 38, 45, 46, 47, 9, 10, 11},
	// R: U right column -> B left column (reversed) -> D right -> F right
	FaceR: {2, 5, 8, 51, 48, 45, 29, 32, 35, 20, 23, 26},
	// F: U bottom row -> R left column -> D top row (reversed) -> L right column (reversed)
	FaceF: {6, 7, 8, 9, 12, 15, 29, 28, 27, 44, 41, 38},
	// D: bottom rows cycle F -> R -> B -> L
	FaceD: {24, 25, 26, 15, 16, 17, 51, 52, 53, 42, 43, 44},
	// L: U left column -> F left -> D left -> B right column (reversed)
	FaceL: {0, 3, 6, 18, 21, 24, 27, 30, 33, 53, 50, 47},
	// B: U top row (reversed) -> L left column -> D bottom row -> R right column (reversed)
	FaceB: {2, 1, 0, 36, 39, 42, 33, 34, 35, 17, 14, 11},
}

// quarterPerm builds the clockwise quarter-turn permutation for a face:
// the face's own 8 non-center stickers rotate in place and the 12-sticker
// ring of the 4 adjacent faces cycles by one strip. The opposite face,
// the adjacent-face interiors and all 6 centers are fixed points.
func quarterPerm(f Face) Permutation {
	p := identity()
	o := f.Offset()

	// In-face rotation, viewed head on:
	//	0 1 2      6 3 0
	//	3 4 5  ->  7 4 1
	//	6 7 8      8 5 2
	cycle(&p, [...]int{o + 0, o + 2, o + 8, o + 6})
	cycle(&p, [...]int{o + 1, o + 5, o + 7, o + 3})

	r := rings[f]
	for i := 0; i < len(r); i++ {
		p[r[(i+3)%len(r)]] = r[i]
	}
	return p
}

// cycle records that the sticker at c[i] moves to c[i+1] (wrapping).
func cycle(p *Permutation, c [4]int) {
	for i := 0; i < len(c); i++ {
		p[c[(i+1)%len(c)]] = c[i]
	}
}

// movePerms holds the permutation for each of the 18 canonical moves,
// indexed by face and turn. The set is closed and built once; there is
// deliberately no way to register additional moves at runtime.
var movePerms [faceCount][3]Permutation

func init() {
	for _, f := range Faces {
		cw := quarterPerm(f)
		movePerms[f][turnIndexCW] = cw
		movePerms[f][turnIndexCCW] = cw.inverse()
		movePerms[f][turnIndexDouble] = cw.then(cw)
	}
}

// Indices into movePerms by turn kind.
const (
	turnIndexCW = iota
	turnIndexCCW
	turnIndexDouble
)

func turnIndex(t Turn) int {
	switch t {
	case CW:
		return turnIndexCW
	case CCW:
		return turnIndexCCW
	case Double:
		return turnIndexDouble
	default:
		panic(fmt.Sprintf("cubekit: invalid turn %d", int(t)))
	}
}

// permFor returns the permutation implementing a move.
func permFor(m Move) Permutation {
	if m.Face < 0 || m.Face >= faceCount {
		panic("cubekit: invalid face in move")
	}
	return movePerms[m.Face][turnIndex(m.Turn)]
}
