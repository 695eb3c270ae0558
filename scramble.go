package cubekit

import "math/rand"

// Scramble generates a random move sequence of the given length.
//
// Consecutive moves on the same face are rejected (R R' is a no-op and
// R R should have been R2), as is revisiting the previous move's
// opposite-face partner (U D U wastes a move since opposite faces
// commute). Pass a seeded rand.Rand for reproducible scrambles.
func Scramble(r *rand.Rand, length int) []Move {
	turns := [3]Turn{CW, CCW, Double}
	moves := make([]Move, 0, length)

	for len(moves) < length {
		f := Faces[r.Intn(faceCount)]
		if n := len(moves); n > 0 {
			last := moves[n-1].Face
			if f == last {
				continue
			}
			if n > 1 && f == last.Opposite() && moves[n-2].Face == f {
				continue
			}
		}
		moves = append(moves, Move{Face: f, Turn: turns[r.Intn(len(turns))]})
	}

	return moves
}
