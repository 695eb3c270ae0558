// Package cubekit models a 3x3 Rubik's cube as an immutable 54-sticker
// permutation engine.
//
// # State
//
// A State is a value holding all 54 stickers (6 faces x 9 positions).
// Every operation returns a new State; nothing is mutated in place.
// States compare with == and work as map keys, so search code can use
// them directly for visited-state deduplication:
//
//	s := cubekit.Solved()
//	s = s.Apply(cubekit.R)
//	seen := map[cubekit.State]struct{}{s: {}}
//
// # Moves
//
// The 18 canonical moves (6 faces x quarter, counter-quarter, half) are
// pure permutations of the 54 positions. Only the 6 clockwise quarter
// turns are authored; the inverses and half turns are derived from them
// by functional inversion and composition, so there is one source of
// truth per face.
//
// Apply moves using the predefined constants:
//
//	s = s.ApplySequence([]cubekit.Move{cubekit.R, cubekit.U, cubekit.RPrime, cubekit.UPrime})
//
// Or from notation:
//
//	s, err := cubekit.Solved().ApplyNotation("R U R' U'")
//
// Sequences invert by the group law (reverse and invert each move):
//
//	undo := cubekit.InvertMoves(moves)
//
// # Validation
//
// Validate checks color counts and centers; ValidateParity performs the
// piece-level twist, flip, and permutation-parity checks that reject
// count-preserving but unreachable states. Both return violations as
// data so they can be run on arbitrary input.
package cubekit
