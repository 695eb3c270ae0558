package cubekit

import (
	"fmt"
	"strings"
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

func (t Turn) suffix() string {
	switch t {
	case CCW:
		return "'"
	case Double:
		return "2"
	default:
		return ""
	}
}

// Move is one of the 18 canonical moves: a face paired with a turn kind.
// Moves are stateless values; the full set is enumerable via Moves().
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	return m.Face.String() + m.Turn.suffix()
}

// Inverse returns the move that undoes this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
		// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Moves returns all 18 canonical moves in face order, quarter turn first.
func Moves() []Move {
	out := make([]Move, 0, faceCount*3)
	for _, f := range Faces {
		out = append(out, Move{f, CW}, Move{f, CCW}, Move{f, Double})
	}
	return out
}

// ParseMove parses a standard notation token into a Move.
//
// A token is one uppercase face letter (U, R, F, D, L, B) optionally
// followed by ' (counter-clockwise) or 2 (half turn). The grammar is
// case-sensitive and admits nothing else.
func ParseMove(s string) (Move, error) {
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty token", ErrInvalidNotation)
	}

	var face Face
	switch s[0] {
	case 'U':
		face = FaceU
	case 'R':
		face = FaceR
	case 'F':
		face = FaceF
	case 'D':
		face = FaceD
	case 'L':
		face = FaceL
	case 'B':
		face = FaceB
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := CW // No suffix means clockwise
	switch s[1:] {
	case "":
	case "'":
		turn = CCW
	case "2":
		turn = Double
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of move tokens.
// Example: "R U R' U'"
//
// A malformed token fails the whole parse; tokens are never skipped,
// since a silently dropped move would corrupt every state derived from
// the sequence.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes the given sequence:
// the order is reversed and every move is inverted, following the
// group law (ab...z)^-1 = z^-1 ... b^-1 a^-1. Inverting each move in
// place without reversing does not undo anything beyond length one.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
