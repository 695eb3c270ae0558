package cubekit

import (
	"fmt"
	"strings"
)

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Red    Color = 1 // Right face when solved
	Green  Color = 2 // Front face when solved
	Yellow Color = 3 // Down face when solved
	Orange Color = 4 // Left face when solved
	Blue   Color = 5 // Back face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Red:
		return "R"
	case Green:
		return "G"
	case Yellow:
		return "Y"
	case Orange:
		return "O"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Face identifies one of the six cube faces. The integer value fixes the
// global face ordering used for absolute sticker indexing: U R F D L B.
type Face int

const (
	FaceU Face = 0 // Up (White)
	FaceR Face = 1 // Right (Red)
	FaceF Face = 2 // Front (Green)
	FaceD Face = 3 // Down (Yellow)
	FaceL Face = 4 // Left (Orange)
	FaceB Face = 5 // Back (Blue)
)

// faceCount and faceletCount fix the puzzle dimensions. Every absolute
// sticker index is face*faceletCount + local position.
const (
	faceCount    = 6
	faceletCount = 9
	stickerCount = faceCount * faceletCount

	// centerPos is the local position that never moves under any turn.
	centerPos = 4
)

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceR:
		return "R"
	case FaceF:
		return "F"
	case FaceD:
		return "D"
	case FaceL:
		return "L"
	case FaceB:
		return "B"
	default:
		return "?"
	}
}

// Offset returns the absolute index of the face's first sticker.
// This is the only place the face-to-index mapping is computed.
func (f Face) Offset() int {
	if f < 0 || f >= faceCount {
		panic(fmt.Sprintf("cubekit: invalid face %d", int(f)))
	}
	return int(f) * faceletCount
}

// Opposite returns the geometrically opposite face.
// Opposite faces share no stickers, so their moves commute.
func (f Face) Opposite() Face {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceR:
		return FaceL
	case FaceL:
		return FaceR
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	default:
		panic(fmt.Sprintf("cubekit: invalid face %d", int(f)))
	}
}

// SolvedColor returns the color of a face's center when solved.
func (f Face) SolvedColor() Color {
	switch f {
	case FaceU:
		return White
	case FaceR:
		return Red
	case FaceF:
		return Green
	case FaceD:
		return Yellow
	case FaceL:
		return Orange
	case FaceB:
		return Blue
	default:
		panic(fmt.Sprintf("cubekit: invalid face %d", int(f)))
	}
}

// Faces lists all six faces in global order.
var Faces = [faceCount]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

// State is an immutable snapshot of all 54 stickers.
//
// Each face holds 9 stickers in reading order:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (position 4) defines the face color and never moves.
//
// State is a plain value: every operation returns a new State and the
// receiver is never modified. Because the backing storage is a fixed
// array, State is comparable with == and usable as a map key, which is
// what search collaborators rely on for visited-state deduplication.
type State struct {
	stickers [stickerCount]Color
}

// Solved returns the canonical solved state: every face uniformly
// carries its center color.
func Solved() State {
	var s State
	for _, f := range Faces {
		color := f.SolvedColor()
		for i := 0; i < faceletCount; i++ {
			s.stickers[f.Offset()+i] = color
		}
	}
	return s
}

// New builds a state from 54 stickers in URFDLB face order.
// No reachability validation is performed; use Validate for that.
func New(stickers [stickerCount]Color) State {
	return State{stickers: stickers}
}

// checkPos panics on an out-of-range face or local position. Out-of-range
// access is a contract violation, not a recoverable condition: returning a
// sentinel color would corrupt downstream invariant checks undetected.
func checkPos(f Face, pos int) {
	if f < 0 || f >= faceCount {
		panic(fmt.Sprintf("cubekit: invalid face %d", int(f)))
	}
	if pos < 0 || pos >= faceletCount {
		panic(fmt.Sprintf("cubekit: invalid position %d on face %s", pos, f))
	}
}

// Sticker returns the color at a face-local position (0-8).
func (s State) Sticker(f Face, pos int) Color {
	checkPos(f, pos)
	return s.stickers[f.Offset()+pos]
}

// WithSticker returns a copy of the state with exactly one sticker changed.
func (s State) WithSticker(f Face, pos int, c Color) State {
	checkPos(f, pos)
	s.stickers[f.Offset()+pos] = c // s is already a copy
	return s
}

// FaceStickers returns the 9 stickers of a face in reading order.
func (s State) FaceStickers(f Face) [faceletCount]Color {
	var out [faceletCount]Color
	copy(out[:], s.stickers[f.Offset():f.Offset()+faceletCount])
	return out
}

// Stickers returns all 54 stickers in URFDLB order.
func (s State) Stickers() [stickerCount]Color {
	return s.stickers
}

// IsSolved reports whether every face uniformly matches its center sticker.
func (s State) IsSolved() bool {
	for _, f := range Faces {
		o := f.Offset()
		center := s.stickers[o+centerPos]
		for i := 0; i < faceletCount; i++ {
			if s.stickers[o+i] != center {
				return false
			}
		}
	}
	return true
}

// String renders the cube as an unfolded net:
//
//	      U U U
//	      U U U
//	      U U U
//	L L L F F F R R R B B B
//	L L L F F F R R R B B B
//	L L L F F F R R R B B B
//	      D D D
//	      D D D
//	      D D D
func (s State) String() string {
	var b strings.Builder

	row := func(f Face, start int) string {
		o := f.Offset()
		return s.stickers[o+start].String() + " " +
			s.stickers[o+start+1].String() + " " +
			s.stickers[o+start+2].String()
	}

	for _, start := range []int{0, 3, 6} {
		b.WriteString("      " + row(FaceU, start) + "\n")
	}
	for _, start := range []int{0, 3, 6} {
		b.WriteString(row(FaceL, start) + " " + row(FaceF, start) + " " +
			row(FaceR, start) + " " + row(FaceB, start) + "\n")
	}
	for _, start := range []int{0, 3, 6} {
		b.WriteString("      " + row(FaceD, start) + "\n")
	}

	return b.String()
}
