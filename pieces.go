package cubekit

// facelet addresses one sticker by face and local position.
type facelet struct {
	face Face
	pos  int
}

// edgeSlots lists the 12 edge cubie slots as facelet pairs. The first
// facelet of each pair is the reference slot for orientation: it lies on
// U or D for the top and bottom edges, and on F or B for the four
// equator edges. An edge is oriented (flip 0) when the piece's primary
// color sits in the reference slot.
var edgeSlots = [12][2]facelet{
	{{FaceU, 5}, {FaceR, 1}}, // UR
	{{FaceU, 7}, {FaceF, 1}}, // UF
	{{FaceU, 3}, {FaceL, 1}}, // UL
	{{FaceU, 1}, {FaceB, 1}}, // UB
	{{FaceD, 5}, {FaceR, 7}}, // DR
	{{FaceD, 1}, {FaceF, 7}}, // DF
	{{FaceD, 3}, {FaceL, 7}}, // DL
	{{FaceD, 7}, {FaceB, 7}}, // DB
	{{FaceF, 5}, {FaceR, 3}}, // FR
	{{FaceF, 3}, {FaceL, 5}}, // FL
	{{FaceB, 5}, {FaceL, 3}}, // BL
	{{FaceB, 3}, {FaceR, 5}}, // BR
}

// cornerSlots lists the 8 corner cubie slots as facelet triples. The
// first facelet of each triple lies on U or D; the remaining two follow
// clockwise around the corner viewed from outside the cube. A corner's
// twist is the index of the facelet carrying the U/D color.
var cornerSlots = [8][3]facelet{
	{{FaceU, 8}, {FaceR, 0}, {FaceF, 2}}, // URF
	{{FaceU, 6}, {FaceF, 0}, {FaceL, 2}}, // UFL
	{{FaceU, 0}, {FaceL, 0}, {FaceB, 2}}, // ULB
	{{FaceU, 2}, {FaceB, 0}, {FaceR, 2}}, // UBR
	{{FaceD, 2}, {FaceF, 8}, {FaceR, 6}}, // DFR
	{{FaceD, 0}, {FaceL, 8}, {FaceF, 6}}, // DLF
	{{FaceD, 6}, {FaceB, 8}, {FaceL, 6}}, // DBL
	{{FaceD, 8}, {FaceR, 8}, {FaceB, 6}}, // DRB
}

// EdgeRef locates an edge piece: the two facelets holding its stickers
// and the colors found there.
type EdgeRef struct {
	Face1  Face
	Pos1   int
	Face2  Face
	Pos2   int
	Color1 Color
	Color2 Color
}

// CornerRef locates a corner piece: the three facelets holding its
// stickers and the colors found there.
type CornerRef struct {
	Face1  Face
	Pos1   int
	Face2  Face
	Pos2   int
	Face3  Face
	Pos3   int
	Color1 Color
	Color2 Color
	Color3 Color
}

// edgeAt reads the edge piece occupying slot i.
func (s State) edgeAt(i int) EdgeRef {
	slot := edgeSlots[i]
	return EdgeRef{
		Face1:  slot[0].face,
		Pos1:   slot[0].pos,
		Face2:  slot[1].face,
		Pos2:   slot[1].pos,
		Color1: s.Sticker(slot[0].face, slot[0].pos),
		Color2: s.Sticker(slot[1].face, slot[1].pos),
	}
}

// cornerAt reads the corner piece occupying slot i.
func (s State) cornerAt(i int) CornerRef {
	slot := cornerSlots[i]
	return CornerRef{
		Face1:  slot[0].face,
		Pos1:   slot[0].pos,
		Face2:  slot[1].face,
		Pos2:   slot[1].pos,
		Face3:  slot[2].face,
		Pos3:   slot[2].pos,
		Color1: s.Sticker(slot[0].face, slot[0].pos),
		Color2: s.Sticker(slot[1].face, slot[1].pos),
		Color3: s.Sticker(slot[2].face, slot[2].pos),
	}
}

// FindEdge locates the edge piece carrying the two given colors, in
// either sticker order. The search is a bounded scan over the 12 edge
// slots; the second return value is false when no slot holds the pair,
// which is possible on corrupted states, so callers must check it.
func FindEdge(s State, c1, c2 Color) (EdgeRef, bool) {
	for i := range edgeSlots {
		e := s.edgeAt(i)
		if (e.Color1 == c1 && e.Color2 == c2) || (e.Color1 == c2 && e.Color2 == c1) {
			return e, true
		}
	}
	return EdgeRef{}, false
}

// FindCorner locates the corner piece carrying the three given colors
// in any order, scanning the 8 corner slots.
func FindCorner(s State, c1, c2, c3 Color) (CornerRef, bool) {
	want := colorSet(c1, c2, c3)
	for i := range cornerSlots {
		c := s.cornerAt(i)
		if colorSet(c.Color1, c.Color2, c.Color3) == want {
			return c, true
		}
	}
	return CornerRef{}, false
}

// colorSet packs an unordered color collection into a comparable bitmask.
func colorSet(colors ...Color) uint8 {
	var set uint8
	for _, c := range colors {
		set |= 1 << c
	}
	return set
}
