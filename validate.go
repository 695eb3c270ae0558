package cubekit

import "fmt"

// ColorCounts tallies how many stickers carry each color. Any state
// reachable from solved has exactly 9 of each of the 6 colors.
func ColorCounts(s State) map[Color]int {
	counts := make(map[Color]int, faceCount)
	for _, c := range s.stickers {
		counts[c]++
	}
	return counts
}

// Validate performs the basic reachability sanity checks: every
// canonical color appears exactly 9 times, no unknown colors appear,
// and each center carries its canonical color.
//
// Failures are reported as data rather than errors because validation
// is expected to run on potentially-invalid states. Passing these
// checks is necessary but not sufficient for reachability; see
// ValidateParity for the piece-level checks.
func Validate(s State) (bool, []string) {
	var violations []string

	counts := ColorCounts(s)
	for _, f := range Faces {
		c := f.SolvedColor()
		if counts[c] != faceletCount {
			violations = append(violations,
				fmt.Sprintf("color %s appears %d times (expected %d)", c, counts[c], faceletCount))
		}
		delete(counts, c)
	}
	for c, n := range counts {
		violations = append(violations,
			fmt.Sprintf("unknown color %s appears %d times", c, n))
	}

	for _, f := range Faces {
		if got := s.Sticker(f, centerPos); got != f.SolvedColor() {
			violations = append(violations,
				fmt.Sprintf("center of face %s is %s (expected %s)", f, got, f.SolvedColor()))
		}
	}

	return len(violations) == 0, violations
}

// Home color sets of each piece slot, taken from the solved state.
var (
	edgeHomeSets   [12]uint8
	cornerHomeSets [8]uint8
)

func init() {
	solved := Solved()
	for i := range edgeSlots {
		e := solved.edgeAt(i)
		edgeHomeSets[i] = colorSet(e.Color1, e.Color2)
	}
	for i := range cornerSlots {
		c := solved.cornerAt(i)
		cornerHomeSets[i] = colorSet(c.Color1, c.Color2, c.Color3)
	}
}

// primaryColor returns the orientation reference color of a piece:
// its U/D color when it has one, otherwise its F/B color.
func primaryColor(set uint8) (Color, bool) {
	for _, c := range []Color{White, Yellow, Green, Blue} {
		if set&(1<<c) != 0 {
			return c, true
		}
	}
	return 0, false
}

// ValidateParity performs the piece-level reachability checks that
// color counting alone cannot catch:
//
//   - every edge and corner slot holds a recognizable, unique piece
//   - the corner twists sum to 0 mod 3
//   - the edge flips sum to 0 mod 2
//   - the corner and edge permutations have equal parity
//
// A single flipped edge, a single twisted corner, or a lone swapped
// piece pair all preserve color counts yet make a state unreachable;
// these checks reject all three. Like Validate, results are reported
// as data and no state ever causes a panic here.
func ValidateParity(s State) (bool, []string) {
	var violations []string

	edgePerm, flipSum, edgeOK := edgePermutation(s, &violations)
	cornerPerm, twistSum, cornerOK := cornerPermutation(s, &violations)

	if edgeOK && flipSum%2 != 0 {
		violations = append(violations,
			fmt.Sprintf("edge flips sum to %d (expected 0 mod 2)", flipSum))
	}
	if cornerOK && twistSum%3 != 0 {
		violations = append(violations,
			fmt.Sprintf("corner twists sum to %d (expected 0 mod 3)", twistSum))
	}
	if edgeOK && cornerOK && permutationParity(edgePerm[:]) != permutationParity(cornerPerm[:]) {
		violations = append(violations,
			"edge and corner permutation parities differ")
	}

	return len(violations) == 0, violations
}

// edgePermutation identifies the piece in every edge slot, returning
// the slot-to-home mapping and the sum of edge flips. ok is false when
// any slot holds an unrecognizable or duplicate piece, in which case
// the parity checks are skipped (the violations already explain why).
func edgePermutation(s State, violations *[]string) (perm [12]int, flipSum int, ok bool) {
	ok = true
	var seen [12]bool
	for i := range edgeSlots {
		e := s.edgeAt(i)
		set := colorSet(e.Color1, e.Color2)
		home := -1
		for j, hs := range edgeHomeSets {
			if hs == set {
				home = j
				break
			}
		}
		if home < 0 {
			*violations = append(*violations,
				fmt.Sprintf("edge slot %d holds unrecognized piece %s%s", i, e.Color1, e.Color2))
			ok = false
			continue
		}
		if seen[home] {
			*violations = append(*violations,
				fmt.Sprintf("edge piece %s%s appears more than once", e.Color1, e.Color2))
			ok = false
			continue
		}
		seen[home] = true
		perm[i] = home

		primary, found := primaryColor(set)
		if !found {
			*violations = append(*violations,
				fmt.Sprintf("edge slot %d has no orientation reference color", i))
			ok = false
			continue
		}
		if e.Color1 != primary {
			flipSum++
		}
	}
	return perm, flipSum, ok
}

// cornerPermutation is the corner counterpart of edgePermutation; the
// twist of a corner is the index of its U/D-colored sticker within the
// slot's facelet triple.
func cornerPermutation(s State, violations *[]string) (perm [8]int, twistSum int, ok bool) {
	ok = true
	var seen [8]bool
	for i := range cornerSlots {
		c := s.cornerAt(i)
		set := colorSet(c.Color1, c.Color2, c.Color3)
		home := -1
		for j, hs := range cornerHomeSets {
			if hs == set {
				home = j
				break
			}
		}
		if home < 0 {
			*violations = append(*violations,
				fmt.Sprintf("corner slot %d holds unrecognized piece %s%s%s", i, c.Color1, c.Color2, c.Color3))
			ok = false
			continue
		}
		if seen[home] {
			*violations = append(*violations,
				fmt.Sprintf("corner piece %s%s%s appears more than once", c.Color1, c.Color2, c.Color3))
			ok = false
			continue
		}
		seen[home] = true
		perm[i] = home

		twist := -1
		for k, col := range [3]Color{c.Color1, c.Color2, c.Color3} {
			if col == White || col == Yellow {
				twist = k
				break
			}
		}
		if twist < 0 {
			*violations = append(*violations,
				fmt.Sprintf("corner slot %d has no U/D sticker", i))
			ok = false
			continue
		}
		twistSum += twist
	}
	return perm, twistSum, ok
}

// permutationParity reports whether a permutation is odd, by counting
// inversions. The piece counts are small enough that the quadratic
// scan is fine.
func permutationParity(p []int) bool {
	odd := false
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				odd = !odd
			}
		}
	}
	return odd
}
