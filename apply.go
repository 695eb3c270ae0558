package cubekit

// Apply returns the state after one move. The receiver is unchanged;
// every well-formed move succeeds.
func (s State) Apply(m Move) State {
	return permFor(m).apply(s)
}

// ApplySequence applies moves in order, earliest first.
func (s State) ApplySequence(moves []Move) State {
	for _, m := range moves {
		s = s.Apply(m)
	}
	return s
}

// ApplyNotation parses a space-separated move string and applies it.
// Example: s, err := cubekit.Solved().ApplyNotation("R U R' U'")
//
// On a parse error the original state is returned untouched.
func (s State) ApplyNotation(notation string) (State, error) {
	moves, err := ParseMoves(notation)
	if err != nil {
		return s, err
	}
	return s.ApplySequence(moves), nil
}
