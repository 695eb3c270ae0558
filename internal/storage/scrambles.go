package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Scramble is a recorded scramble sequence.
type Scramble struct {
	ScrambleID string
	CreatedAt  time.Time
	MovesText  string
	MoveCount  int
	Seed       *int64
}

// Solution is a recorded solution for a scramble.
type Solution struct {
	SolutionID string
	ScrambleID string
	CreatedAt  time.Time
	MovesText  string
	MoveCount  int
	DurationMs int64
}

// ScrambleRepository provides CRUD operations for scrambles and their
// solutions.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// CreateScramble records a scramble and returns its ID.
func (r *ScrambleRepository) CreateScramble(movesText string, moveCount int, seed *int64) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, moves_text, move_count, seed)
		VALUES (?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), movesText, moveCount, seed)
	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	return id, nil
}

// CreateSolution records a solution for an existing scramble.
func (r *ScrambleRepository) CreateSolution(scrambleID, movesText string, moveCount int, duration time.Duration) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solutions (solution_id, scramble_id, created_at, moves_text, move_count, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, scrambleID, createdAt.Format(time.RFC3339), movesText, moveCount, duration.Milliseconds())
	if err != nil {
		return "", fmt.Errorf("failed to create solution: %w", err)
	}

	return id, nil
}

// GetScramble returns a scramble by ID.
func (r *ScrambleRepository) GetScramble(id string) (*Scramble, error) {
	row := r.db.QueryRow(`
		SELECT scramble_id, created_at, moves_text, move_count, seed
		FROM scrambles WHERE scramble_id = ?
	`, id)

	s, err := scanScramble(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble %s: %w", id, err)
	}
	return s, nil
}

// ListScrambles returns the most recent scrambles, newest first.
func (r *ScrambleRepository) ListScrambles(limit int) ([]*Scramble, error) {
	rows, err := r.db.Query(`
		SELECT scramble_id, created_at, moves_text, move_count, seed
		FROM scrambles ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var scrambles []*Scramble
	for rows.Next() {
		s, err := scanScramble(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		scrambles = append(scrambles, s)
	}
	return scrambles, rows.Err()
}

// ListSolutions returns all solutions for a scramble, newest first.
func (r *ScrambleRepository) ListSolutions(scrambleID string) ([]*Solution, error) {
	rows, err := r.db.Query(`
		SELECT solution_id, scramble_id, created_at, moves_text, move_count, duration_ms
		FROM solutions WHERE scramble_id = ? ORDER BY created_at DESC
	`, scrambleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}
	defer rows.Close()

	var solutions []*Solution
	for rows.Next() {
		var sol Solution
		var createdAt string
		if err := rows.Scan(&sol.SolutionID, &sol.ScrambleID, &createdAt,
			&sol.MovesText, &sol.MoveCount, &sol.DurationMs); err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse solution timestamp: %w", err)
		}
		sol.CreatedAt = t
		solutions = append(solutions, &sol)
	}
	return solutions, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanScramble(row scanner) (*Scramble, error) {
	var s Scramble
	var createdAt string
	var seed sql.NullInt64

	if err := row.Scan(&s.ScrambleID, &createdAt, &s.MovesText, &s.MoveCount, &seed); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scramble timestamp: %w", err)
	}
	s.CreatedAt = t

	if seed.Valid {
		s.Seed = &seed.Int64
	}
	return &s, nil
}
