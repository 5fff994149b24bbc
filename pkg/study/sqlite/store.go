// Package sqlite persists study sessions, trials and ratings in a SQLite
// database file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/annikahug/cadenza/pkg/study"

	_ "modernc.org/sqlite"
)

var _ study.Store = (*Store)(nil)

type Store struct {
	db *sql.DB
}

func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)

	if err != nil {
		return nil, err
	}

	s := &Store{
		db: db,
	}

	if err := s.init(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) init() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			participant TEXT,
			conditions TEXT,
			created_at DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS trials (
			id TEXT PRIMARY KEY,
			session_id TEXT,
			image TEXT,
			condition TEXT,
			description TEXT,
			markup TEXT,
			created_at DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS ratings (
			id TEXT PRIMARY KEY,
			trial_id TEXT,
			naturalness INTEGER,
			pleasantness INTEGER,
			comprehension INTEGER,
			comment TEXT,
			created_at DATETIME
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) CreateSession(ctx context.Context, session *study.Session) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO sessions (id, participant, conditions, created_at) VALUES (?, ?, ?, ?)",
		session.ID, session.Participant, joinConditions(session.Conditions), session.Created)

	return err
}

func (s *Store) Session(ctx context.Context, id string) (*study.Session, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, participant, conditions, created_at FROM sessions WHERE id = ?", id)

	var session study.Session
	var conditions string

	if err := row.Scan(&session.ID, &session.Participant, &conditions, &session.Created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, study.ErrNotFound
		}

		return nil, err
	}

	session.Conditions = splitConditions(conditions)

	return &session, nil
}

func (s *Store) SessionCount(ctx context.Context) (int, error) {
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions")

	var count int

	if err := row.Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (s *Store) CreateTrial(ctx context.Context, trial *study.Trial) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO trials (id, session_id, image, condition, description, markup, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		trial.ID, trial.SessionID, trial.Image, string(trial.Condition), trial.Description, trial.Markup, trial.Created)

	return err
}

func (s *Store) Trial(ctx context.Context, id string) (*study.Trial, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, session_id, image, condition, description, markup, created_at FROM trials WHERE id = ?", id)

	trial, err := scanTrial(row)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, study.ErrNotFound
		}

		return nil, err
	}

	return trial, nil
}

func (s *Store) Trials(ctx context.Context, sessionID string) ([]*study.Trial, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, session_id, image, condition, description, markup, created_at FROM trials WHERE session_id = ? ORDER BY created_at", sessionID)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var trials []*study.Trial

	for rows.Next() {
		trial, err := scanTrial(rows)

		if err != nil {
			return nil, err
		}

		trials = append(trials, trial)
	}

	return trials, rows.Err()
}

func (s *Store) CreateRating(ctx context.Context, rating *study.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO ratings (id, trial_id, naturalness, pleasantness, comprehension, comment, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		rating.ID, rating.TrialID, rating.Naturalness, rating.Pleasantness, rating.Comprehension, rating.Comment, rating.Created)

	return err
}

func (s *Store) Ratings(ctx context.Context, trialID string) ([]*study.Rating, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, trial_id, naturalness, pleasantness, comprehension, comment, created_at FROM ratings WHERE trial_id = ? ORDER BY created_at", trialID)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var ratings []*study.Rating

	for rows.Next() {
		var rating study.Rating

		if err := rows.Scan(&rating.ID, &rating.TrialID, &rating.Naturalness, &rating.Pleasantness, &rating.Comprehension, &rating.Comment, &rating.Created); err != nil {
			return nil, err
		}

		ratings = append(ratings, &rating)
	}

	return ratings, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrial(row scanner) (*study.Trial, error) {
	var trial study.Trial
	var condition string

	if err := row.Scan(&trial.ID, &trial.SessionID, &trial.Image, &condition, &trial.Description, &trial.Markup, &trial.Created); err != nil {
		return nil, err
	}

	trial.Condition = study.Condition(condition)

	return &trial, nil
}

func joinConditions(values []study.Condition) string {
	parts := make([]string, len(values))

	for i, c := range values {
		parts[i] = string(c)
	}

	return strings.Join(parts, ",")
}

func splitConditions(value string) []study.Condition {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")

	result := make([]study.Condition, len(parts))

	for i, p := range parts {
		result[i] = study.Condition(p)
	}

	return result
}
