// Package store archives generated plans in sqlite so a layout can be
// reloaded and re-applied without regenerating it.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/automoto/parkour-gen/level"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned for an unknown plan id.
var ErrNotFound = errors.New("plan not found")

// Record describes an archived plan without decoding it.
type Record struct {
	ID          string     `json:"plan_id"`
	Name        string     `json:"name,omitempty"`
	Mode        level.Mode `json:"mode"`
	Seed        int64      `json:"seed"`
	Platforms   int        `json:"platforms"`
	Connections int        `json:"connections"`
	Reachable   bool       `json:"reachable"`
	CreatedAt   int64      `json:"created_at"` // unix nanoseconds
}

// Store is a sqlite plan archive.
type Store struct {
	db *sql.DB
}

// Open opens or creates the archive at path and migrates it to the latest
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save archives plan under name and returns its new id.
func (s *Store) Save(ctx context.Context, name string, plan *level.Plan) (string, error) {
	data, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("encode plan: %w", err)
	}

	id := uuid.New().String()
	mode, err := plan.Mode.MarshalText()
	if err != nil {
		return "", err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO plans (
			plan_id, name, mode, seed, platforms, connections, reachable, plan_json, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, name, string(mode), plan.Seed, len(plan.Platforms), len(plan.Connections),
		plan.Reachable, string(data), time.Now().UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("insert plan: %w", err)
	}
	return id, nil
}

// Load decodes the plan archived under id.
func (s *Store) Load(ctx context.Context, id string) (*level.Plan, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT plan_json FROM plans WHERE plan_id = ?`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("query plan: %w", err)
	}

	var plan level.Plan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", id, err)
	}
	return &plan, nil
}

// List returns every archived plan, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT plan_id, name, mode, seed, platforms, connections, reachable, created_at
		FROM plans
		ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var mode string
		if err := rows.Scan(&r.ID, &r.Name, &mode, &r.Seed, &r.Platforms, &r.Connections, &r.Reachable, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		if err := r.Mode.UnmarshalText([]byte(mode)); err != nil {
			return nil, fmt.Errorf("plan %s: %w", r.ID, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Delete removes the plan archived under id.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM plans WHERE plan_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
