package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m-renshaw/pourwatch-tui/internal/models"
)

// LogStats summarizes the stored intake log.
type LogStats struct {
	EventCount    int
	CategoryCount int
	FirstDate     string
	LastDate      string
}

// InsertEvent stores one intake event.
func (db *DB) InsertEvent(ctx context.Context, ev models.IntakeEvent) error {
	query := `
	INSERT INTO intake_events (name, category, quantity, unit, strength_percent, date, time, location)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.ExecContext(ctx, query,
		ev.Name, ev.Category, ev.Quantity, ev.Unit,
		ev.StrengthPercent, ev.Date, ev.Time, ev.Location,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// EventsInRange returns all events whose date lies in the inclusive range.
// Lexicographic comparison works because dates are stored as YYYY-MM-DD.
func (db *DB) EventsInRange(ctx context.Context, dateRange models.DateRange) ([]models.IntakeEvent, error) {
	query := `
	SELECT name, category, quantity, unit, strength_percent, date, time, location
	FROM intake_events
	WHERE date >= ? AND date <= ?
	ORDER BY date, time
	`
	rows, err := db.QueryContext(ctx, query, dateRange.Start, dateRange.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanEvents(rows)
}

// AllEvents returns the whole log in chronological order.
func (db *DB) AllEvents(ctx context.Context) ([]models.IntakeEvent, error) {
	query := `
	SELECT name, category, quantity, unit, strength_percent, date, time, location
	FROM intake_events
	ORDER BY date, time
	`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]models.IntakeEvent, error) {
	var events []models.IntakeEvent
	for rows.Next() {
		var ev models.IntakeEvent
		if err := rows.Scan(
			&ev.Name, &ev.Category, &ev.Quantity, &ev.Unit,
			&ev.StrengthPercent, &ev.Date, &ev.Time, &ev.Location,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// SaveProfile upserts the single stored user profile.
func (db *DB) SaveProfile(ctx context.Context, profile models.UserProfile) error {
	query := `
	INSERT INTO user_profile (id, weight_kg, gender, updated_at)
	VALUES (1, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
		weight_kg = excluded.weight_kg,
		gender = excluded.gender,
		updated_at = CURRENT_TIMESTAMP
	`
	_, err := db.ExecContext(ctx, query, profile.WeightKg, string(profile.Gender))
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile returns the stored profile. A missing row yields the zero
// profile and no error; dependent analytics handle the degradation.
func (db *DB) GetProfile(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile
	var gender string
	err := db.QueryRowContext(ctx,
		`SELECT weight_kg, gender FROM user_profile WHERE id = 1`,
	).Scan(&profile.WeightKg, &gender)
	if err == sql.ErrNoRows {
		return models.UserProfile{}, nil
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to query profile: %w", err)
	}
	profile.Gender = models.Gender(gender)
	return profile, nil
}

// Stats returns summary counts over the stored log.
func (db *DB) Stats(ctx context.Context) (*LogStats, error) {
	stats := &LogStats{}
	var first, last sql.NullString
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(DISTINCT category),
		       MIN(date),
		       MAX(date)
		FROM intake_events
	`).Scan(&stats.EventCount, &stats.CategoryCount, &first, &last)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	if first.Valid {
		stats.FirstDate = first.String
	}
	if last.Valid {
		stats.LastDate = last.String
	}
	return stats, nil
}
