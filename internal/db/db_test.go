package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m-renshaw/pourwatch-tui/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func testEvent(name, date, clock string) models.IntakeEvent {
	return models.IntakeEvent{
		Name:            name,
		Category:        "beer",
		Quantity:        1,
		Unit:            "can",
		StrengthPercent: 5,
		Date:            date,
		Time:            clock,
		Location:        "home",
	}
}

func TestInsertAndQueryRange(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	events := []models.IntakeEvent{
		testEvent("Lager", "2025-06-10", "20:00"),
		testEvent("Stout", "2025-06-12", "21:00"),
		testEvent("Porter", "2025-06-20", "19:00"),
	}
	for _, ev := range events {
		if err := database.InsertEvent(ctx, ev); err != nil {
			t.Fatalf("InsertEvent: %v", err)
		}
	}

	got, err := database.EventsInRange(ctx, models.DateRange{Start: "2025-06-09", End: "2025-06-15"})
	if err != nil {
		t.Fatalf("EventsInRange: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events in range, got %d", len(got))
	}
	if got[0].Name != "Lager" || got[1].Name != "Stout" {
		t.Errorf("wrong events or order: %+v", got)
	}
	if got[0].StrengthPercent != 5 || got[0].Unit != "can" {
		t.Errorf("fields lost in roundtrip: %+v", got[0])
	}
}

func TestAllEventsOrdered(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	_ = database.InsertEvent(ctx, testEvent("Late", "2025-06-12", "22:00"))
	_ = database.InsertEvent(ctx, testEvent("Early", "2025-06-12", "09:00"))
	_ = database.InsertEvent(ctx, testEvent("Yesterday", "2025-06-11", "23:00"))

	got, err := database.AllEvents(ctx)
	if err != nil {
		t.Fatalf("AllEvents: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if got[0].Name != "Yesterday" || got[1].Name != "Early" || got[2].Name != "Late" {
		t.Errorf("events not in chronological order: %+v", got)
	}
}

func TestProfileRoundtrip(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	profile, err := database.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile on empty db: %v", err)
	}
	if profile.Complete() {
		t.Errorf("empty db should yield the zero profile, got %+v", profile)
	}

	want := models.UserProfile{WeightKg: 75, Gender: models.GenderMale}
	if err := database.SaveProfile(ctx, want); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	profile, err = database.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile != want {
		t.Errorf("profile = %+v, want %+v", profile, want)
	}

	// Saving again replaces the single row.
	want.WeightKg = 80
	if err := database.SaveProfile(ctx, want); err != nil {
		t.Fatalf("SaveProfile update: %v", err)
	}
	profile, _ = database.GetProfile(ctx)
	if profile.WeightKg != 80 {
		t.Errorf("updated weight = %v, want 80", profile.WeightKg)
	}
}

func TestStats(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	stats, err := database.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats on empty db: %v", err)
	}
	if stats.EventCount != 0 {
		t.Errorf("empty db event count = %d, want 0", stats.EventCount)
	}

	_ = database.InsertEvent(ctx, testEvent("Lager", "2025-06-10", "20:00"))
	wine := testEvent("Merlot", "2025-06-14", "21:00")
	wine.Category = "wine"
	_ = database.InsertEvent(ctx, wine)

	stats, err = database.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.EventCount != 2 {
		t.Errorf("event count = %d, want 2", stats.EventCount)
	}
	if stats.CategoryCount != 2 {
		t.Errorf("category count = %d, want 2", stats.CategoryCount)
	}
	if stats.FirstDate != "2025-06-10" || stats.LastDate != "2025-06-14" {
		t.Errorf("date bounds = %s..%s, want 2025-06-10..2025-06-14", stats.FirstDate, stats.LastDate)
	}
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "persist.db")

	database, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_ = database.InsertEvent(context.Background(), testEvent("Lager", "2025-06-10", "20:00"))
	_ = database.Close()

	database, err = New(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer database.Close()

	got, err := database.AllEvents(context.Background())
	if err != nil {
		t.Fatalf("AllEvents: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected persisted event after reopen, got %d", len(got))
	}
}
