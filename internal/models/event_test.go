package models

import (
	"testing"
	"time"
)

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		want    time.Time
		wantOK  bool
	}{
		{
			name:   "date and time",
			date:   "2025-06-14",
			clock:  "21:30",
			want:   time.Date(2025, 6, 14, 21, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "missing time defaults to midnight",
			date:   "2025-06-14",
			clock:  "",
			want:   time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "garbage time falls back to midnight",
			date:   "2025-06-14",
			clock:  "late",
			want:   time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "unparsable date",
			date:   "14/06/2025",
			clock:  "21:30",
			wantOK: false,
		},
		{
			name:   "empty date",
			date:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := IntakeEvent{Date: tt.date, Time: tt.clock}
			got, ok := ev.Timestamp()
			if ok != tt.wantOK {
				t.Fatalf("Timestamp() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("Timestamp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProfileComplete(t *testing.T) {
	if (UserProfile{}).Complete() {
		t.Error("empty profile should not be complete")
	}
	if (UserProfile{WeightKg: 75}).Complete() {
		t.Error("profile without gender should not be complete")
	}
	if !(UserProfile{WeightKg: 75, Gender: GenderMale}).Complete() {
		t.Error("full profile should be complete")
	}
}

func TestPeriodTypeCycle(t *testing.T) {
	order := []PeriodType{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear}
	for i, p := range order {
		next := order[(i+1)%len(order)]
		if p.Next() != next {
			t.Errorf("%s.Next() = %s, want %s", p, p.Next(), next)
		}
	}
	if PeriodCustom.Next() != PeriodDay {
		t.Errorf("custom should cycle back to day")
	}
}
