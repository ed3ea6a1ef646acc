package event

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateText  string
		wantYear  int
		wantMonth time.Month
		wantDay   int
		wantOK    bool
	}{
		{
			name:      "ISO date",
			dateText:  "2024-06-17",
			wantYear:  2024,
			wantMonth: time.June,
			wantDay:   17,
			wantOK:    true,
		},
		{
			name:      "Surrounding whitespace",
			dateText:  "  2025-01-02 ",
			wantYear:  2025,
			wantMonth: time.January,
			wantDay:   2,
			wantOK:    true,
		},
		{
			name:     "Empty string",
			dateText: "",
		},
		{
			name:     "Missing zero padding",
			dateText: "2024-6-1",
		},
		{
			name:     "Day out of range",
			dateText: "2024-02-30",
		},
		{
			name:     "Date range",
			dateText: "2024-06-10 to 2024-06-12",
		},
		{
			name:     "Ongoing sentinel",
			dateText: "Ongoing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.dateText)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.dateText, ok, tt.wantOK)
			}
			if !ok {
				if !got.IsZero() {
					t.Errorf("ParseDate(%q) = %v, want zero time", tt.dateText, got)
				}
				return
			}

			if got.Year() != tt.wantYear {
				t.Errorf("ParseDate(%q).Year() = %d, want %d", tt.dateText, got.Year(), tt.wantYear)
			}
			if got.Month() != tt.wantMonth {
				t.Errorf("ParseDate(%q).Month() = %v, want %v", tt.dateText, got.Month(), tt.wantMonth)
			}
			if got.Day() != tt.wantDay {
				t.Errorf("ParseDate(%q).Day() = %d, want %d", tt.dateText, got.Day(), tt.wantDay)
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Errorf("ParseDate(%q) = %v, want midnight", tt.dateText, got)
			}
		})
	}
}

func TestParseDate_CalendarDay(t *testing.T) {
	got, ok := ParseDate("2024-09-08")
	if !ok {
		t.Fatal("ParseDate() ok = false, want true")
	}

	want := time.Date(2024, 9, 8, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Errorf("ParseDate() = %v, want %v", got, want)
	}
}

func TestEvent_Day(t *testing.T) {
	var nilEvent *Event
	if _, ok := nilEvent.Day(); ok {
		t.Error("nil Event.Day() ok = true, want false")
	}

	evt := &Event{Date: "2024-06-11"}
	day, ok := evt.Day()
	if !ok {
		t.Fatal("Event.Day() ok = false, want true")
	}
	if day.Day() != 11 {
		t.Errorf("Event.Day().Day() = %d, want 11", day.Day())
	}

	if (&Event{Date: "soon"}).HasValidDate() {
		t.Error("HasValidDate() = true for malformed date, want false")
	}
}

func TestToday(t *testing.T) {
	santiago, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}

	tests := []struct {
		name string
		now  time.Time
		loc  *time.Location
		want time.Time
	}{
		{
			name: "evening behind UTC",
			// 03:30 UTC on June 11 is still June 10 in PDT
			now:  time.Date(2024, 6, 11, 3, 30, 0, 0, time.UTC),
			loc:  time.FixedZone("PDT", -7*60*60),
			want: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "day whose midnight is skipped by DST",
			now:  time.Date(2024, 9, 8, 12, 0, 0, 0, santiago),
			loc:  santiago,
			want: time.Date(2024, 9, 8, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Today(tt.now, tt.loc)
			if !got.Equal(tt.want) {
				t.Errorf("Today() = %v, want %v", got, tt.want)
			}
		})
	}
}
