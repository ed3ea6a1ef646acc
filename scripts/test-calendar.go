package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/campus-events/internal/calendar"
	"github.com/pfrederiksen/campus-events/internal/event"
)

func main() {
	// Sample events: one well-formed, one with a free-text date that is skipped
	events := []*event.Event{
		{
			ID:          "test-event-123",
			Title:       "Intro to Machine Learning; Workshop",
			Organizer:   "Data Science Society",
			Date:        time.Now().AddDate(0, 0, 3).Format(event.DateLayout),
			Time:        "5:00 PM",
			Location:    "Moffitt Library, Room 102",
			Description: "Hands-on session, bring a laptop.",
			Tags:        []string{"Science & Tech", "Workshop"},
			URL:         "https://events.berkeley.edu/test-event-123",
		},
		{
			Title: "Undated Mixer",
			Date:  "sometime soon",
		},
	}

	icsContent := calendar.GenerateICS(events, time.Now())

	// Write to file (owner read/write only for security)
	filename := "test-campus-events.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
