package monitor

import "time"

type Status struct {
	PostgreSQL     bool      `json:"postgresql"`
	Redis          bool      `json:"redis"`
	Journal        bool      `json:"journal"`
	JournalEntries int       `json:"journal_entries"`
	LastCheck      time.Time `json:"last_check"`
}
