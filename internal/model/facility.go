package model

import (
	"time"

	"github.com/google/uuid"
)

// Facility is one of the Arena Center venues being polled. The four IDs
// are provider-assigned and together select one court's slot search.
type Facility struct {
	Name        string
	BranchID    uuid.UUID
	GroupID     uuid.UUID
	ProductID   uuid.UUID
	UserID      uuid.UUID
	Weekday     time.Weekday // weekday of the recurring shift
	ClosingHour int          // local hour the shift must end at to count as a match
}

// SlotQuery is the parameter set for one slot search. Built fresh per
// check; Date doubles as the start and end of the single-day window.
type SlotQuery struct {
	BranchID  string
	GroupID   string
	ProductID string
	UserID    string
	Date      string // YYYY-MM-DD
}

// Query builds the slot search parameters for this facility on the given date.
func (f Facility) Query(date time.Time) SlotQuery {
	return SlotQuery{
		BranchID:  f.BranchID.String(),
		GroupID:   f.GroupID.String(),
		ProductID: f.ProductID.String(),
		UserID:    f.UserID.String(),
		Date:      date.Format("2006-01-02"),
	}
}
