package config

import (
	"time"

	"github.com/google/uuid"

	"vuorovahti/internal/model"
)

// Facilities returns the table of watched venues keyed by facility name.
// The IDs are provider-assigned and stable; uuid.MustParse makes a typo
// here fail at startup instead of producing empty search results.
//
// Both courts share the branch, group and product of the Arena Center
// badminton hall and differ only in the court's user_id.
func Facilities() map[string]model.Facility {
	return map[string]model.Facility{
		"hakis": {
			Name:        "Hakis",
			BranchID:    uuid.MustParse("2b325906-5b7a-11e9-8370-fa163e3c66dd"),
			GroupID:     uuid.MustParse("a17ccc08-838a-11e9-8fd9-fa163e3c66dd"),
			ProductID:   uuid.MustParse("59305e30-8b49-11e9-800b-fa163e3c66dd"),
			UserID:      uuid.MustParse("d7c92d04-807b-11e9-b480-fa163e3c66dd"),
			Weekday:     time.Wednesday,
			ClosingHour: 18,
		},
		"delsu": {
			Name:        "Delsu",
			BranchID:    uuid.MustParse("2b325906-5b7a-11e9-8370-fa163e3c66dd"),
			GroupID:     uuid.MustParse("a17ccc08-838a-11e9-8fd9-fa163e3c66dd"),
			ProductID:   uuid.MustParse("59305e30-8b49-11e9-800b-fa163e3c66dd"),
			UserID:      uuid.MustParse("ea8b1cf4-807b-11e9-93b7-fa163e3c66dd"),
			Weekday:     time.Friday,
			ClosingHour: 19,
		},
	}
}
