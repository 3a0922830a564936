package handlers

import (
	"fmt"

	"vuorovahti/internal/model"
	"vuorovahti/internal/service"
)

// FormatResult renders one check result as a user-facing message.
func FormatResult(result *service.CheckResult) string {
	date := result.Date.Format("2006-01-02")

	switch result.Verdict {
	case model.VerdictAvailable:
		return fmt.Sprintf("✅ %s: vuoro vapaana %s, loppuu tunnilla %d!",
			result.Facility.Name, date, result.Facility.ClosingHour)
	case model.VerdictUnavailable:
		return fmt.Sprintf("❌ %s: tunnilla %d ei ole loppuvia vuoroja %s.",
			result.Facility.Name, result.Facility.ClosingHour, date)
	default:
		return fmt.Sprintf("🤷 %s: ei vuorotietoja päivälle %s.",
			result.Facility.Name, date)
	}
}
