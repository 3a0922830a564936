package handlers

import (
	"strings"
	"testing"
	"time"

	"vuorovahti/internal/model"
	"vuorovahti/internal/service"
)

func testResult(verdict model.Verdict) *service.CheckResult {
	return &service.CheckResult{
		Facility: model.Facility{Name: "Hakis", ClosingHour: 18},
		Date:     time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC),
		Verdict:  verdict,
	}
}

func TestFormatResult_Available(t *testing.T) {
	got := FormatResult(testResult(model.VerdictAvailable))
	if !strings.Contains(got, "vuoro vapaana 2024-05-08") || !strings.Contains(got, "tunnilla 18") {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestFormatResult_Unavailable(t *testing.T) {
	got := FormatResult(testResult(model.VerdictUnavailable))
	if !strings.Contains(got, "ei ole loppuvia vuoroja") {
		t.Fatalf("unexpected message: %q", got)
	}
	if strings.Contains(got, "vapaana") {
		t.Fatalf("unavailable message reads as available: %q", got)
	}
}

func TestFormatResult_NoData(t *testing.T) {
	got := FormatResult(testResult(model.VerdictNoData))
	if !strings.Contains(got, "ei vuorotietoja") {
		t.Fatalf("unexpected message: %q", got)
	}
}
