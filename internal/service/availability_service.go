package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"vuorovahti/internal/avoinna"
	"vuorovahti/internal/model"
	"vuorovahti/internal/schedule"
)

// slotClient is what the service needs from the provider client.
type slotClient interface {
	Slots(ctx context.Context, q model.SlotQuery) ([]avoinna.Slot, error)
}

// AvailabilityService answers whether a facility's recurring shift is
// free on its next occurrence. Stateless across checks: every call
// resolves the date, runs one slot search and discards the response.
type AvailabilityService struct {
	client     slotClient
	facilities map[string]model.Facility
	loc        *time.Location
	logger     *zap.Logger
	now        func() time.Time
}

func NewAvailabilityService(
	client slotClient,
	facilities map[string]model.Facility,
	loc *time.Location,
	logger *zap.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		client:     client,
		facilities: facilities,
		loc:        loc,
		logger:     logger,
		now:        time.Now,
	}
}

// CheckResult carries the verdict together with the inputs the delivery
// channel needs to render it.
type CheckResult struct {
	Facility model.Facility
	Date     time.Time
	Verdict  model.Verdict
}

// Names returns the known facility names in stable order.
func (s *AvailabilityService) Names() []string {
	names := make([]string, 0, len(s.facilities))
	for name := range s.facilities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckFacility resolves the next occurrence of the facility's shift
// weekday and reports whether a free shift ends at its closing hour.
// Transport and decode failures propagate; they are never folded into a
// verdict.
func (s *AvailabilityService) CheckFacility(ctx context.Context, name string) (*CheckResult, error) {
	facility, ok := s.facilities[name]
	if !ok {
		return nil, fmt.Errorf("unknown facility %q", name)
	}

	date := schedule.NextOccurrence(s.now().In(s.loc), facility.Weekday, 0)

	slots, err := s.client.Slots(ctx, facility.Query(date))
	if err != nil {
		return nil, fmt.Errorf("check %s availability: %w", facility.Name, err)
	}

	verdict := s.deriveVerdict(slots, facility.ClosingHour)

	s.logger.Info("Availability check done",
		zap.String("facility", facility.Name),
		zap.String("date", date.Format("2006-01-02")),
		zap.String("verdict", string(verdict)))

	return &CheckResult{Facility: facility, Date: date, Verdict: verdict}, nil
}

// deriveVerdict walks the records in response order. The first end time
// that localizes to the closing hour wins; records without a usable end
// time are skipped. All comparisons happen in the reference timezone,
// an 18:00 UTC end is a different local hour depending on DST.
func (s *AvailabilityService) deriveVerdict(slots []avoinna.Slot, closingHour int) model.Verdict {
	inspected := false

	for _, slot := range slots {
		if slot.EndTime == nil {
			continue
		}

		end, err := time.Parse(time.RFC3339, *slot.EndTime)
		if err != nil {
			s.logger.Warn("Skipping shift with unparsable end time",
				zap.String("endtime", *slot.EndTime),
				zap.Error(err))
			continue
		}

		local := end.In(s.loc)
		s.logger.Info("Free shift end time", zap.String("endtime", local.Format(time.RFC3339)))

		inspected = true
		if local.Hour() == closingHour {
			return model.VerdictAvailable
		}
	}

	if !inspected {
		return model.VerdictNoData
	}
	return model.VerdictUnavailable
}
