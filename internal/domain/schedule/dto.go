package schedule

import (
	"strings"
	"time"
)

type CreateSlotRequest struct {
	EmployeeID string  `json:"employee_id"`
	Kind       string  `json:"kind"`
	DayOfWeek  *int    `json:"day_of_week,omitempty"` // 0 = Sunday
	Date       *string `json:"date,omitempty"`        // YYYY-MM-DD
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
}

func (r CreateSlotRequest) Validate() error {
	switch SlotKind(strings.ToUpper(r.Kind)) {
	case KindRecurring:
		if r.DayOfWeek == nil || r.Date != nil {
			return ErrInvalidSlotKind
		}
		if *r.DayOfWeek < 0 || *r.DayOfWeek > 6 {
			return ErrInvalidSlotKind
		}
	case KindDateSpecific:
		if r.Date == nil || r.DayOfWeek != nil {
			return ErrInvalidSlotKind
		}
	default:
		return ErrInvalidSlotKind
	}
	if _, err := time.Parse("15:04", r.StartTime); err != nil {
		return ErrInvalidTimeWindow
	}
	if _, err := time.Parse("15:04", r.EndTime); err != nil {
		return ErrInvalidTimeWindow
	}
	return nil
}

type SlotResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Kind       string  `json:"kind"`
	DayOfWeek  *int    `json:"day_of_week,omitempty"`
	Date       *string `json:"date,omitempty"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
}
