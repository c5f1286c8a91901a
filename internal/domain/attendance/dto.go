package attendance

import "time"

type ClockInRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Notes     *string `json:"notes,omitempty"`
}

type ClockOutRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SubmitAdjustmentRequest struct {
	AttendanceRecordID string `json:"attendance_record_id"`
	ClockIn            string `json:"clock_in"`  // RFC 3339
	ClockOut           string `json:"clock_out"` // RFC 3339
	Reason             string `json:"reason"`
}

func (r SubmitAdjustmentRequest) Times() (time.Time, time.Time, error) {
	in, err := time.Parse(time.RFC3339, r.ClockIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := time.Parse(time.RFC3339, r.ClockOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}

type UpdateAdjustmentRequest struct {
	ID       string  `json:"id"`
	ClockIn  *string `json:"clock_in,omitempty"`
	ClockOut *string `json:"clock_out,omitempty"`
	Reason   *string `json:"reason,omitempty"`
}

type RejectAdjustmentRequest struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type AttendanceResponse struct {
	ID                  string   `json:"id"`
	EmployeeID          string   `json:"employee_id"`
	Date                string   `json:"date"`
	ClockIn             *string  `json:"clock_in,omitempty"`
	ClockOut            *string  `json:"clock_out,omitempty"`
	ClockInLatitude     *float64 `json:"clock_in_latitude,omitempty"`
	ClockInLongitude    *float64 `json:"clock_in_longitude,omitempty"`
	ClockOutLatitude    *float64 `json:"clock_out_latitude,omitempty"`
	ClockOutLongitude   *float64 `json:"clock_out_longitude,omitempty"`
	WorkDurationMinutes int      `json:"work_duration_minutes"`
	Status              string   `json:"status"`
	Notes               *string  `json:"notes,omitempty"`
	UnscheduledOvertime bool     `json:"unscheduled_overtime"`
}

type AdjustmentResponse struct {
	ID                 string  `json:"id"`
	AttendanceRecordID string  `json:"attendance_record_id"`
	RequesterID        string  `json:"requester_id"`
	ProposedClockIn    string  `json:"proposed_clock_in"`
	ProposedClockOut   string  `json:"proposed_clock_out"`
	Reason             string  `json:"reason"`
	Status             string  `json:"status"`
	RejectionReason    *string `json:"rejection_reason,omitempty"`
}
