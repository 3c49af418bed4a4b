package dto

import (
	"strings"
	"time"

	m "schoolku_backend/internals/features/attendance/teacher_checkin/model"
)

type ManualCheckinRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	CheckInTime string `json:"check_in_time" validate:"required"`
	Reason      string `json:"reason" validate:"required,min=1,max=255"`
}

func (r *ManualCheckinRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.CheckInTime = strings.TrimSpace(r.CheckInTime)
	r.Reason = strings.TrimSpace(r.Reason)
}

// CheckinResponse is the exposed field allow-list: tenant and storage
// internals stay out, so new columns never leak by default.
type CheckinResponse struct {
	CheckinID   string    `json:"checkin_id"`
	Date        string    `json:"date"`
	CheckInTime string    `json:"check_in_time"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func FromCheckinModel(c m.TeacherCheckinModel) CheckinResponse {
	return CheckinResponse{
		CheckinID:   c.CheckinID.String(),
		Date:        c.CheckinDate.Format("2006-01-02"),
		CheckInTime: c.CheckinTime.String(),
		Reason:      c.CheckinReason,
		Status:      c.CheckinStatus,
		SubmittedAt: c.CheckinSubmittedAt,
	}
}

func FromCheckinModels(rows []m.TeacherCheckinModel) []CheckinResponse {
	out := make([]CheckinResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromCheckinModel(r))
	}
	return out
}
