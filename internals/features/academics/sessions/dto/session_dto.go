package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/academics/sessions/model"
)

const dateLayout = "2006-01-02"

type CreateSessionRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=80"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	IsCurrent bool   `json:"is_current"`
}

func (r *CreateSessionRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
}

// Dates returns the parsed range. Format is guaranteed by the datetime
// validator tag, so parse errors cannot occur after validation.
func (r CreateSessionRequest) Dates() (time.Time, time.Time) {
	start, _ := time.Parse(dateLayout, r.StartDate)
	end, _ := time.Parse(dateLayout, r.EndDate)
	return start, end
}

func (r CreateSessionRequest) ToModel(schoolID uuid.UUID) m.AcademicSessionModel {
	start, end := r.Dates()
	return m.AcademicSessionModel{
		SessionSchoolID:  schoolID,
		SessionName:      r.Name,
		SessionStartDate: start,
		SessionEndDate:   end,
		SessionIsCurrent: r.IsCurrent,
	}
}

type UpdateSessionRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=80"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateSessionRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.StartDate != nil {
		v := strings.TrimSpace(*r.StartDate)
		r.StartDate = &v
	}
	if r.EndDate != nil {
		v := strings.TrimSpace(*r.EndDate)
		r.EndDate = &v
	}
}

func (r UpdateSessionRequest) Apply(row *m.AcademicSessionModel) {
	if r.Name != nil {
		row.SessionName = *r.Name
	}
	if r.StartDate != nil {
		d, _ := time.Parse(dateLayout, *r.StartDate)
		row.SessionStartDate = d
	}
	if r.EndDate != nil {
		d, _ := time.Parse(dateLayout, *r.EndDate)
		row.SessionEndDate = d
	}
}

type CreateTermRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=80"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

func (r *CreateTermRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
}

func (r CreateTermRequest) Dates() (time.Time, time.Time) {
	start, _ := time.Parse(dateLayout, r.StartDate)
	end, _ := time.Parse(dateLayout, r.EndDate)
	return start, end
}

func (r CreateTermRequest) ToModel(sessionID uuid.UUID) m.AcademicTermModel {
	start, end := r.Dates()
	return m.AcademicTermModel{
		TermSessionID: sessionID,
		TermName:      r.Name,
		TermStartDate: start,
		TermEndDate:   end,
	}
}

type SessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Name      string    `json:"name"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	IsCurrent bool      `json:"is_current"`
}

func FromSessionModel(s m.AcademicSessionModel) SessionResponse {
	return SessionResponse{
		SessionID: s.SessionID,
		Name:      s.SessionName,
		StartDate: s.SessionStartDate.Format(dateLayout),
		EndDate:   s.SessionEndDate.Format(dateLayout),
		IsCurrent: s.SessionIsCurrent,
	}
}

func FromSessionModels(rows []m.AcademicSessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromSessionModel(r))
	}
	return out
}

type TermResponse struct {
	TermID    uuid.UUID `json:"term_id"`
	SessionID uuid.UUID `json:"session_id"`
	Name      string    `json:"name"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
}

func FromTermModel(t m.AcademicTermModel) TermResponse {
	return TermResponse{
		TermID:    t.TermID,
		SessionID: t.TermSessionID,
		Name:      t.TermName,
		StartDate: t.TermStartDate.Format(dateLayout),
		EndDate:   t.TermEndDate.Format(dateLayout),
	}
}

func FromTermModels(rows []m.AcademicTermModel) []TermResponse {
	out := make([]TermResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromTermModel(r))
	}
	return out
}
