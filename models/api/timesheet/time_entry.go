package timesheetapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"hr-timesheet-backend/models"
	apimodels "hr-timesheet-backend/models/api"
	dbmodels "hr-timesheet-backend/models/db"
)

type TimeEntryData struct {
	EmployeeID  string    `json:"employee_id"`
	Date        time.Time `json:"date"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description"`
	HolidayID   string    `json:"holiday_id"` // ссылка на запись отсутствия
	MeetingID   string    `json:"meeting_id"` // ссылка на календарную встречу
}

func (r TimeEntryData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.Date.IsZero() {
		return errors.New("не указана дата")
	}
	if r.Hours < 0 {
		return errors.New("количество часов не может быть отрицательным")
	}
	return nil
}

type TimeEntryView struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	Employee    string    `json:"employee,omitempty"`
	Date        time.Time `json:"date"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description"`
	Validated   bool      `json:"validated"`
	LeaveLinked bool      `json:"leave_linked"`

	State      models.ApprovalState `json:"state"`
	StateHuman string               `json:"state_human"`
	Stamps     TransitionStamps     `json:"stamps"`

	MinimumHours  float64 `json:"minimum_hours"`
	OvertimeHours float64 `json:"overtime_hours"`

	ApprovalID string `json:"approval_id,omitempty"`
}

type TransitionStamps struct {
	SubmittedAt       *time.Time `json:"submitted_at,omitempty"`
	ManagerApprovedAt *time.Time `json:"manager_approved_at,omitempty"`
	SeniorApprovedAt  *time.Time `json:"senior_approved_at,omitempty"`
	HrApprovedAt      *time.Time `json:"hr_approved_at,omitempty"`
	RejectedAt        *time.Time `json:"rejected_at,omitempty"`
	RejectionReason   string     `json:"rejection_reason,omitempty"`
	RejectedByID      string     `json:"rejected_by_id,omitempty"`
}

func TimeEntryConvert(rec dbmodels.TimeEntry) TimeEntryView {
	view := TimeEntryView{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		Date:        rec.Date,
		Hours:       rec.Hours,
		Description: rec.Description,
		Validated:   rec.Validated,
		LeaveLinked: rec.IsLeaveLinked(),
		State:       rec.State,
		StateHuman:  rec.State.ToHuman(),
		Stamps: TransitionStamps{
			SubmittedAt:       rec.SubmittedAt,
			ManagerApprovedAt: rec.ManagerApprovedAt,
			SeniorApprovedAt:  rec.SeniorApprovedAt,
			HrApprovedAt:      rec.HrApprovedAt,
			RejectedAt:        rec.RejectedAt,
		},
		MinimumHours:  rec.MinimumHours,
		OvertimeHours: rec.OvertimeHours,
	}
	if rec.Employee != nil {
		view.Employee = rec.Employee.GetFullName()
	}
	if rec.RejectionReason != nil {
		view.Stamps.RejectionReason = *rec.RejectionReason
	}
	if rec.RejectedByID != nil {
		view.Stamps.RejectedByID = *rec.RejectedByID
	}
	if rec.ApprovalID != nil {
		view.ApprovalID = *rec.ApprovalID
	}
	return view
}

type TimeEntryListData struct {
	apimodels.Pagination
	TimeEntryFilter
}

type TimeEntryFilter struct {
	EmployeeID string               `json:"employee_id"`
	State      models.ApprovalState `json:"state"`
	DateFrom   *time.Time           `json:"date_from"`
	DateTo     *time.Time           `json:"date_to"`
}

// IDListData - выбранные строки для пакетных действий
type IDListData struct {
	IDs []string `json:"ids"`
}

type RejectSelectedData struct {
	IDs    []string `json:"ids"`
	Reason string   `json:"reason"`
}

func (r RejectSelectedData) Validate() error {
	if len(r.IDs) == 0 {
		return errors.New("не выбраны записи")
	}
	if strings.TrimSpace(r.Reason) == "" {
		return errors.New("не указана причина отклонения")
	}
	return nil
}

func (r IDListData) Validate() error {
	if len(r.IDs) == 0 {
		return errors.New("не выбраны записи")
	}
	return nil
}
