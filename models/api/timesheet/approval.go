package timesheetapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"hr-timesheet-backend/models"
	apimodels "hr-timesheet-backend/models/api"
	dbmodels "hr-timesheet-backend/models/db"
)

// ApprovalCreateData - создание заявки из выбранных строк табеля.
// Явные даты имеют приоритет над периодом сетки (period_kind + anchor).
type ApprovalCreateData struct {
	EntryIDs   []string          `json:"entry_ids"`
	DateStart  *time.Time        `json:"date_start"`
	DateEnd    *time.Time        `json:"date_end"`
	PeriodKind models.PeriodKind `json:"period_kind"`
	Anchor     *time.Time        `json:"anchor"`
}

func (r ApprovalCreateData) Validate() error {
	if len(r.EntryIDs) == 0 {
		return errors.New("не выбраны строки табеля")
	}
	if r.DateStart != nil && r.DateEnd != nil {
		if r.DateEnd.Before(*r.DateStart) {
			return errors.New("дата окончания раньше даты начала")
		}
		return nil
	}
	if r.PeriodKind != "" && !r.PeriodKind.IsValid() {
		return errors.Errorf("неизвестный период: %v", r.PeriodKind)
	}
	return nil
}

type ApprovalView struct {
	ID         string    `json:"id"`
	Number     string    `json:"number"`
	EmployeeID string    `json:"employee_id"`
	Employee   string    `json:"employee,omitempty"`
	DateStart  time.Time `json:"date_start"`
	DateEnd    time.Time `json:"date_end"`

	ManagerUserID string `json:"manager_user_id,omitempty"`
	SeniorUserID  string `json:"senior_user_id,omitempty"`
	HrUserID      string `json:"hr_user_id,omitempty"`

	State      models.ApprovalState `json:"state"`
	StateHuman string               `json:"state_human"`
	Stamps     TransitionStamps     `json:"stamps"`

	TotalHours    float64 `json:"total_hours"`
	MinimumHours  float64 `json:"minimum_hours"`
	OvertimeHours float64 `json:"overtime_hours"`

	HasValidatedEntries bool   `json:"has_validated_entries"`
	HasTimeoffEntries   bool   `json:"has_timeoff_entries"`
	Notes               string `json:"notes,omitempty"`

	Lines []TimeEntryView `json:"lines,omitempty"`

	PayrollProcessed bool   `json:"payroll_processed"`
	PayslipID        string `json:"payslip_id,omitempty"`
	PayrollBatchID   string `json:"payroll_batch_id,omitempty"`
}

func ApprovalConvert(rec dbmodels.TimesheetApproval) ApprovalView {
	view := ApprovalView{
		ID:         rec.ID,
		Number:     rec.Number,
		EmployeeID: rec.EmployeeID,
		DateStart:  rec.DateStart,
		DateEnd:    rec.DateEnd,
		State:      rec.State,
		StateHuman: rec.State.ToHuman(),
		Stamps: TransitionStamps{
			SubmittedAt:       rec.SubmittedAt,
			ManagerApprovedAt: rec.ManagerApprovedAt,
			SeniorApprovedAt:  rec.SeniorApprovedAt,
			HrApprovedAt:      rec.HrApprovedAt,
			RejectedAt:        rec.RejectedAt,
		},
		TotalHours:          rec.TotalHours,
		MinimumHours:        rec.MinimumHours,
		OvertimeHours:       rec.OvertimeHours,
		HasValidatedEntries: rec.HasValidatedEntries,
		HasTimeoffEntries:   rec.HasTimeoffEntries,
		Notes:               rec.Notes,
		PayrollProcessed:    rec.PayrollProcessed,
	}
	if rec.Employee != nil {
		view.Employee = rec.Employee.GetFullName()
	}
	if rec.ManagerUserID != nil {
		view.ManagerUserID = *rec.ManagerUserID
	}
	if rec.SeniorUserID != nil {
		view.SeniorUserID = *rec.SeniorUserID
	}
	if rec.HrUserID != nil {
		view.HrUserID = *rec.HrUserID
	}
	if rec.RejectionReason != nil {
		view.Stamps.RejectionReason = *rec.RejectionReason
	}
	if rec.RejectedByID != nil {
		view.Stamps.RejectedByID = *rec.RejectedByID
	}
	if rec.PayslipID != nil {
		view.PayslipID = *rec.PayslipID
	}
	if rec.PayrollBatchID != nil {
		view.PayrollBatchID = *rec.PayrollBatchID
	}
	for _, line := range rec.Lines {
		view.Lines = append(view.Lines, TimeEntryConvert(line))
	}
	return view
}

// CreateResult - идентификатор созданной заявки и необязательное предупреждение
// о включенных зафиксированных строках
type CreateResult struct {
	ID      string `json:"id"`
	Warning string `json:"warning,omitempty"`
}

type RejectData struct {
	Reason string `json:"reason"`
}

func (r RejectData) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return errors.New("не указана причина отклонения")
	}
	return nil
}

type SignatureData struct {
	Role models.SignerRole `json:"role"`
	Sign []byte            `json:"sign"`
}

func (r SignatureData) Validate() error {
	switch r.Role {
	case models.SignerEmployee, models.SignerManager, models.SignerSenior, models.SignerHr:
	default:
		return errors.Errorf("неизвестная роль подписи: %v", r.Role)
	}
	if len(r.Sign) == 0 {
		return errors.New("не передана подпись")
	}
	return nil
}

type ApprovalFilter struct {
	apimodels.Pagination
	EmployeeID string               `json:"employee_id"`
	State      models.ApprovalState `json:"state"`
}
