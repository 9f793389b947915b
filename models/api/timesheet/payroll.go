package timesheetapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	dbmodels "hr-timesheet-backend/models/db"
)

type PayrollGenerateData struct {
	ApprovalIDs []string  `json:"approval_ids"`
	StructRef   string    `json:"struct_ref"` // структура расчета зарплаты
	DateFrom    time.Time `json:"date_from"`
	DateTo      time.Time `json:"date_to"`
	BatchName   string    `json:"batch_name"`
}

func (r PayrollGenerateData) Validate() error {
	if len(r.ApprovalIDs) == 0 {
		return errors.New("не выбраны заявки на согласование")
	}
	if r.StructRef == "" {
		return errors.New("не указана структура расчета зарплаты")
	}
	if r.DateFrom.IsZero() || r.DateTo.IsZero() {
		return errors.New("не указан период расчета")
	}
	if r.DateTo.Before(r.DateFrom) {
		return errors.New("дата окончания раньше даты начала")
	}
	if strings.TrimSpace(r.BatchName) == "" {
		return errors.New("не указано название пакета")
	}
	return nil
}

// PayrollSummaryView - сводка по выбранным заявкам для формы генерации
type PayrollSummaryView struct {
	EmployeeCount      int       `json:"employee_count"`
	TotalOvertimeHours float64   `json:"total_overtime_hours"`
	DateFrom           time.Time `json:"date_from"`
	DateTo             time.Time `json:"date_to"`
}

type BatchView struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	DateStart time.Time     `json:"date_start"`
	DateEnd   time.Time     `json:"date_end"`
	Payslips  []PayslipView `json:"payslips,omitempty"`
}

type PayslipView struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	EmployeeID string    `json:"employee_id"`
	Employee   string    `json:"employee,omitempty"`
	DateFrom   time.Time `json:"date_from"`
	DateTo     time.Time `json:"date_to"`
	Computed   bool      `json:"computed"`

	WorkedDays []WorkedDaysView `json:"worked_days,omitempty"`
}

type WorkedDaysView struct {
	Code          string  `json:"code"`
	NumberOfDays  float64 `json:"number_of_days"`
	NumberOfHours float64 `json:"number_of_hours"`
}

func PayslipConvert(rec dbmodels.Payslip) PayslipView {
	view := PayslipView{
		ID:         rec.ID,
		Name:       rec.Name,
		EmployeeID: rec.EmployeeID,
		DateFrom:   rec.DateFrom,
		DateTo:     rec.DateTo,
		Computed:   rec.Computed,
	}
	if rec.Employee != nil {
		view.Employee = rec.Employee.GetFullName()
	}
	for _, wd := range rec.WorkedDays {
		view.WorkedDays = append(view.WorkedDays, WorkedDaysView{
			Code:          wd.Code,
			NumberOfDays:  wd.NumberOfDays,
			NumberOfHours: wd.NumberOfHours,
		})
	}
	return view
}
