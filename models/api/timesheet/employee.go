package timesheetapimodels

import (
	"time"

	"github.com/pkg/errors"

	"hr-timesheet-backend/models"
	dbmodels "hr-timesheet-backend/models/db"
)

type EmployeeData struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	UserID        string `json:"user_id"`
	ManagerUserID string `json:"manager_user_id"`
	DepartmentID  string `json:"department_id"`
}

func (r EmployeeData) Validate() error {
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("не указано имя сотрудника")
	}
	return nil
}

type EmployeeView struct {
	ID string `json:"id"`
	EmployeeData
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	view := EmployeeView{
		ID: rec.ID,
		EmployeeData: EmployeeData{
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Email:     rec.Email,
		},
	}
	if rec.UserID != nil {
		view.UserID = *rec.UserID
	}
	if rec.ManagerUserID != nil {
		view.ManagerUserID = *rec.ManagerUserID
	}
	if rec.DepartmentID != nil {
		view.DepartmentID = *rec.DepartmentID
	}
	return view
}

type ContractData struct {
	EmployeeID string     `json:"employee_id"`
	DateStart  time.Time  `json:"date_start"`
	DateEnd    *time.Time `json:"date_end"`
	CalendarID string     `json:"calendar_id"`
}

func (r ContractData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.DateStart.IsZero() {
		return errors.New("не указана дата начала контракта")
	}
	if r.DateEnd != nil && r.DateEnd.Before(r.DateStart) {
		return errors.New("дата окончания контракта раньше даты начала")
	}
	return nil
}

type ContractView struct {
	ID         string               `json:"id"`
	EmployeeID string               `json:"employee_id"`
	State      models.ContractState `json:"state"`
	DateStart  time.Time            `json:"date_start"`
	DateEnd    *time.Time           `json:"date_end,omitempty"`
	CalendarID string               `json:"calendar_id,omitempty"`
}

func ContractConvert(rec dbmodels.Contract) ContractView {
	view := ContractView{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		State:      rec.State,
		DateStart:  rec.DateStart,
		DateEnd:    rec.DateEnd,
	}
	if rec.CalendarID != nil {
		view.CalendarID = *rec.CalendarID
	}
	return view
}
