package dbmodels

import (
	"time"

	"hr-timesheet-backend/models"
)

// TimeEntry - строка табеля: отработанные часы сотрудника за дату.
type TimeEntry struct {
	BaseSpaceModel
	EmployeeID  string `gorm:"type:varchar(36);index"`
	Employee    *Employee
	Date        time.Time `gorm:"type:date;index"`
	Hours       float64
	Description string `gorm:"type:varchar(500)"`
	// ссылка на запись отпуска/отгула - строка создана модулем отсутствий
	HolidayID *string `gorm:"type:varchar(36)"`
	// ссылка на календарную встречу
	MeetingID *string `gorm:"type:varchar(36)"`
	// строка зафиксирована бухгалтерией: бизнес-поля менять нельзя
	Validated bool

	State             models.ApprovalState `gorm:"type:varchar(30);default:'draft'"`
	SubmittedAt       *time.Time
	ManagerApprovedAt *time.Time
	SeniorApprovedAt  *time.Time
	HrApprovedAt      *time.Time
	RejectedAt        *time.Time
	RejectionReason   *string    `gorm:"type:varchar(500)"`
	RejectedByID      *string    `gorm:"type:varchar(36)"`
	RejectedBy        *SpaceUser `gorm:"foreignKey:RejectedByID"`

	MinimumHours  float64
	OvertimeHours float64

	ApprovalID *string `gorm:"type:varchar(36);index"`
}

func (t TimeEntry) Validate() error {
	if err := t.BaseSpaceModel.Validate(); err != nil {
		return err
	}
	if t.EmployeeID == "" {
		return models.NewValidationError("не указан сотрудник")
	}
	if t.Date.IsZero() {
		return models.NewValidationError("не указана дата")
	}
	if t.Hours < 0 {
		return models.NewValidationError("количество часов не может быть отрицательным")
	}
	return nil
}

func (t TimeEntry) GetState() models.ApprovalState {
	return t.State
}

func (t TimeEntry) GetEmployeeID() string {
	return t.EmployeeID
}

func (t TimeEntry) IsLeaveLinked() bool {
	return t.HolidayID != nil && *t.HolidayID != ""
}

// IsLocked - строку нельзя редактировать через workflow
func (t TimeEntry) IsLocked() bool {
	return t.Validated
}
