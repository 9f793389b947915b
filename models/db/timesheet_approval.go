package dbmodels

import (
	"time"

	"hr-timesheet-backend/models"
)

// TimesheetApproval - заявка на согласование табеля: группа строк за период
// одного сотрудника, проходящая цепочку руководитель -> второй этап -> HR.
type TimesheetApproval struct {
	BaseSpaceModel
	Number     string `gorm:"type:varchar(30);index"`
	EmployeeID string `gorm:"type:varchar(36);index:idx_approval_period"`
	Employee   *Employee
	DateStart  time.Time `gorm:"type:date;index:idx_approval_period"`
	DateEnd    time.Time `gorm:"type:date;index:idx_approval_period"`

	// снимки согласующих, зафиксированные при создании/подаче
	ManagerUserID *string    `gorm:"type:varchar(36)"`
	ManagerUser   *SpaceUser `gorm:"foreignKey:ManagerUserID"`
	SeniorUserID  *string    `gorm:"type:varchar(36)"`
	SeniorUser    *SpaceUser `gorm:"foreignKey:SeniorUserID"`
	HrUserID      *string    `gorm:"type:varchar(36)"`
	HrUser        *SpaceUser `gorm:"foreignKey:HrUserID"`

	State             models.ApprovalState `gorm:"type:varchar(30);default:'draft'"`
	SubmittedAt       *time.Time
	ManagerApprovedAt *time.Time
	SeniorApprovedAt  *time.Time
	HrApprovedAt      *time.Time
	RejectedAt        *time.Time
	RejectionReason   *string    `gorm:"type:varchar(500)"`
	RejectedByID      *string    `gorm:"type:varchar(36)"`
	RejectedBy        *SpaceUser `gorm:"foreignKey:RejectedByID"`

	Lines []TimeEntry `gorm:"foreignKey:ApprovalID"`

	TotalHours    float64
	MinimumHours  float64
	OvertimeHours float64

	HasValidatedEntries bool
	HasTimeoffEntries   bool
	Notes               string `gorm:"type:varchar(1000)"`

	EmployeeSignature []byte
	ManagerSignature  []byte
	SeniorSignature   []byte
	HrSignature       []byte

	// заполняются при передаче в расчет зарплаты
	WorkEntryTypeID  *string `gorm:"type:varchar(36)"`
	PayslipID        *string `gorm:"type:varchar(36)"`
	PayrollBatchID   *string `gorm:"type:varchar(36)"`
	PayrollProcessed bool
}

func (a TimesheetApproval) GetState() models.ApprovalState {
	return a.State
}

func (a TimesheetApproval) GetEmployeeID() string {
	return a.EmployeeID
}

func (a TimesheetApproval) HasSignature(role models.SignerRole) bool {
	switch role {
	case models.SignerEmployee:
		return len(a.EmployeeSignature) > 0
	case models.SignerManager:
		return len(a.ManagerSignature) > 0
	case models.SignerSenior:
		return len(a.SeniorSignature) > 0
	case models.SignerHr:
		return len(a.HrSignature) > 0
	}
	return false
}

// AllLinesValidated - все строки заявки зафиксированы бухгалтерией
func (a TimesheetApproval) AllLinesValidated() bool {
	if len(a.Lines) == 0 {
		return false
	}
	for _, line := range a.Lines {
		if !line.Validated {
			return false
		}
	}
	return true
}
