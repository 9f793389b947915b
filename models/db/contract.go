package dbmodels

import (
	"time"

	"hr-timesheet-backend/models"
)

type Contract struct {
	BaseSpaceModel
	EmployeeID string    `gorm:"type:varchar(36);index"`
	Employee   *Employee
	State      models.ContractState `gorm:"type:varchar(20)"`
	DateStart  time.Time            `gorm:"type:date"`
	// открытая дата окончания - бессрочный контракт
	DateEnd    *time.Time `gorm:"type:date"`
	CalendarID *string    `gorm:"type:varchar(36)"`
	Calendar   *WorkCalendar
}

// CoversPeriod - открытый контракт, срок действия которого пересекается
// с периодом
func (c Contract) CoversPeriod(dateFrom, dateTo time.Time) bool {
	if c.State != models.ContractStateOpen {
		return false
	}
	if c.DateStart.After(dateTo) {
		return false
	}
	return c.DateEnd == nil || !c.DateEnd.Before(dateFrom)
}

// ActiveOn - контракт действует на дату
func (c Contract) ActiveOn(date time.Time) bool {
	if c.State != models.ContractStateOpen {
		return false
	}
	if c.DateStart.After(date) {
		return false
	}
	if c.DateEnd != nil && c.DateEnd.Before(date) {
		return false
	}
	return true
}
