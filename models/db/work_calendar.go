package dbmodels

import (
	"time"
)

// WorkCalendar - производственный календарь контракта: норма часов по дням
// недели и периоды нерабочих дней.
type WorkCalendar struct {
	BaseSpaceModel
	Name        string               `gorm:"type:varchar(255)"`
	Attendances []CalendarAttendance `gorm:"foreignKey:CalendarID"`
	Leaves      []CalendarLeave      `gorm:"foreignKey:CalendarID"`
}

type CalendarAttendance struct {
	BaseModel
	CalendarID string `gorm:"type:varchar(36);index"`
	// день недели, time.Weekday: 0 - воскресенье
	Weekday     int
	HoursPerDay float64
}

type CalendarLeave struct {
	BaseModel
	CalendarID string    `gorm:"type:varchar(36);index"`
	Name       string    `gorm:"type:varchar(255)"`
	DateFrom   time.Time `gorm:"type:date"`
	DateTo     time.Time `gorm:"type:date"`
}

// ExpectedHours - норма часов календаря на дату с учетом нерабочих периодов
func (c WorkCalendar) ExpectedHours(date time.Time) float64 {
	for _, leave := range c.Leaves {
		if !date.Before(leave.DateFrom) && !date.After(leave.DateTo) {
			return 0
		}
	}
	for _, att := range c.Attendances {
		if att.Weekday == int(date.Weekday()) {
			return att.HoursPerDay
		}
	}
	return 0
}
