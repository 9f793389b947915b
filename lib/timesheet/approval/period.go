package approvalhandler

import (
	"time"

	"hr-timesheet-backend/models"
)

// PeriodBounds - границы периода сетки, в который попадает дата anchor.
// Неделя начинается с понедельника.
func PeriodBounds(kind models.PeriodKind, anchor time.Time) (dateStart, dateEnd time.Time) {
	day := truncateToDay(anchor)
	switch kind {
	case models.PeriodWeek:
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		dateStart = day.AddDate(0, 0, 1-weekday)
		dateEnd = dateStart.AddDate(0, 0, 6)
	case models.PeriodMonth:
		dateStart = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		dateEnd = dateStart.AddDate(0, 1, -1)
	case models.PeriodYear:
		dateStart = time.Date(day.Year(), 1, 1, 0, 0, 0, 0, day.Location())
		dateEnd = time.Date(day.Year(), 12, 31, 0, 0, 0, 0, day.Location())
	default:
		dateStart = day
		dateEnd = day
	}
	return dateStart, dateEnd
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
