package worktime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hr-timesheet-backend/models"
	dbmodels "hr-timesheet-backend/models/db"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func fullWeekCalendar(hours float64) *dbmodels.WorkCalendar {
	calendar := dbmodels.WorkCalendar{Name: "пятидневка"}
	for weekday := int(time.Monday); weekday <= int(time.Friday); weekday++ {
		calendar.Attendances = append(calendar.Attendances, dbmodels.CalendarAttendance{
			Weekday:     weekday,
			HoursPerDay: hours,
		})
	}
	return &calendar
}

func openContract(dateStart time.Time, calendar *dbmodels.WorkCalendar) dbmodels.Contract {
	return dbmodels.Contract{
		EmployeeID: "e1",
		State:      models.ContractStateOpen,
		DateStart:  dateStart,
		Calendar:   calendar,
	}
}

func TestDayMinimum(t *testing.T) {
	monday := date(2025, time.June, 2)
	saturday := date(2025, time.June, 7)

	t.Run("норма по календарю контракта", func(t *testing.T) {
		contracts := []dbmodels.Contract{openContract(date(2025, time.January, 1), fullWeekCalendar(7))}
		require.Equal(t, 7.0, DayMinimum(contracts, monday))
	})

	t.Run("нерабочий по календарю день дает норму по умолчанию", func(t *testing.T) {
		contracts := []dbmodels.Contract{openContract(date(2025, time.January, 1), fullWeekCalendar(8))}
		require.Equal(t, models.DefaultDailyHours, DayMinimum(contracts, saturday))
	})

	t.Run("контракт без календаря дает норму по умолчанию", func(t *testing.T) {
		contracts := []dbmodels.Contract{openContract(date(2025, time.January, 1), nil)}
		require.Equal(t, models.DefaultDailyHours, DayMinimum(contracts, monday))
	})

	t.Run("без контракта действует норма по умолчанию", func(t *testing.T) {
		require.Equal(t, models.DefaultDailyHours, DayMinimum(nil, monday))
	})

	t.Run("контракт не действует на дату", func(t *testing.T) {
		contracts := []dbmodels.Contract{openContract(date(2025, time.July, 1), fullWeekCalendar(7))}
		require.Equal(t, models.DefaultDailyHours, DayMinimum(contracts, monday))
	})

	t.Run("нерабочий период календаря не отменяет норму по умолчанию", func(t *testing.T) {
		calendar := fullWeekCalendar(8)
		calendar.Leaves = append(calendar.Leaves, dbmodels.CalendarLeave{
			Name:     "отпуск",
			DateFrom: date(2025, time.June, 2),
			DateTo:   date(2025, time.June, 6),
		})
		contracts := []dbmodels.Contract{openContract(date(2025, time.January, 1), calendar)}
		require.Equal(t, models.DefaultDailyHours, DayMinimum(contracts, monday))
	})
}

func TestRangeMinimum(t *testing.T) {
	// неделя 2025-06-02 (пн) - 2025-06-08 (вс)
	weekStart := date(2025, time.June, 2)
	weekEnd := date(2025, time.June, 8)

	t.Run("по календарю контракта", func(t *testing.T) {
		contracts := []dbmodels.Contract{openContract(date(2025, time.January, 1), fullWeekCalendar(8))}
		require.Equal(t, 40.0, RangeMinimum(contracts, weekStart, weekEnd))
	})

	t.Run("без контракта выходные не дают нормы", func(t *testing.T) {
		require.Equal(t, 40.0, RangeMinimum(nil, weekStart, weekEnd))
	})

	t.Run("контракт без календаря начисляет каждый день периода", func(t *testing.T) {
		contracts := []dbmodels.Contract{openContract(date(2025, time.January, 1), nil)}
		require.Equal(t, 56.0, RangeMinimum(contracts, weekStart, weekEnd))
	})

	t.Run("контракт действует на часть периода", func(t *testing.T) {
		// контракт с четверга, до этого норма без контракта
		contracts := []dbmodels.Contract{openContract(date(2025, time.June, 5), fullWeekCalendar(6))}
		// пн-ср без контракта 3*8, чт-пт по календарю 2*6, сб-вс 0
		require.Equal(t, 36.0, RangeMinimum(contracts, weekStart, weekEnd))
	})

	t.Run("один день", func(t *testing.T) {
		require.Equal(t, 8.0, RangeMinimum(nil, weekStart, weekStart))
	})
}

func TestOvertime(t *testing.T) {
	require.Equal(t, 2.5, Overtime(42.5, 40))
	require.Equal(t, 0.0, Overtime(38, 40))
	require.Equal(t, 0.0, Overtime(40, 40))
	require.Equal(t, 0.0, Overtime(0, 0))
}
