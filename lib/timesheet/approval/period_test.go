package approvalhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hr-timesheet-backend/models"
)

func TestPeriodBounds(t *testing.T) {
	t.Run("неделя с понедельника", func(t *testing.T) {
		// 2025-06-04 - среда
		start, end := PeriodBounds(models.PeriodWeek, time.Date(2025, time.June, 4, 15, 30, 0, 0, time.UTC))
		require.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), start)
		require.Equal(t, time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("воскресенье закрывает неделю", func(t *testing.T) {
		start, end := PeriodBounds(models.PeriodWeek, time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC))
		require.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), start)
		require.Equal(t, time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("понедельник открывает неделю", func(t *testing.T) {
		start, end := PeriodBounds(models.PeriodWeek, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC))
		require.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), start)
		require.Equal(t, time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("месяц", func(t *testing.T) {
		start, end := PeriodBounds(models.PeriodMonth, time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC))
		require.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), start)
		require.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("декабрь не перетекает в следующий год", func(t *testing.T) {
		start, end := PeriodBounds(models.PeriodMonth, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC))
		require.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), start)
		require.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("год", func(t *testing.T) {
		start, end := PeriodBounds(models.PeriodYear, time.Date(2025, time.August, 30, 12, 0, 0, 0, time.UTC))
		require.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), start)
		require.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("неизвестный период - один день", func(t *testing.T) {
		start, end := PeriodBounds(models.PeriodKind("day"), time.Date(2025, time.June, 4, 23, 59, 0, 0, time.UTC))
		require.Equal(t, time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC), start)
		require.Equal(t, start, end)
	})
}
