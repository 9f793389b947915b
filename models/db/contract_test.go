package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hr-timesheet-backend/models"
)

func contractDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCoversPeriod(t *testing.T) {
	periodFrom := contractDate(2025, time.June, 1)
	periodTo := contractDate(2025, time.June, 30)

	t.Run("бессрочный контракт покрывает период", func(t *testing.T) {
		rec := Contract{
			State:     models.ContractStateOpen,
			DateStart: contractDate(2025, time.January, 1),
		}
		require.True(t, rec.CoversPeriod(periodFrom, periodTo))
	})

	t.Run("контракт начинается после окончания периода", func(t *testing.T) {
		rec := Contract{
			State:     models.ContractStateOpen,
			DateStart: contractDate(2025, time.July, 1),
		}
		require.False(t, rec.CoversPeriod(periodFrom, periodTo))
	})

	t.Run("контракт закончился до начала периода", func(t *testing.T) {
		end := contractDate(2025, time.May, 31)
		rec := Contract{
			State:     models.ContractStateOpen,
			DateStart: contractDate(2025, time.January, 1),
			DateEnd:   &end,
		}
		require.False(t, rec.CoversPeriod(periodFrom, periodTo))
	})

	t.Run("частичное пересечение достаточно", func(t *testing.T) {
		end := contractDate(2025, time.June, 10)
		rec := Contract{
			State:     models.ContractStateOpen,
			DateStart: contractDate(2025, time.June, 5),
			DateEnd:   &end,
		}
		require.True(t, rec.CoversPeriod(periodFrom, periodTo))
	})

	t.Run("закрытый контракт не учитывается", func(t *testing.T) {
		rec := Contract{
			State:     models.ContractStateClosed,
			DateStart: contractDate(2025, time.January, 1),
		}
		require.False(t, rec.CoversPeriod(periodFrom, periodTo))
	})
}
