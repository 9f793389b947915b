package timesheethandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-timesheet-backend/models"
	dbmodels "hr-timesheet-backend/models/db"
)

func TestCheckWorkflowAllowed(t *testing.T) {
	t.Run("свободная строка доступна", func(t *testing.T) {
		require.NoError(t, checkWorkflowAllowed(dbmodels.TimeEntry{State: models.ApprovalStateDraft}))
	})

	t.Run("строка в заявке управляется только заявкой", func(t *testing.T) {
		approvalID := "a1"
		err := checkWorkflowAllowed(dbmodels.TimeEntry{
			State:      models.ApprovalStateDraft,
			ApprovalID: &approvalID,
		})
		require.Error(t, err)
		require.True(t, models.IsStateError(err))
	})

	t.Run("зафиксированная строка недоступна", func(t *testing.T) {
		err := checkWorkflowAllowed(dbmodels.TimeEntry{
			State:     models.ApprovalStateDraft,
			Validated: true,
		})
		require.Error(t, err)
		require.True(t, models.IsStateError(err))
	})

	t.Run("строка из записи отсутствия недоступна", func(t *testing.T) {
		holidayID := "h1"
		err := checkWorkflowAllowed(dbmodels.TimeEntry{
			State:     models.ApprovalStateDraft,
			HolidayID: &holidayID,
		})
		require.Error(t, err)
		require.True(t, models.IsStateError(err))
	})
}

func TestCheckEditable(t *testing.T) {
	t.Run("черновик и отклоненная редактируются", func(t *testing.T) {
		require.NoError(t, checkEditable(dbmodels.TimeEntry{State: models.ApprovalStateDraft}))
		require.NoError(t, checkEditable(dbmodels.TimeEntry{State: models.ApprovalStateRejected}))
	})

	t.Run("после отправки редактирование закрыто", func(t *testing.T) {
		err := checkEditable(dbmodels.TimeEntry{State: models.ApprovalStateSubmitted})
		require.Error(t, err)
		require.True(t, models.IsStateError(err))
	})

	t.Run("фиксация бухгалтерии закрывает строку", func(t *testing.T) {
		err := checkEditable(dbmodels.TimeEntry{State: models.ApprovalStateDraft, Validated: true})
		require.Error(t, err)
		require.True(t, models.IsValidationError(err))
	})
}
