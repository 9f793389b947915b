package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-timesheet-backend/models"
)

func TestAllLinesValidated(t *testing.T) {
	t.Run("без строк не считается зафиксированной", func(t *testing.T) {
		require.False(t, TimesheetApproval{}.AllLinesValidated())
	})

	t.Run("одна незафиксированная строка ломает признак", func(t *testing.T) {
		rec := TimesheetApproval{Lines: []TimeEntry{
			{Validated: true},
			{Validated: false},
		}}
		require.False(t, rec.AllLinesValidated())
	})

	t.Run("все строки зафиксированы", func(t *testing.T) {
		rec := TimesheetApproval{Lines: []TimeEntry{
			{Validated: true},
			{Validated: true},
		}}
		require.True(t, rec.AllLinesValidated())
	})
}

func TestHasSignature(t *testing.T) {
	rec := TimesheetApproval{
		EmployeeSignature: []byte("png"),
		HrSignature:       []byte("png"),
	}
	require.True(t, rec.HasSignature(models.SignerEmployee))
	require.True(t, rec.HasSignature(models.SignerHr))
	require.False(t, rec.HasSignature(models.SignerManager))
	require.False(t, rec.HasSignature(models.SignerSenior))
	require.False(t, rec.HasSignature(models.SignerRole("unknown")))
}
