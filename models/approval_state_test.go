package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApprovalStateTransitions(t *testing.T) {
	t.Run("submit только из черновика", func(t *testing.T) {
		require.True(t, ApprovalStateDraft.AllowSubmit())
		require.False(t, ApprovalStateSubmitted.AllowSubmit())
		require.False(t, ApprovalStateRejected.AllowSubmit())
		require.False(t, ApprovalStateHrApproved.AllowSubmit())
	})

	t.Run("этапы согласования идут по порядку", func(t *testing.T) {
		require.True(t, ApprovalStateSubmitted.AllowManagerApprove())
		require.False(t, ApprovalStateDraft.AllowManagerApprove())

		require.True(t, ApprovalStateManagerApproved.AllowSeniorApprove())
		require.False(t, ApprovalStateSubmitted.AllowSeniorApprove())

		require.True(t, ApprovalStateSeniorApproved.AllowHrApprove())
		require.False(t, ApprovalStateManagerApproved.AllowHrApprove())
	})

	t.Run("отклонение недоступно для черновика и финала", func(t *testing.T) {
		require.False(t, ApprovalStateDraft.AllowReject())
		require.True(t, ApprovalStateSubmitted.AllowReject())
		require.True(t, ApprovalStateManagerApproved.AllowReject())
		require.True(t, ApprovalStateSeniorApproved.AllowReject())
		require.False(t, ApprovalStateHrApproved.AllowReject())
	})

	t.Run("возврат в черновик запрещен только после финала", func(t *testing.T) {
		require.True(t, ApprovalStateRejected.AllowReset())
		require.True(t, ApprovalStateSubmitted.AllowReset())
		require.False(t, ApprovalStateHrApproved.AllowReset())
	})

	t.Run("терминальный статус", func(t *testing.T) {
		require.True(t, ApprovalStateHrApproved.IsTerminal())
		require.False(t, ApprovalStateRejected.IsTerminal())
	})
}

func TestTransitionPatchToUpdMap(t *testing.T) {
	t.Run("сброс очищает все отметки", func(t *testing.T) {
		updMap := TransitionPatch{Reset: true, State: ApprovalStateDraft}.ToUpdMap()
		require.Equal(t, ApprovalStateDraft, updMap["state"])
		for _, key := range []string{"submitted_at", "manager_approved_at", "senior_approved_at", "hr_approved_at", "rejected_at", "rejection_reason", "rejected_by_id"} {
			value, exist := updMap[key]
			require.True(t, exist, key)
			require.Nil(t, value, key)
		}
	})

	t.Run("записываются только заполненные отметки", func(t *testing.T) {
		reason := "причина"
		patch := TransitionPatch{
			State:           ApprovalStateRejected,
			RejectionReason: &reason,
		}
		updMap := patch.ToUpdMap()
		require.Equal(t, ApprovalStateRejected, updMap["state"])
		require.Equal(t, reason, updMap["rejection_reason"])
		_, exist := updMap["submitted_at"]
		require.False(t, exist)
	})
}

func TestWorkflowErrors(t *testing.T) {
	require.True(t, IsStateError(NewStateError("статус %v", "draft")))
	require.True(t, IsAuthorizationError(NewAuthorizationError("нет прав")))
	require.True(t, IsValidationError(NewValidationError("нет данных")))
	require.True(t, IsConflictError(NewConflictError("дубль периода")))

	require.False(t, IsStateError(NewValidationError("нет данных")))
	require.False(t, IsConflictError(nil))
}
