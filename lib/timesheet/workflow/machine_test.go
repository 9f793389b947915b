package workflow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-timesheet-backend/models"
)

type fakeSubject struct {
	state      models.ApprovalState
	employeeID string
}

func (s fakeSubject) GetState() models.ApprovalState { return s.state }
func (s fakeSubject) GetEmployeeID() string          { return s.employeeID }

type fakeDirectory struct {
	owner     bool
	approvers map[models.ApproverRole]string
}

func (d fakeDirectory) IsOwner(spaceID, userID, employeeID string) (bool, error) {
	return d.owner, nil
}

func (d fakeDirectory) CanApprove(spaceID, userID string, role models.ApproverRole, employeeID string) (bool, error) {
	return d.approvers[role] == userID, nil
}

func TestMachineSubmit(t *testing.T) {
	owner := Actor{UserID: "u1", SpaceID: "s1"}
	stranger := Actor{UserID: "u2", SpaceID: "s1"}
	admin := Actor{UserID: "u3", SpaceID: "s1", IsAdmin: true}

	t.Run("владелец отправляет черновик", func(t *testing.T) {
		m := NewMachine(fakeDirectory{owner: true})
		patch, err := m.Submit(owner, fakeSubject{state: models.ApprovalStateDraft, employeeID: "e1"})
		require.Nil(t, err)
		require.Equal(t, models.ApprovalStateSubmitted, patch.State)
		require.NotNil(t, patch.SubmittedAt)
	})

	t.Run("не владелец не может отправить", func(t *testing.T) {
		m := NewMachine(fakeDirectory{owner: false})
		_, err := m.Submit(stranger, fakeSubject{state: models.ApprovalStateDraft, employeeID: "e1"})
		require.True(t, models.IsAuthorizationError(err))
	})

	t.Run("админ отправляет чужой черновик", func(t *testing.T) {
		m := NewMachine(fakeDirectory{owner: false})
		_, err := m.Submit(admin, fakeSubject{state: models.ApprovalStateDraft, employeeID: "e1"})
		require.Nil(t, err)
	})

	t.Run("повторная отправка недоступна", func(t *testing.T) {
		m := NewMachine(fakeDirectory{owner: true})
		_, err := m.Submit(owner, fakeSubject{state: models.ApprovalStateSubmitted, employeeID: "e1"})
		require.True(t, models.IsStateError(err))
	})

	t.Run("отправка после отклонения недоступна без возврата в черновик", func(t *testing.T) {
		m := NewMachine(fakeDirectory{owner: true})
		_, err := m.Submit(owner, fakeSubject{state: models.ApprovalStateRejected, employeeID: "e1"})
		require.True(t, models.IsStateError(err))
	})
}

func TestMachineApproveChain(t *testing.T) {
	directory := fakeDirectory{
		approvers: map[models.ApproverRole]string{
			models.ApproverRoleManager: "mgr",
			models.ApproverRoleSenior:  "ceo",
			models.ApproverRoleHr:      "hr",
		},
	}
	m := NewMachine(directory)
	manager := Actor{UserID: "mgr", SpaceID: "s1"}
	senior := Actor{UserID: "ceo", SpaceID: "s1"}
	hr := Actor{UserID: "hr", SpaceID: "s1"}

	t.Run("полная цепочка согласования", func(t *testing.T) {
		patch, err := m.ManagerApprove(manager, fakeSubject{state: models.ApprovalStateSubmitted, employeeID: "e1"})
		require.Nil(t, err)
		require.Equal(t, models.ApprovalStateManagerApproved, patch.State)
		require.NotNil(t, patch.ManagerApprovedAt)

		patch, err = m.SeniorApprove(senior, fakeSubject{state: patch.State, employeeID: "e1"})
		require.Nil(t, err)
		require.Equal(t, models.ApprovalStateSeniorApproved, patch.State)
		require.NotNil(t, patch.SeniorApprovedAt)

		patch, err = m.HrApprove(hr, fakeSubject{state: patch.State, employeeID: "e1"})
		require.Nil(t, err)
		require.Equal(t, models.ApprovalStateHrApproved, patch.State)
		require.NotNil(t, patch.HrApprovedAt)
	})

	t.Run("этап нельзя перескочить", func(t *testing.T) {
		_, err := m.SeniorApprove(senior, fakeSubject{state: models.ApprovalStateSubmitted, employeeID: "e1"})
		require.True(t, models.IsStateError(err))

		_, err = m.HrApprove(hr, fakeSubject{state: models.ApprovalStateSubmitted, employeeID: "e1"})
		require.True(t, models.IsStateError(err))
	})

	t.Run("чужая роль не согласует", func(t *testing.T) {
		_, err := m.ManagerApprove(hr, fakeSubject{state: models.ApprovalStateSubmitted, employeeID: "e1"})
		require.True(t, models.IsAuthorizationError(err))

		_, err = m.HrApprove(manager, fakeSubject{state: models.ApprovalStateSeniorApproved, employeeID: "e1"})
		require.True(t, models.IsAuthorizationError(err))
	})

	t.Run("финально согласованный документ неизменяем", func(t *testing.T) {
		_, err := m.HrApprove(hr, fakeSubject{state: models.ApprovalStateHrApproved, employeeID: "e1"})
		require.True(t, models.IsStateError(err))

		_, err = m.Reject(hr, fakeSubject{state: models.ApprovalStateHrApproved, employeeID: "e1"}, "причина")
		require.True(t, models.IsStateError(err))

		_, err = m.ResetToDraft(Actor{UserID: "u1", SpaceID: "s1", IsAdmin: true}, fakeSubject{state: models.ApprovalStateHrApproved, employeeID: "e1"})
		require.True(t, models.IsStateError(err))
	})
}

func TestMachineReject(t *testing.T) {
	directory := fakeDirectory{
		approvers: map[models.ApproverRole]string{
			models.ApproverRoleManager: "mgr",
			models.ApproverRoleSenior:  "ceo",
			models.ApproverRoleHr:      "hr",
		},
	}
	m := NewMachine(directory)

	t.Run("отклоняет согласующий ожидаемого этапа", func(t *testing.T) {
		patch, err := m.Reject(Actor{UserID: "mgr", SpaceID: "s1"}, fakeSubject{state: models.ApprovalStateSubmitted, employeeID: "e1"}, "мало часов")
		require.Nil(t, err)
		require.Equal(t, models.ApprovalStateRejected, patch.State)
		require.NotNil(t, patch.RejectedAt)
		require.Equal(t, "мало часов", *patch.RejectionReason)
		require.Equal(t, "mgr", *patch.RejectedByID)
	})

	t.Run("после руководителя отклоняет второй этап", func(t *testing.T) {
		_, err := m.Reject(Actor{UserID: "mgr", SpaceID: "s1"}, fakeSubject{state: models.ApprovalStateManagerApproved, employeeID: "e1"}, "причина")
		require.True(t, models.IsAuthorizationError(err))

		_, err = m.Reject(Actor{UserID: "ceo", SpaceID: "s1"}, fakeSubject{state: models.ApprovalStateManagerApproved, employeeID: "e1"}, "причина")
		require.Nil(t, err)
	})

	t.Run("причина обязательна", func(t *testing.T) {
		_, err := m.Reject(Actor{UserID: "mgr", SpaceID: "s1"}, fakeSubject{state: models.ApprovalStateSubmitted, employeeID: "e1"}, "")
		require.True(t, models.IsValidationError(err))
	})

	t.Run("черновик не отклоняется", func(t *testing.T) {
		_, err := m.Reject(Actor{UserID: "mgr", SpaceID: "s1"}, fakeSubject{state: models.ApprovalStateDraft, employeeID: "e1"}, "причина")
		require.True(t, models.IsStateError(err))
	})
}

func TestMachineReset(t *testing.T) {
	t.Run("возврат из отклоненного в черновик", func(t *testing.T) {
		m := NewMachine(fakeDirectory{owner: true})
		patch, err := m.ResetToDraft(Actor{UserID: "u1", SpaceID: "s1"}, fakeSubject{state: models.ApprovalStateRejected, employeeID: "e1"})
		require.Nil(t, err)
		require.Equal(t, models.ApprovalStateDraft, patch.State)
		require.True(t, patch.Reset)
	})

	t.Run("возврат из промежуточного статуса", func(t *testing.T) {
		m := NewMachine(fakeDirectory{owner: true})
		_, err := m.ResetToDraft(Actor{UserID: "u1", SpaceID: "s1"}, fakeSubject{state: models.ApprovalStateSeniorApproved, employeeID: "e1"})
		require.Nil(t, err)
	})

	t.Run("не владелец не возвращает", func(t *testing.T) {
		m := NewMachine(fakeDirectory{owner: false})
		_, err := m.ResetToDraft(Actor{UserID: "u2", SpaceID: "s1"}, fakeSubject{state: models.ApprovalStateRejected, employeeID: "e1"})
		require.True(t, models.IsAuthorizationError(err))
	})
}

func TestPendingApproverRole(t *testing.T) {
	role, ok := PendingApproverRole(models.ApprovalStateSubmitted)
	require.True(t, ok)
	require.Equal(t, models.ApproverRoleManager, role)

	role, ok = PendingApproverRole(models.ApprovalStateManagerApproved)
	require.True(t, ok)
	require.Equal(t, models.ApproverRoleSenior, role)

	role, ok = PendingApproverRole(models.ApprovalStateSeniorApproved)
	require.True(t, ok)
	require.Equal(t, models.ApproverRoleHr, role)

	_, ok = PendingApproverRole(models.ApprovalStateDraft)
	require.False(t, ok)

	_, ok = PendingApproverRole(models.ApprovalStateHrApproved)
	require.False(t, ok)
}
