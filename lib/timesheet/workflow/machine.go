package workflow

import (
	"time"

	"hr-timesheet-backend/models"
)

// Actor - пользователь, выполняющий действие над документом
type Actor struct {
	UserID  string
	SpaceID string
	IsAdmin bool
}

// Subject - документ согласования: заявка или отдельная строка табеля
type Subject interface {
	GetState() models.ApprovalState
	GetEmployeeID() string
}

type Directory interface {
	IsOwner(spaceID, userID, employeeID string) (bool, error)
	CanApprove(spaceID, userID string, role models.ApproverRole, employeeID string) (bool, error)
}

type Machine struct {
	directory Directory
	now       func() time.Time
}

func NewMachine(directory Directory) *Machine {
	return &Machine{
		directory: directory,
		now:       time.Now,
	}
}

func (m *Machine) Submit(actor Actor, s Subject) (models.TransitionPatch, error) {
	state := s.GetState()
	if !state.AllowSubmit() {
		return models.TransitionPatch{}, models.NewStateError("отправить на согласование можно только черновик (текущий статус: %v)", state.ToHuman())
	}
	ok, err := m.isOwnerOrAdmin(actor, s)
	if err != nil {
		return models.TransitionPatch{}, err
	}
	if !ok {
		return models.TransitionPatch{}, models.NewAuthorizationError("отправить табель может только его владелец")
	}
	now := m.now()
	return models.TransitionPatch{
		State:       models.ApprovalStateSubmitted,
		SubmittedAt: &now,
	}, nil
}

func (m *Machine) ManagerApprove(actor Actor, s Subject) (models.TransitionPatch, error) {
	state := s.GetState()
	if !state.AllowManagerApprove() {
		return models.TransitionPatch{}, models.NewStateError("согласование руководителем доступно только после отправки (текущий статус: %v)", state.ToHuman())
	}
	if err := m.requireApprover(actor, s, models.ApproverRoleManager); err != nil {
		return models.TransitionPatch{}, err
	}
	now := m.now()
	return models.TransitionPatch{
		State:             models.ApprovalStateManagerApproved,
		ManagerApprovedAt: &now,
	}, nil
}

func (m *Machine) SeniorApprove(actor Actor, s Subject) (models.TransitionPatch, error) {
	state := s.GetState()
	if !state.AllowSeniorApprove() {
		return models.TransitionPatch{}, models.NewStateError("согласование второго этапа доступно только после руководителя (текущий статус: %v)", state.ToHuman())
	}
	if err := m.requireApprover(actor, s, models.ApproverRoleSenior); err != nil {
		return models.TransitionPatch{}, err
	}
	now := m.now()
	return models.TransitionPatch{
		State:            models.ApprovalStateSeniorApproved,
		SeniorApprovedAt: &now,
	}, nil
}

func (m *Machine) HrApprove(actor Actor, s Subject) (models.TransitionPatch, error) {
	state := s.GetState()
	if !state.AllowHrApprove() {
		return models.TransitionPatch{}, models.NewStateError("финальное согласование HR доступно только после второго этапа (текущий статус: %v)", state.ToHuman())
	}
	if err := m.requireApprover(actor, s, models.ApproverRoleHr); err != nil {
		return models.TransitionPatch{}, err
	}
	now := m.now()
	return models.TransitionPatch{
		State:        models.ApprovalStateHrApproved,
		HrApprovedAt: &now,
	}, nil
}

// Reject - отклонить может только согласующий текущего ожидаемого этапа
func (m *Machine) Reject(actor Actor, s Subject, reason string) (models.TransitionPatch, error) {
	state := s.GetState()
	if !state.AllowReject() {
		return models.TransitionPatch{}, models.NewStateError("отклонение недоступно в статусе %v", state.ToHuman())
	}
	if reason == "" {
		return models.TransitionPatch{}, models.NewValidationError("не указана причина отклонения")
	}
	role, ok := PendingApproverRole(state)
	if !ok {
		return models.TransitionPatch{}, models.NewStateError("отклонение недоступно в статусе %v", state.ToHuman())
	}
	if err := m.requireApprover(actor, s, role); err != nil {
		return models.TransitionPatch{}, err
	}
	now := m.now()
	return models.TransitionPatch{
		State:           models.ApprovalStateRejected,
		RejectedAt:      &now,
		RejectionReason: &reason,
		RejectedByID:    &actor.UserID,
	}, nil
}

func (m *Machine) ResetToDraft(actor Actor, s Subject) (models.TransitionPatch, error) {
	state := s.GetState()
	if !state.AllowReset() {
		return models.TransitionPatch{}, models.NewStateError("возврат в черновик недоступен в статусе %v", state.ToHuman())
	}
	ok, err := m.isOwnerOrAdmin(actor, s)
	if err != nil {
		return models.TransitionPatch{}, err
	}
	if !ok {
		return models.TransitionPatch{}, models.NewAuthorizationError("вернуть табель в черновик может только его владелец")
	}
	return models.TransitionPatch{
		State: models.ApprovalStateDraft,
		Reset: true,
	}, nil
}

// PendingApproverRole - чей этап ожидается в данном статусе
func PendingApproverRole(state models.ApprovalState) (models.ApproverRole, bool) {
	switch state {
	case models.ApprovalStateSubmitted:
		return models.ApproverRoleManager, true
	case models.ApprovalStateManagerApproved:
		return models.ApproverRoleSenior, true
	case models.ApprovalStateSeniorApproved:
		return models.ApproverRoleHr, true
	}
	return "", false
}

func (m *Machine) isOwnerOrAdmin(actor Actor, s Subject) (bool, error) {
	if actor.IsAdmin {
		return true, nil
	}
	return m.directory.IsOwner(actor.SpaceID, actor.UserID, s.GetEmployeeID())
}

func (m *Machine) requireApprover(actor Actor, s Subject, role models.ApproverRole) error {
	if actor.IsAdmin {
		return nil
	}
	ok, err := m.directory.CanApprove(actor.SpaceID, actor.UserID, role, s.GetEmployeeID())
	if err != nil {
		return err
	}
	if !ok {
		return models.NewAuthorizationError("действие доступно только согласующему этапа «%v»", role.ToHuman())
	}
	return nil
}
