package timesheethandler

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hr-timesheet-backend/db"
	"hr-timesheet-backend/lib/directory"
	"hr-timesheet-backend/lib/notify"
	timesheetstore "hr-timesheet-backend/lib/timesheet/store"
	"hr-timesheet-backend/lib/timesheet/workflow"
	"hr-timesheet-backend/lib/worktime"
	"hr-timesheet-backend/models"
	apimodels "hr-timesheet-backend/models/api"
	timesheetapimodels "hr-timesheet-backend/models/api/timesheet"
	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	Create(spaceID string, data timesheetapimodels.TimeEntryData) (string, error)
	Update(spaceID, id string, data timesheetapimodels.TimeEntryData) error
	Delete(spaceID, id string) error
	Get(spaceID, id string) (*timesheetapimodels.TimeEntryView, error)
	List(spaceID string, filter timesheetapimodels.TimeEntryFilter, pg apimodels.Pagination) ([]timesheetapimodels.TimeEntryView, int64, error)
	SetValidated(spaceID, id string, validated bool) error

	Submit(actor workflow.Actor, id string) error
	ManagerApprove(actor workflow.Actor, id string) error
	SeniorApprove(actor workflow.Actor, id string) error
	HrApprove(actor workflow.Actor, id string) error
	Reject(actor workflow.Actor, id, reason string) error
	ResetToDraft(actor workflow.Actor, id string) error

	SubmitSelected(actor workflow.Actor, ids []string) (int, error)
	ManagerApproveSelected(actor workflow.Actor, ids []string) (int, error)
	SeniorApproveSelected(actor workflow.Actor, ids []string) (int, error)
	HrApproveSelected(actor workflow.Actor, ids []string) (int, error)
	RejectSelected(actor workflow.Actor, ids []string, reason string) (int, error)
	ResetSelected(actor workflow.Actor, ids []string) (int, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:   timesheetstore.NewInstance(db.DB),
		machine: workflow.NewMachine(directory.Instance),
	}
}

type impl struct {
	store   timesheetstore.Provider
	machine *workflow.Machine
}

func (i impl) Create(spaceID string, data timesheetapimodels.TimeEntryData) (string, error) {
	minimum, err := worktime.Instance.MinimumHoursForDay(spaceID, data.EmployeeID, data.Date)
	if err != nil {
		return "", err
	}
	rec := dbmodels.TimeEntry{
		EmployeeID:    data.EmployeeID,
		Date:          data.Date,
		Hours:         data.Hours,
		Description:   data.Description,
		State:         models.ApprovalStateDraft,
		MinimumHours:  minimum,
		OvertimeHours: worktime.Overtime(data.Hours, minimum),
	}
	rec.SpaceID = spaceID
	if data.HolidayID != "" {
		rec.HolidayID = &data.HolidayID
	}
	if data.MeetingID != "" {
		rec.MeetingID = &data.MeetingID
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("employee_id", data.EmployeeID).
			WithError(err).
			Error("ошибка создания строки табеля")
		return "", err
	}
	return id, nil
}

func (i impl) Update(spaceID, id string, data timesheetapimodels.TimeEntryData) error {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewValidationError("строка табеля не найдена")
	}
	if err := checkEditable(*rec); err != nil {
		return err
	}
	minimum, err := worktime.Instance.MinimumHoursForDay(spaceID, data.EmployeeID, data.Date)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"employee_id":    data.EmployeeID,
		"date":           data.Date,
		"hours":          data.Hours,
		"description":    data.Description,
		"minimum_hours":  minimum,
		"overtime_hours": worktime.Overtime(data.Hours, minimum),
	}
	err = i.store.Update(spaceID, id, updMap)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("entry_id", id).
			WithError(err).
			Error("ошибка обновления строки табеля")
		return err
	}
	return nil
}

func (i impl) Delete(spaceID, id string) error {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewValidationError("строка табеля не найдена")
	}
	if err := checkEditable(*rec); err != nil {
		return err
	}
	return i.store.Delete(spaceID, id)
}

func (i impl) Get(spaceID, id string) (*timesheetapimodels.TimeEntryView, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewValidationError("строка табеля не найдена")
	}
	view := timesheetapimodels.TimeEntryConvert(*rec)
	return &view, nil
}

func (i impl) List(spaceID string, filter timesheetapimodels.TimeEntryFilter, pg apimodels.Pagination) ([]timesheetapimodels.TimeEntryView, int64, error) {
	page, limit := pg.GetPage()
	list, rowCount, err := i.store.List(spaceID, filter, page, limit)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithError(err).
			Error("ошибка получения строк табеля")
		return nil, 0, err
	}
	result := make([]timesheetapimodels.TimeEntryView, 0, len(list))
	for _, rec := range list {
		result = append(result, timesheetapimodels.TimeEntryConvert(rec))
	}
	return result, rowCount, nil
}

// SetValidated - бухгалтерская фиксация строки, снимается только бухгалтерией
func (i impl) SetValidated(spaceID, id string, validated bool) error {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewValidationError("строка табеля не найдена")
	}
	return i.store.Update(spaceID, id, map[string]interface{}{"validated": validated})
}

func (i impl) Submit(actor workflow.Actor, id string) error {
	return i.transition(actor, id, i.machine.Submit)
}

func (i impl) ManagerApprove(actor workflow.Actor, id string) error {
	return i.transition(actor, id, i.machine.ManagerApprove)
}

func (i impl) SeniorApprove(actor workflow.Actor, id string) error {
	return i.transition(actor, id, i.machine.SeniorApprove)
}

func (i impl) HrApprove(actor workflow.Actor, id string) error {
	return i.transition(actor, id, i.machine.HrApprove)
}

func (i impl) Reject(actor workflow.Actor, id, reason string) error {
	return i.transition(actor, id, func(a workflow.Actor, s workflow.Subject) (models.TransitionPatch, error) {
		return i.machine.Reject(a, s, reason)
	})
}

func (i impl) ResetToDraft(actor workflow.Actor, id string) error {
	return i.transition(actor, id, i.machine.ResetToDraft)
}

func (i impl) SubmitSelected(actor workflow.Actor, ids []string) (int, error) {
	return i.transitionSelected(actor, ids, i.machine.Submit)
}

func (i impl) ManagerApproveSelected(actor workflow.Actor, ids []string) (int, error) {
	return i.transitionSelected(actor, ids, i.machine.ManagerApprove)
}

func (i impl) SeniorApproveSelected(actor workflow.Actor, ids []string) (int, error) {
	return i.transitionSelected(actor, ids, i.machine.SeniorApprove)
}

func (i impl) HrApproveSelected(actor workflow.Actor, ids []string) (int, error) {
	return i.transitionSelected(actor, ids, i.machine.HrApprove)
}

func (i impl) RejectSelected(actor workflow.Actor, ids []string, reason string) (int, error) {
	if reason == "" {
		return 0, models.NewValidationError("не указана причина отклонения")
	}
	return i.transitionSelected(actor, ids, func(a workflow.Actor, s workflow.Subject) (models.TransitionPatch, error) {
		return i.machine.Reject(a, s, reason)
	})
}

func (i impl) ResetSelected(actor workflow.Actor, ids []string) (int, error) {
	return i.transitionSelected(actor, ids, i.machine.ResetToDraft)
}

type transitionFunc func(workflow.Actor, workflow.Subject) (models.TransitionPatch, error)

func (i impl) transition(actor workflow.Actor, id string, apply transitionFunc) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := timesheetstore.NewInstance(tx)
		list, err := store.LockByIDs(actor.SpaceID, []string{id})
		if err != nil {
			return err
		}
		if len(list) == 0 {
			return models.NewValidationError("строка табеля не найдена")
		}
		rec := list[0]
		if err := checkWorkflowAllowed(rec); err != nil {
			return err
		}
		patch, err := apply(actor, rec)
		if err != nil {
			return err
		}
		if err := checkNextStageApprover(actor.SpaceID, rec.EmployeeID, patch.State); err != nil {
			return err
		}
		err = store.ApplyTransition(actor.SpaceID, []string{id}, patch, false)
		if err != nil {
			return err
		}
		i.afterTransition(actor, rec, patch)
		return nil
	})
	return err
}

// transitionSelected пропускает неподходящие строки без ошибки
// и возвращает число обработанных
func (i impl) transitionSelected(actor workflow.Actor, ids []string, apply transitionFunc) (int, error) {
	applied := 0
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := timesheetstore.NewInstance(tx)
		list, err := store.LockByIDs(actor.SpaceID, ids)
		if err != nil {
			return err
		}
		for _, rec := range list {
			if checkWorkflowAllowed(rec) != nil {
				continue
			}
			patch, err := apply(actor, rec)
			if err != nil {
				if models.IsStateError(err) || models.IsAuthorizationError(err) {
					continue
				}
				return err
			}
			if checkNextStageApprover(actor.SpaceID, rec.EmployeeID, patch.State) != nil {
				continue
			}
			err = store.ApplyTransition(actor.SpaceID, []string{rec.ID}, patch, false)
			if err != nil {
				return err
			}
			i.afterTransition(actor, rec, patch)
			applied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return applied, nil
}

func (i impl) afterTransition(actor workflow.Actor, rec dbmodels.TimeEntry, patch models.TransitionPatch) {
	notify.Instance.CloseActivities(actor.SpaceID, models.EntityTypeTimeEntry, rec.ID)
	employee, err := directory.Instance.GetEmployee(actor.SpaceID, rec.EmployeeID)
	if err != nil {
		return
	}
	employeeName := employee.FirstName + " " + employee.LastName
	switch patch.State {
	case models.ApprovalStateSubmitted:
		i.notifyStage(actor.SpaceID, models.ApproverRoleManager, rec, models.NotifyTimesheetSubmitted, employeeName)
	case models.ApprovalStateManagerApproved:
		i.notifyStage(actor.SpaceID, models.ApproverRoleSenior, rec, models.NotifyTimesheetManagerDone, employeeName)
	case models.ApprovalStateSeniorApproved:
		i.notifyStage(actor.SpaceID, models.ApproverRoleHr, rec, models.NotifyTimesheetSeniorDone, employeeName)
	case models.ApprovalStateHrApproved:
		i.notifyOwner(actor.SpaceID, employee.UserID, rec, models.NotifyTimesheetHrDone)
	case models.ApprovalStateRejected:
		reason := ""
		if patch.RejectionReason != nil {
			reason = *patch.RejectionReason
		}
		i.notifyOwner(actor.SpaceID, employee.UserID, rec, models.NotifyTimesheetRejected, reason)
	}
}

func (i impl) notifyStage(spaceID string, role models.ApproverRole, rec dbmodels.TimeEntry, code models.NotificationCode, args ...interface{}) {
	ids, err := directory.Instance.StageApproverIDs(spaceID, role, rec.EmployeeID)
	if err != nil || len(ids) == 0 {
		return
	}
	notify.Instance.Notify(spaceID, ids, code, models.EntityTypeTimeEntry, rec.ID, args...)
}

func (i impl) notifyOwner(spaceID, userID string, rec dbmodels.TimeEntry, code models.NotificationCode, args ...interface{}) {
	if userID == "" {
		return
	}
	notify.Instance.Notify(spaceID, []string{userID}, code, models.EntityTypeTimeEntry, rec.ID, args...)
}

// checkEditable - строки, зафиксированные бухгалтерией или созданные модулем
// отсутствий, руками не меняются
func checkEditable(rec dbmodels.TimeEntry) error {
	if rec.Validated {
		return models.NewValidationError("строка зафиксирована бухгалтерией и не подлежит изменению")
	}
	if rec.IsLeaveLinked() {
		return models.NewValidationError("строка создана записью отсутствия и не подлежит изменению")
	}
	if rec.State != models.ApprovalStateDraft && rec.State != models.ApprovalStateRejected {
		return models.NewStateError("изменение доступно только в черновике или после отклонения (текущий статус: %v)", rec.State.ToHuman())
	}
	return nil
}

// checkNextStageApprover - прямой переход выполняется только при наличии
// согласующего следующего этапа, иначе документ застрянет без исполнителя
func checkNextStageApprover(spaceID, employeeID string, state models.ApprovalState) error {
	role, ok := workflow.PendingApproverRole(state)
	if !ok {
		return nil
	}
	ids, err := directory.Instance.StageApproverIDs(spaceID, role, employeeID)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return models.NewValidationError("не назначен согласующий этапа «%v»", role.ToHuman())
	}
	return nil
}

// checkWorkflowAllowed - строки в составе заявки управляются только заявкой
func checkWorkflowAllowed(rec dbmodels.TimeEntry) error {
	if rec.ApprovalID != nil && *rec.ApprovalID != "" {
		return models.NewStateError("строка входит в заявку на согласование, действие выполняется по заявке")
	}
	if rec.Validated {
		return models.NewStateError("строка зафиксирована бухгалтерией")
	}
	if rec.IsLeaveLinked() {
		return models.NewStateError("строка создана записью отсутствия")
	}
	return nil
}
