package approvalhandler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hr-timesheet-backend/db"
	"hr-timesheet-backend/lib/directory"
	"hr-timesheet-backend/lib/notify"
	spacesettingshandler "hr-timesheet-backend/lib/space/settings/handler"
	approvalstore "hr-timesheet-backend/lib/timesheet/approval/store"
	timesheetstore "hr-timesheet-backend/lib/timesheet/store"
	"hr-timesheet-backend/lib/timesheet/workflow"
	"hr-timesheet-backend/lib/worktime"
	"hr-timesheet-backend/models"
	timesheetapimodels "hr-timesheet-backend/models/api/timesheet"
	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	CreateFromSelection(actor workflow.Actor, data timesheetapimodels.ApprovalCreateData) (*timesheetapimodels.CreateResult, error)
	Get(spaceID, id string) (*timesheetapimodels.ApprovalView, error)
	List(spaceID string, filter timesheetapimodels.ApprovalFilter) ([]timesheetapimodels.ApprovalView, int64, error)
	Delete(actor workflow.Actor, id string) error
	SetSignature(spaceID, id string, data timesheetapimodels.SignatureData) error

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
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		machine: workflow.NewMachine(directory.Instance),
	}
}

type impl struct {
	machine *workflow.Machine
}

// CreateFromSelection собирает выбранные строки табеля одного сотрудника
// в заявку на согласование. Явные даты периода имеют приоритет, иначе
// период берется из сетки по опорной дате.
func (i impl) CreateFromSelection(actor workflow.Actor, data timesheetapimodels.ApprovalCreateData) (*timesheetapimodels.CreateResult, error) {
	if err := data.Validate(); err != nil {
		return nil, models.NewValidationError("%v", err)
	}
	var result *timesheetapimodels.CreateResult
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		entryStore := timesheetstore.NewInstance(tx)
		apprStore := approvalstore.NewInstance(tx)

		entries, err := entryStore.LockByIDs(actor.SpaceID, data.EntryIDs)
		if err != nil {
			return err
		}
		if len(entries) != len(data.EntryIDs) {
			return models.NewValidationError("часть выбранных строк табеля не найдена")
		}
		employeeID := entries[0].EmployeeID
		for _, entry := range entries {
			if entry.EmployeeID != employeeID {
				return models.NewValidationError("в заявку можно включить строки только одного сотрудника")
			}
			if entry.ApprovalID != nil && *entry.ApprovalID != "" {
				return models.NewValidationError("строка за %v уже входит в другую заявку", entry.Date.Format("02.01.2006"))
			}
		}

		dateStart, dateEnd := resolvePeriod(data, entries)
		hasValidated := false
		hasTimeoff := false
		totalHours := 0.0
		for _, entry := range entries {
			if entry.Date.Before(dateStart) || entry.Date.After(dateEnd) {
				return models.NewValidationError("строка за %v не попадает в период заявки", entry.Date.Format("02.01.2006"))
			}
			if entry.Validated {
				hasValidated = true
			}
			if entry.IsLeaveLinked() {
				hasTimeoff = true
			}
			totalHours += entry.Hours
		}

		exists, err := apprStore.ExistsForPeriod(actor.SpaceID, employeeID, dateStart, dateEnd, "")
		if err != nil {
			return err
		}
		if exists {
			return models.NewConflictError("заявка сотрудника на период с %v по %v уже существует",
				dateStart.Format("02.01.2006"), dateEnd.Format("02.01.2006"))
		}

		minimum, err := worktime.Instance.MinimumHoursForRange(actor.SpaceID, employeeID, dateStart, dateEnd)
		if err != nil {
			return err
		}
		number, err := apprStore.NextNumber(actor.SpaceID)
		if err != nil {
			return err
		}

		rec := dbmodels.TimesheetApproval{
			Number:              number,
			EmployeeID:          employeeID,
			DateStart:           dateStart,
			DateEnd:             dateEnd,
			State:               models.ApprovalStateDraft,
			TotalHours:          totalHours,
			MinimumHours:        minimum,
			OvertimeHours:       worktime.Overtime(totalHours, minimum),
			HasValidatedEntries: hasValidated,
			HasTimeoffEntries:   hasTimeoff,
		}
		rec.SpaceID = actor.SpaceID
		i.snapshotApprovers(actor.SpaceID, employeeID, &rec)

		id, err := apprStore.Create(rec)
		if err != nil {
			return err
		}
		err = entryStore.SetApprovalLink(actor.SpaceID, data.EntryIDs, &id)
		if err != nil {
			return err
		}
		result = &timesheetapimodels.CreateResult{ID: id}
		if hasValidated {
			result.Warning = "в заявку включены строки, зафиксированные бухгалтерией"
		}
		return nil
	})
	if err != nil {
		if !models.IsValidationError(err) && !models.IsConflictError(err) {
			log.
				WithField("space_id", actor.SpaceID).
				WithError(err).
				Error("ошибка создания заявки на согласование")
		}
		return nil, err
	}
	return result, nil
}

func (i impl) Get(spaceID, id string) (*timesheetapimodels.ApprovalView, error) {
	rec, err := approvalstore.NewInstance(db.DB).GetByID(spaceID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewValidationError("заявка не найдена")
	}
	view := timesheetapimodels.ApprovalConvert(*rec)
	return &view, nil
}

func (i impl) List(spaceID string, filter timesheetapimodels.ApprovalFilter) ([]timesheetapimodels.ApprovalView, int64, error) {
	page, limit := filter.GetPage()
	list, rowCount, err := approvalstore.NewInstance(db.DB).List(spaceID, filter, page, limit)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithError(err).
			Error("ошибка получения списка заявок")
		return nil, 0, err
	}
	result := make([]timesheetapimodels.ApprovalView, 0, len(list))
	for _, rec := range list {
		result = append(result, timesheetapimodels.ApprovalConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Delete(actor workflow.Actor, id string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		apprStore := approvalstore.NewInstance(tx)
		entryStore := timesheetstore.NewInstance(tx)
		rec, err := apprStore.LockByID(actor.SpaceID, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return models.NewValidationError("заявка не найдена")
		}
		if rec.State != models.ApprovalStateDraft {
			return models.NewStateError("удалить можно только черновик заявки (текущий статус: %v)", rec.State.ToHuman())
		}
		lineIDs := entryIDs(rec.Lines)
		err = entryStore.SetApprovalLink(actor.SpaceID, lineIDs, nil)
		if err != nil {
			return err
		}
		return apprStore.Delete(actor.SpaceID, id)
	})
}

func (i impl) SetSignature(spaceID, id string, data timesheetapimodels.SignatureData) error {
	if err := data.Validate(); err != nil {
		return models.NewValidationError("%v", err)
	}
	column := map[models.SignerRole]string{
		models.SignerEmployee: "employee_signature",
		models.SignerManager:  "manager_signature",
		models.SignerSenior:   "senior_signature",
		models.SignerHr:       "hr_signature",
	}[data.Role]
	return approvalstore.NewInstance(db.DB).Update(spaceID, id, map[string]interface{}{column: data.Sign})
}

func (i impl) Submit(actor workflow.Actor, id string) error {
	return i.transition(actor, id, i.machine.Submit, models.SignerEmployee)
}

func (i impl) ManagerApprove(actor workflow.Actor, id string) error {
	return i.transition(actor, id, i.machine.ManagerApprove, models.SignerManager)
}

func (i impl) SeniorApprove(actor workflow.Actor, id string) error {
	return i.transition(actor, id, i.machine.SeniorApprove, models.SignerSenior)
}

func (i impl) HrApprove(actor workflow.Actor, id string) error {
	return i.transition(actor, id, i.machine.HrApprove, models.SignerHr)
}

func (i impl) Reject(actor workflow.Actor, id, reason string) error {
	return i.transition(actor, id, func(a workflow.Actor, s workflow.Subject) (models.TransitionPatch, error) {
		return i.machine.Reject(a, s, reason)
	}, "")
}

func (i impl) ResetToDraft(actor workflow.Actor, id string) error {
	return i.transition(actor, id, i.machine.ResetToDraft, "")
}

func (i impl) SubmitSelected(actor workflow.Actor, ids []string) (int, error) {
	return i.transitionSelected(actor, ids, i.machine.Submit, models.SignerEmployee)
}

func (i impl) ManagerApproveSelected(actor workflow.Actor, ids []string) (int, error) {
	return i.transitionSelected(actor, ids, i.machine.ManagerApprove, models.SignerManager)
}

func (i impl) SeniorApproveSelected(actor workflow.Actor, ids []string) (int, error) {
	return i.transitionSelected(actor, ids, i.machine.SeniorApprove, models.SignerSenior)
}

func (i impl) HrApproveSelected(actor workflow.Actor, ids []string) (int, error) {
	return i.transitionSelected(actor, ids, i.machine.HrApprove, models.SignerHr)
}

func (i impl) RejectSelected(actor workflow.Actor, ids []string, reason string) (int, error) {
	if reason == "" {
		return 0, models.NewValidationError("не указана причина отклонения")
	}
	return i.transitionSelected(actor, ids, func(a workflow.Actor, s workflow.Subject) (models.TransitionPatch, error) {
		return i.machine.Reject(a, s, reason)
	}, "")
}

type transitionFunc func(workflow.Actor, workflow.Subject) (models.TransitionPatch, error)

func (i impl) transition(actor workflow.Actor, id string, apply transitionFunc, signer models.SignerRole) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		apprStore := approvalstore.NewInstance(tx)
		entryStore := timesheetstore.NewInstance(tx)
		rec, err := apprStore.LockByID(actor.SpaceID, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return models.NewValidationError("заявка не найдена")
		}
		patch, err := i.applyOne(actor, apprStore, entryStore, rec, apply, signer)
		if err != nil {
			return err
		}
		i.afterTransition(actor, *rec, patch)
		return nil
	})
	return err
}

func (i impl) transitionSelected(actor workflow.Actor, ids []string, apply transitionFunc, signer models.SignerRole) (int, error) {
	applied := 0
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		apprStore := approvalstore.NewInstance(tx)
		entryStore := timesheetstore.NewInstance(tx)
		list, err := apprStore.LockByIDs(actor.SpaceID, ids)
		if err != nil {
			return err
		}
		for idx := range list {
			rec := &list[idx]
			patch, err := i.applyOne(actor, apprStore, entryStore, rec, apply, signer)
			if err != nil {
				if models.IsStateError(err) || models.IsAuthorizationError(err) || models.IsValidationError(err) {
					continue
				}
				return err
			}
			i.afterTransition(actor, *rec, patch)
			applied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return applied, nil
}

// applyOne выполняет переход заявки и зеркалирует его на строки.
// При возврате в черновик зафиксированные строки сохраняют статус,
// возврат невозможен только когда зафиксированы все строки.
func (i impl) applyOne(actor workflow.Actor, apprStore approvalstore.Provider, entryStore timesheetstore.Provider, rec *dbmodels.TimesheetApproval, apply transitionFunc, signer models.SignerRole) (models.TransitionPatch, error) {
	if rec.PayrollProcessed {
		return models.TransitionPatch{}, models.NewStateError("заявка уже передана в расчет зарплаты")
	}
	if signer != "" && spacesettingshandler.Instance.IsSignatureRequired(rec.SpaceID) && !rec.HasSignature(signer) {
		return models.TransitionPatch{}, models.NewValidationError("перед действием необходимо проставить подпись (%v)", signer)
	}
	patch, err := apply(actor, rec)
	if err != nil {
		return models.TransitionPatch{}, err
	}
	if patch.State == models.ApprovalStateSubmitted {
		// снимки согласующих актуализируются на момент подачи
		i.snapshotApprovers(rec.SpaceID, rec.EmployeeID, rec)
	}
	if err := i.checkNextStageApprover(*rec, patch.State); err != nil {
		return models.TransitionPatch{}, err
	}
	if patch.Reset && rec.AllLinesValidated() {
		return models.TransitionPatch{}, models.NewStateError("возврат в черновик невозможен: все строки зафиксированы бухгалтерией")
	}
	updMap := patch.ToUpdMap()
	if patch.Reset && rec.HasValidatedEntries {
		updMap["notes"] = "Возврат в черновик: зафиксированные бухгалтерией строки сохранили свой статус"
	}
	if patch.State == models.ApprovalStateSubmitted {
		i.refreshTotals(*rec, updMap)
		updMap["manager_user_id"] = rec.ManagerUserID
		updMap["senior_user_id"] = rec.SeniorUserID
		updMap["hr_user_id"] = rec.HrUserID
	}
	err = apprStore.Update(rec.SpaceID, rec.ID, updMap)
	if err != nil {
		return models.TransitionPatch{}, err
	}
	err = entryStore.ApplyTransition(rec.SpaceID, entryIDs(rec.Lines), patch, patch.Reset)
	if err != nil {
		return models.TransitionPatch{}, err
	}
	return patch, nil
}

// refreshTotals пересчитывает суммы заявки на момент подачи
func (i impl) refreshTotals(rec dbmodels.TimesheetApproval, updMap map[string]interface{}) {
	totalHours := 0.0
	hasValidated := false
	hasTimeoff := false
	for _, line := range rec.Lines {
		totalHours += line.Hours
		if line.Validated {
			hasValidated = true
		}
		if line.IsLeaveLinked() {
			hasTimeoff = true
		}
	}
	minimum, err := worktime.Instance.MinimumHoursForRange(rec.SpaceID, rec.EmployeeID, rec.DateStart, rec.DateEnd)
	if err != nil {
		log.
			WithField("space_id", rec.SpaceID).
			WithField("approval_id", rec.ID).
			WithError(err).
			Error("ошибка расчета нормы часов заявки")
		minimum = rec.MinimumHours
	}
	updMap["total_hours"] = totalHours
	updMap["minimum_hours"] = minimum
	updMap["overtime_hours"] = worktime.Overtime(totalHours, minimum)
	updMap["has_validated_entries"] = hasValidated
	updMap["has_timeoff_entries"] = hasTimeoff
}

// checkNextStageApprover - прямой переход выполняется только при наличии
// согласующего следующего этапа, иначе заявка застрянет без исполнителя
func (i impl) checkNextStageApprover(rec dbmodels.TimesheetApproval, state models.ApprovalState) error {
	role, ok := workflow.PendingApproverRole(state)
	if !ok {
		return nil
	}
	if id := snapshotApproverID(rec, role); id != nil && *id != "" {
		return nil
	}
	ids, err := directory.Instance.StageApproverIDs(rec.SpaceID, role, rec.EmployeeID)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return models.NewValidationError("не назначен согласующий этапа «%v»", role.ToHuman())
	}
	return nil
}

func snapshotApproverID(rec dbmodels.TimesheetApproval, role models.ApproverRole) *string {
	switch role {
	case models.ApproverRoleManager:
		return rec.ManagerUserID
	case models.ApproverRoleSenior:
		return rec.SeniorUserID
	case models.ApproverRoleHr:
		return rec.HrUserID
	}
	return nil
}

func (i impl) snapshotApprovers(spaceID, employeeID string, rec *dbmodels.TimesheetApproval) {
	rec.ManagerUserID = firstApprover(spaceID, models.ApproverRoleManager, employeeID)
	rec.SeniorUserID = firstApprover(spaceID, models.ApproverRoleSenior, employeeID)
	rec.HrUserID = firstApprover(spaceID, models.ApproverRoleHr, employeeID)
}

func (i impl) afterTransition(actor workflow.Actor, rec dbmodels.TimesheetApproval, patch models.TransitionPatch) {
	notify.Instance.CloseActivities(actor.SpaceID, models.EntityTypeApproval, rec.ID)
	employee, err := directory.Instance.GetEmployee(actor.SpaceID, rec.EmployeeID)
	if err != nil {
		return
	}
	employeeName := employee.FirstName + " " + employee.LastName
	switch patch.State {
	case models.ApprovalStateSubmitted:
		i.notifyStage(actor.SpaceID, rec, rec.ManagerUserID, models.ApproverRoleManager, models.NotifyTimesheetSubmitted, employeeName)
	case models.ApprovalStateManagerApproved:
		i.notifyStage(actor.SpaceID, rec, rec.SeniorUserID, models.ApproverRoleSenior, models.NotifyTimesheetManagerDone, employeeName)
	case models.ApprovalStateSeniorApproved:
		i.notifyStage(actor.SpaceID, rec, rec.HrUserID, models.ApproverRoleHr, models.NotifyTimesheetSeniorDone, employeeName)
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

// notifyStage шлет уведомление зафиксированному согласующему,
// при его отсутствии всему списку этапа
func (i impl) notifyStage(spaceID string, rec dbmodels.TimesheetApproval, snapshot *string, role models.ApproverRole, code models.NotificationCode, args ...interface{}) {
	var ids []string
	if snapshot != nil && *snapshot != "" {
		ids = []string{*snapshot}
	} else {
		var err error
		ids, err = directory.Instance.StageApproverIDs(spaceID, role, rec.EmployeeID)
		if err != nil || len(ids) == 0 {
			return
		}
	}
	notify.Instance.Notify(spaceID, ids, code, models.EntityTypeApproval, rec.ID, args...)
}

func (i impl) notifyOwner(spaceID, userID string, rec dbmodels.TimesheetApproval, code models.NotificationCode, args ...interface{}) {
	if userID == "" {
		return
	}
	notify.Instance.Notify(spaceID, []string{userID}, code, models.EntityTypeApproval, rec.ID, args...)
}

func resolvePeriod(data timesheetapimodels.ApprovalCreateData, entries []dbmodels.TimeEntry) (time.Time, time.Time) {
	if data.DateStart != nil && data.DateEnd != nil {
		return truncateToDay(*data.DateStart), truncateToDay(*data.DateEnd)
	}
	kind := data.PeriodKind
	if kind == "" {
		kind = models.PeriodWeek
	}
	anchor := time.Now()
	if data.Anchor != nil {
		anchor = *data.Anchor
	} else if len(entries) > 0 {
		anchor = entries[0].Date
		for _, entry := range entries {
			if entry.Date.Before(anchor) {
				anchor = entry.Date
			}
		}
	}
	return PeriodBounds(kind, anchor)
}

func firstApprover(spaceID string, role models.ApproverRole, employeeID string) *string {
	ids, err := directory.Instance.StageApproverIDs(spaceID, role, employeeID)
	if err != nil || len(ids) == 0 {
		return nil
	}
	return &ids[0]
}

func entryIDs(entries []dbmodels.TimeEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}
	return ids
}
