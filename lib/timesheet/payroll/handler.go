package payrollhandler

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hr-timesheet-backend/db"
	"hr-timesheet-backend/lib/directory"
	"hr-timesheet-backend/lib/notify"
	approvalstore "hr-timesheet-backend/lib/timesheet/approval/store"
	batchstore "hr-timesheet-backend/lib/timesheet/payroll/batch-store"
	payslipstore "hr-timesheet-backend/lib/timesheet/payroll/payslip-store"
	workentrytypestore "hr-timesheet-backend/lib/timesheet/payroll/work-entry-type-store"
	contractstore "hr-timesheet-backend/lib/worktime/contract-store"
	"hr-timesheet-backend/models"
	apimodels "hr-timesheet-backend/models/api"
	timesheetapimodels "hr-timesheet-backend/models/api/timesheet"
	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	Summary(spaceID string, approvalIDs []string) (*timesheetapimodels.PayrollSummaryView, error)
	GenerateBatch(spaceID string, data timesheetapimodels.PayrollGenerateData) (*timesheetapimodels.BatchView, error)
	GetBatch(spaceID, id string) (*timesheetapimodels.BatchView, error)
	ListBatches(spaceID string, pg apimodels.Pagination) ([]timesheetapimodels.BatchView, int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// Summary - сводка по выбранным заявкам для формы генерации пакета
func (i impl) Summary(spaceID string, approvalIDs []string) (*timesheetapimodels.PayrollSummaryView, error) {
	if len(approvalIDs) == 0 {
		return nil, models.NewValidationError("не выбраны заявки на согласование")
	}
	list, err := approvalstore.NewInstance(db.DB).GetByIDs(spaceID, approvalIDs)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, models.NewValidationError("заявки не найдены")
	}
	view := timesheetapimodels.PayrollSummaryView{
		DateFrom: list[0].DateStart,
		DateTo:   list[0].DateEnd,
	}
	employees := map[string]bool{}
	for _, rec := range list {
		employees[rec.EmployeeID] = true
		view.TotalOvertimeHours += rec.OvertimeHours
		if rec.DateStart.Before(view.DateFrom) {
			view.DateFrom = rec.DateStart
		}
		if rec.DateEnd.After(view.DateTo) {
			view.DateTo = rec.DateEnd
		}
	}
	view.EmployeeCount = len(employees)
	return &view, nil
}

// GenerateBatch передает согласованные заявки в расчет зарплаты: один пакет,
// один расчетный лист на сотрудника. Все проверки выполняются до создания
// документов, ошибки по сотрудникам накапливаются.
func (i impl) GenerateBatch(spaceID string, data timesheetapimodels.PayrollGenerateData) (*timesheetapimodels.BatchView, error) {
	if err := data.Validate(); err != nil {
		return nil, models.NewValidationError("%v", err)
	}
	var result *timesheetapimodels.BatchView
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		apprStore := approvalstore.NewInstance(tx)
		contractStore := contractstore.NewInstance(tx)

		approvals, err := apprStore.LockByIDs(spaceID, data.ApprovalIDs)
		if err != nil {
			return err
		}
		if len(approvals) != len(data.ApprovalIDs) {
			return models.NewValidationError("часть выбранных заявок не найдена")
		}
		for _, rec := range approvals {
			if rec.State != models.ApprovalStateHrApproved {
				return models.NewValidationError("заявка %v не прошла финальное согласование HR (текущий статус: %v)", rec.Number, rec.State.ToHuman())
			}
			if rec.PayrollProcessed {
				return models.NewConflictError("заявка %v уже передана в расчет зарплаты", rec.Number)
			}
		}

		byEmployee := map[string][]dbmodels.TimesheetApproval{}
		for _, rec := range approvals {
			byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], rec)
		}
		contracts := map[string]*dbmodels.Contract{}
		missing := []string{}
		for employeeID := range byEmployee {
			list, err := contractStore.ListActiveInRange(spaceID, employeeID, data.DateFrom, data.DateTo)
			if err != nil {
				return err
			}
			var contract *dbmodels.Contract
			for idx := range list {
				if list[idx].CoversPeriod(data.DateFrom, data.DateTo) {
					contract = &list[idx]
				}
			}
			if contract == nil {
				missing = append(missing, i.employeeName(spaceID, employeeID))
				continue
			}
			contracts[employeeID] = contract
		}
		if len(missing) > 0 {
			return models.NewValidationError("у сотрудников нет открытых контрактов на период: %v", strings.Join(missing, ", "))
		}

		workEntryType, err := i.ensureWorkEntryType(tx, spaceID)
		if err != nil {
			return err
		}

		batch := dbmodels.PayslipRun{
			Name:      data.BatchName,
			DateStart: data.DateFrom,
			DateEnd:   data.DateTo,
		}
		batch.SpaceID = spaceID
		batchID, err := batchstore.NewInstance(tx).Create(batch)
		if err != nil {
			return err
		}

		pStore := payslipstore.NewInstance(tx)
		for employeeID, group := range byEmployee {
			overtime := 0.0
			for _, rec := range group {
				overtime += rec.OvertimeHours
			}
			payslip := dbmodels.Payslip{
				Name:       fmt.Sprintf("Расчетный лист %v (%v - %v)", i.employeeName(spaceID, employeeID), data.DateFrom.Format("02.01.2006"), data.DateTo.Format("02.01.2006")),
				EmployeeID: employeeID,
				ContractID: contracts[employeeID].ID,
				BatchID:    batchID,
				StructRef:  data.StructRef,
				DateFrom:   data.DateFrom,
				DateTo:     data.DateTo,
				Computed:   true,
				WorkedDays: []dbmodels.PayslipWorkedDays{
					{
						WorkEntryTypeID: workEntryType.ID,
						Code:            workEntryType.Code,
						NumberOfHours:   overtime,
						NumberOfDays:    overtime / models.DefaultDailyHours,
					},
				},
			}
			payslip.SpaceID = spaceID
			payslipID, err := pStore.Create(payslip)
			if err != nil {
				return err
			}
			for _, rec := range group {
				err = apprStore.Update(spaceID, rec.ID, map[string]interface{}{
					"payroll_processed":  true,
					"payslip_id":         payslipID,
					"payroll_batch_id":   batchID,
					"work_entry_type_id": workEntryType.ID,
				})
				if err != nil {
					return err
				}
			}
			i.notifyEmployee(spaceID, employeeID, payslipID, data.BatchName)
		}

		payslips, err := pStore.ListByBatch(spaceID, batchID)
		if err != nil {
			return err
		}
		result = &timesheetapimodels.BatchView{
			ID:        batchID,
			Name:      data.BatchName,
			DateStart: data.DateFrom,
			DateEnd:   data.DateTo,
		}
		for _, payslip := range payslips {
			result.Payslips = append(result.Payslips, timesheetapimodels.PayslipConvert(payslip))
		}
		return nil
	})
	if err != nil {
		if !models.IsValidationError(err) && !models.IsConflictError(err) {
			log.
				WithField("space_id", spaceID).
				WithError(err).
				Error("ошибка формирования пакета расчетных листов")
		}
		return nil, err
	}
	return result, nil
}

func (i impl) GetBatch(spaceID, id string) (*timesheetapimodels.BatchView, error) {
	batch, err := batchstore.NewInstance(db.DB).GetByID(spaceID, id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, models.NewValidationError("пакет не найден")
	}
	payslips, err := payslipstore.NewInstance(db.DB).ListByBatch(spaceID, id)
	if err != nil {
		return nil, err
	}
	view := timesheetapimodels.BatchView{
		ID:        batch.ID,
		Name:      batch.Name,
		DateStart: batch.DateStart,
		DateEnd:   batch.DateEnd,
	}
	for _, payslip := range payslips {
		view.Payslips = append(view.Payslips, timesheetapimodels.PayslipConvert(payslip))
	}
	return &view, nil
}

func (i impl) ListBatches(spaceID string, pg apimodels.Pagination) ([]timesheetapimodels.BatchView, int64, error) {
	page, limit := pg.GetPage()
	list, rowCount, err := batchstore.NewInstance(db.DB).List(spaceID, page, limit)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithError(err).
			Error("ошибка получения списка пакетов")
		return nil, 0, err
	}
	result := make([]timesheetapimodels.BatchView, 0, len(list))
	for _, batch := range list {
		result = append(result, timesheetapimodels.BatchView{
			ID:        batch.ID,
			Name:      batch.Name,
			DateStart: batch.DateStart,
			DateEnd:   batch.DateEnd,
		})
	}
	return result, rowCount, nil
}

// ensureWorkEntryType находит вид оплаты переработок по коду,
// при отсутствии создает, повторный запуск новых записей не плодит
func (i impl) ensureWorkEntryType(tx *gorm.DB, spaceID string) (*dbmodels.WorkEntryType, error) {
	store := workentrytypestore.NewInstance(tx)
	rec, err := store.GetByCode(spaceID, models.OvertimeWorkEntryCode)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		return rec, nil
	}
	newRec := dbmodels.WorkEntryType{
		Code: models.OvertimeWorkEntryCode,
		Name: models.OvertimeWorkEntryName,
	}
	newRec.SpaceID = spaceID
	id, err := store.Create(newRec)
	if err != nil {
		return nil, err
	}
	newRec.ID = id
	return &newRec, nil
}

func (i impl) employeeName(spaceID, employeeID string) string {
	employee, err := directory.Instance.GetEmployee(spaceID, employeeID)
	if err != nil {
		return employeeID
	}
	return employee.FirstName + " " + employee.LastName
}

func (i impl) notifyEmployee(spaceID, employeeID, payslipID, batchName string) {
	employee, err := directory.Instance.GetEmployee(spaceID, employeeID)
	if err != nil || employee.UserID == "" {
		return
	}
	notify.Instance.Notify(spaceID, []string{employee.UserID}, models.NotifyTimesheetPayrollCreated, models.EntityTypeApproval, payslipID, batchName)
}
