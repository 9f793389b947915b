package worktime

import (
	"time"

	log "github.com/sirupsen/logrus"

	"hr-timesheet-backend/db"
	calendarstore "hr-timesheet-backend/lib/worktime/calendar-store"
	contractstore "hr-timesheet-backend/lib/worktime/contract-store"
	"hr-timesheet-backend/models"
	timesheetapimodels "hr-timesheet-backend/models/api/timesheet"
	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	MinimumHoursForDay(spaceID, employeeID string, date time.Time) (float64, error)
	MinimumHoursForRange(spaceID, employeeID string, dateStart, dateEnd time.Time) (float64, error)
	HasOpenContract(spaceID, employeeID string) (bool, error)
	OpenContract(spaceID, employeeID string) (*dbmodels.Contract, error)

	CreateContract(spaceID string, data timesheetapimodels.ContractData) (string, error)
	CloseContract(spaceID, id string, dateEnd time.Time) error
	ListContracts(spaceID, employeeID string) ([]timesheetapimodels.ContractView, error)

	CreateCalendar(spaceID string, rec dbmodels.WorkCalendar) (string, error)
	ListCalendars(spaceID string) ([]dbmodels.WorkCalendar, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithStores(contractstore.NewInstance(db.DB), calendarstore.NewInstance(db.DB))
}

func NewHandlerWithStores(contractStore contractstore.Provider, calendarStore calendarstore.Provider) Provider {
	return impl{
		contractStore: contractStore,
		calendarStore: calendarStore,
	}
}

type impl struct {
	contractStore contractstore.Provider
	calendarStore calendarstore.Provider
}

func (i impl) CreateContract(spaceID string, data timesheetapimodels.ContractData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", models.NewValidationError("%v", err)
	}
	rec := dbmodels.Contract{
		EmployeeID: data.EmployeeID,
		State:      models.ContractStateOpen,
		DateStart:  data.DateStart,
		DateEnd:    data.DateEnd,
	}
	rec.SpaceID = spaceID
	if data.CalendarID != "" {
		calendar, err := i.calendarStore.GetByID(spaceID, data.CalendarID)
		if err != nil {
			return "", err
		}
		if calendar == nil {
			return "", models.NewValidationError("производственный календарь не найден")
		}
		rec.CalendarID = &data.CalendarID
	}
	id, err := i.contractStore.Create(rec)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("employee_id", data.EmployeeID).
			WithError(err).
			Error("ошибка создания контракта")
		return "", err
	}
	return id, nil
}

func (i impl) CloseContract(spaceID, id string, dateEnd time.Time) error {
	rec, err := i.contractStore.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewValidationError("контракт не найден")
	}
	return i.contractStore.Update(spaceID, id, map[string]interface{}{
		"state":    models.ContractStateClosed,
		"date_end": dateEnd,
	})
}

func (i impl) ListContracts(spaceID, employeeID string) ([]timesheetapimodels.ContractView, error) {
	list, err := i.contractStore.ListByEmployee(spaceID, employeeID)
	if err != nil {
		return nil, err
	}
	result := make([]timesheetapimodels.ContractView, 0, len(list))
	for _, rec := range list {
		result = append(result, timesheetapimodels.ContractConvert(rec))
	}
	return result, nil
}

func (i impl) CreateCalendar(spaceID string, rec dbmodels.WorkCalendar) (string, error) {
	if rec.Name == "" {
		return "", models.NewValidationError("не указано название календаря")
	}
	rec.SpaceID = spaceID
	return i.calendarStore.Create(rec)
}

func (i impl) ListCalendars(spaceID string) ([]dbmodels.WorkCalendar, error) {
	return i.calendarStore.List(spaceID)
}

// MinimumHoursForDay - норма часов на день: по календарю действующего
// контракта, при его отсутствии действует норма по умолчанию
func (i impl) MinimumHoursForDay(spaceID, employeeID string, date time.Time) (float64, error) {
	contracts, err := i.contractStore.ListActiveInRange(spaceID, employeeID, date, date)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка получения контрактов сотрудника")
		return 0, err
	}
	return DayMinimum(contracts, date), nil
}

// MinimumHoursForRange - норма часов за период: сумма дневных норм по
// календарям действующих контрактов, без контракта норма по умолчанию
// начисляется только на будние дни
func (i impl) MinimumHoursForRange(spaceID, employeeID string, dateStart, dateEnd time.Time) (float64, error) {
	contracts, err := i.contractStore.ListActiveInRange(spaceID, employeeID, dateStart, dateEnd)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка получения контрактов сотрудника")
		return 0, err
	}
	return RangeMinimum(contracts, dateStart, dateEnd), nil
}

func (i impl) HasOpenContract(spaceID, employeeID string) (bool, error) {
	rec, err := i.contractStore.GetOpenByEmployee(spaceID, employeeID)
	if err != nil {
		return false, err
	}
	return rec != nil, nil
}

func (i impl) OpenContract(spaceID, employeeID string) (*dbmodels.Contract, error) {
	return i.contractStore.GetOpenByEmployee(spaceID, employeeID)
}

// DayMinimum - календарная норма засчитывается, только когда она больше нуля,
// на нерабочий по календарю день действует норма по умолчанию
func DayMinimum(contracts []dbmodels.Contract, date time.Time) float64 {
	for _, contract := range contracts {
		if !contract.ActiveOn(date) {
			continue
		}
		if contract.Calendar != nil {
			if hours := contract.Calendar.ExpectedHours(date); hours > 0 {
				return hours
			}
		}
		return models.DefaultDailyHours
	}
	return models.DefaultDailyHours
}

func RangeMinimum(contracts []dbmodels.Contract, dateStart, dateEnd time.Time) float64 {
	total := 0.0
	for date := dateStart; !date.After(dateEnd); date = date.AddDate(0, 0, 1) {
		total += rangeDayMinimum(contracts, date)
	}
	return total
}

// rangeDayMinimum отличается от DayMinimum поведением без контракта:
// выходные дни не дают нормы
func rangeDayMinimum(contracts []dbmodels.Contract, date time.Time) float64 {
	for _, contract := range contracts {
		if !contract.ActiveOn(date) {
			continue
		}
		if contract.Calendar != nil {
			return contract.Calendar.ExpectedHours(date)
		}
		return models.DefaultDailyHours
	}
	if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		return 0
	}
	return models.DefaultDailyHours
}

// Overtime - переработка не бывает отрицательной
func Overtime(totalHours, minimumHours float64) float64 {
	overtime := totalHours - minimumHours
	if overtime < 0 {
		return 0
	}
	return overtime
}
