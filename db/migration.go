package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "hr-timesheet-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	models := []interface{}{
		&dbmodels.Space{},
		&dbmodels.SpaceUser{},
		&dbmodels.SpaceSetting{},
		&dbmodels.Department{},
		&dbmodels.Employee{},
		&dbmodels.WorkCalendar{},
		&dbmodels.CalendarAttendance{},
		&dbmodels.CalendarLeave{},
		&dbmodels.Contract{},
		&dbmodels.TimeEntry{},
		&dbmodels.TimesheetApproval{},
		&dbmodels.ApprovalActivity{},
		&dbmodels.WorkEntryType{},
		&dbmodels.PayslipRun{},
		&dbmodels.Payslip{},
		&dbmodels.PayslipWorkedDays{},
	}
	for _, model := range models {
		if err := DB.AutoMigrate(model); err != nil {
			return errors.Wrapf(err, "ошибка миграции структуры %T", model)
		}
	}
	// один сотрудник - одна неотклоненная заявка на период
	err := DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uidx_approval_period
		ON timesheet_approvals (space_id, employee_id, date_start, date_end)
		WHERE state <> 'rejected'`).Error
	if err != nil {
		return errors.Wrap(err, "ошибка создания уникального индекса заявок")
	}
	err = DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uidx_work_entry_code
		ON work_entry_types (space_id, code)`).Error
	if err != nil {
		return errors.Wrap(err, "ошибка создания уникального индекса видов оплат")
	}
	// страховка выдачи номеров: в пустой таблице блокировать нечего,
	// конкурентные создания упрутся в индекс
	err = DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uidx_approval_number
		ON timesheet_approvals (space_id, number)`).Error
	if err != nil {
		return errors.Wrap(err, "ошибка создания уникального индекса номеров заявок")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
