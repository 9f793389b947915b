package initializers

import (
	"context"

	"hr-timesheet-backend/config"
	"hr-timesheet-backend/fiberlog"
	"hr-timesheet-backend/lib/directory"
	"hr-timesheet-backend/lib/notify"
	spaceauthhandler "hr-timesheet-backend/lib/space/auth"
	spacehandler "hr-timesheet-backend/lib/space/handler"
	spacesettingshandler "hr-timesheet-backend/lib/space/settings/handler"
	spaceusershander "hr-timesheet-backend/lib/space/users/hander"
	timesheethandler "hr-timesheet-backend/lib/timesheet"
	approvalhandler "hr-timesheet-backend/lib/timesheet/approval"
	payrollhandler "hr-timesheet-backend/lib/timesheet/payroll"
	"hr-timesheet-backend/lib/worktime"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	spacesettingshandler.NewHandler()
	spaceusershander.NewHandler()
	spacehandler.NewHandler()
	spaceauthhandler.NewHandler()
	directory.NewHandler()
	worktime.NewHandler()
	notify.NewHandler()
	timesheethandler.NewHandler()
	approvalhandler.NewHandler()
	payrollhandler.NewHandler()
}
