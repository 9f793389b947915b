package models

import "fmt"

type NotificationCode string

const (
	NotifyTimesheetSubmitted      NotificationCode = "TsSubmitted"
	NotifyTimesheetManagerDone    NotificationCode = "TsManagerApproved"
	NotifyTimesheetSeniorDone     NotificationCode = "TsSeniorApproved"
	NotifyTimesheetHrDone         NotificationCode = "TsHrApproved"
	NotifyTimesheetRejected       NotificationCode = "TsRejected"
	NotifyTimesheetPayrollCreated NotificationCode = "TsPayrollCreated"
)

type NotificationTpl struct {
	Title string
	Msg   string
}

var notificationTplMap = map[NotificationCode]NotificationTpl{
	NotifyTimesheetSubmitted:      {Title: "Требуется согласование табеля", Msg: "Проверьте и согласуйте табель сотрудника %v."},
	NotifyTimesheetManagerDone:    {Title: "Требуется согласование второго этапа", Msg: "Табель сотрудника %v согласован руководителем, требуется согласование второго этапа."},
	NotifyTimesheetSeniorDone:     {Title: "Требуется финальное согласование HR", Msg: "Проверьте и дайте финальное согласование по табелю сотрудника %v."},
	NotifyTimesheetHrDone:         {Title: "Табель согласован", Msg: "Ваш табель согласован HR."},
	NotifyTimesheetRejected:       {Title: "Табель отклонен", Msg: "Ваш табель отклонен. Причина: %v."},
	NotifyTimesheetPayrollCreated: {Title: "Сформирован расчетный лист", Msg: "По вашим переработкам сформирован расчетный лист в пакете «%v»."},
}

type NotificationData struct {
	Code  NotificationCode
	Title string
	Msg   string
}

func GetNotification(code NotificationCode, args ...interface{}) NotificationData {
	tpl := notificationTplMap[code]
	return NotificationData{
		Code:  code,
		Title: tpl.Title,
		Msg:   fmt.Sprintf(tpl.Msg, args...),
	}
}
