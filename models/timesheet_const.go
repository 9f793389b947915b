package models

type ContractState string

const (
	ContractStateOpen   ContractState = "open"
	ContractStateClosed ContractState = "closed"
)

// PeriodKind - период сетки учета времени, по которому формируется заявка
type PeriodKind string

const (
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
	PeriodYear  PeriodKind = "year"
	PeriodDay   PeriodKind = "day"
)

func (p PeriodKind) IsValid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear, PeriodDay:
		return true
	}
	return false
}

// SignerRole - чья подпись требуется для действия при включенной настройке SignatureRequired
type SignerRole string

const (
	SignerEmployee SignerRole = "employee"
	SignerManager  SignerRole = "manager"
	SignerSenior   SignerRole = "senior"
	SignerHr       SignerRole = "hr"
)

const (
	// DefaultDailyHours - норма часов в день при отсутствии контракта или календаря
	DefaultDailyHours = 8.0

	// OvertimeWorkEntryCode - код вида оплаты для переработок в расчетных листах
	OvertimeWorkEntryCode = "E2E"
	// OvertimeWorkEntryName - наименование вида оплаты
	OvertimeWorkEntryName = "End to End Sprints"
)

// типы документов для задач согласования
const (
	EntityTypeTimeEntry = "time_entry"
	EntityTypeApproval  = "timesheet_approval"
)
