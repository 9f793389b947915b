package dbmodels

import (
	"time"
)

// WorkEntryType - вид оплаты в расчетном листе, ищется по коду.
// Код уникален в рамках пространства (индекс создается миграцией).
type WorkEntryType struct {
	BaseSpaceModel
	Code    string `gorm:"type:varchar(20);index"`
	Name    string `gorm:"type:varchar(255)"`
	IsLeave bool
}

// PayslipRun - пакет расчетных листов одного запуска
type PayslipRun struct {
	BaseSpaceModel
	Name      string    `gorm:"type:varchar(255)"`
	DateStart time.Time `gorm:"type:date"`
	DateEnd   time.Time `gorm:"type:date"`
}

type Payslip struct {
	BaseSpaceModel
	Name       string `gorm:"type:varchar(255)"`
	EmployeeID string `gorm:"type:varchar(36);index"`
	Employee   *Employee
	ContractID string `gorm:"type:varchar(36)"`
	Contract   *Contract
	BatchID    string `gorm:"type:varchar(36);index"`
	Batch      *PayslipRun `gorm:"foreignKey:BatchID"`
	// ссылка на структуру расчета зарплаты (внешняя для этого модуля)
	StructRef string    `gorm:"type:varchar(36)"`
	DateFrom  time.Time `gorm:"type:date"`
	DateTo    time.Time `gorm:"type:date"`
	// лист рассчитан (сам расчет сумм - внешний процесс)
	Computed bool

	WorkedDays []PayslipWorkedDays `gorm:"foreignKey:PayslipID"`
}

type PayslipWorkedDays struct {
	BaseModel
	PayslipID       string `gorm:"type:varchar(36);index"`
	WorkEntryTypeID string `gorm:"type:varchar(36)"`
	Code            string `gorm:"type:varchar(20)"`
	NumberOfDays    float64
	NumberOfHours   float64
	Amount          float64
}
