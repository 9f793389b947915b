package payslipstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Payslip) (string, error)
	GetByID(spaceID, id string) (rec *dbmodels.Payslip, err error)
	ListByBatch(spaceID, batchID string) (list []dbmodels.Payslip, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create сохраняет расчетный лист вместе со строками отработанных дней
func (i impl) Create(rec dbmodels.Payslip) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (rec *dbmodels.Payslip, err error) {
	err = i.db.Model(dbmodels.Payslip{}).
		Preload("Employee").
		Preload("WorkedDays").
		Where("space_id = ?", spaceID).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ListByBatch(spaceID, batchID string) (list []dbmodels.Payslip, err error) {
	err = i.db.Model(dbmodels.Payslip{}).
		Preload("Employee").
		Preload("WorkedDays").
		Where("space_id = ?", spaceID).
		Where("batch_id = ?", batchID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
