package batchstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.PayslipRun) (string, error)
	GetByID(spaceID, id string) (rec *dbmodels.PayslipRun, err error)
	List(spaceID string, page, limit int) (list []dbmodels.PayslipRun, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PayslipRun) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (rec *dbmodels.PayslipRun, err error) {
	err = i.db.Model(dbmodels.PayslipRun{}).
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

func (i impl) List(spaceID string, page, limit int) (list []dbmodels.PayslipRun, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.PayslipRun{}).
		Where("space_id = ?", spaceID)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	if limit > 0 {
		tx.Limit(limit)
		if page > 1 {
			tx.Offset((page - 1) * limit)
		}
	}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}
