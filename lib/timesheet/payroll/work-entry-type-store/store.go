package workentrytypestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.WorkEntryType) (string, error)
	GetByCode(spaceID, code string) (rec *dbmodels.WorkEntryType, err error)
	List(spaceID string) (list []dbmodels.WorkEntryType, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WorkEntryType) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByCode(spaceID, code string) (rec *dbmodels.WorkEntryType, err error) {
	err = i.db.Model(dbmodels.WorkEntryType{}).
		Where("space_id = ?", spaceID).
		Where("code = ?", code).
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

func (i impl) List(spaceID string) (list []dbmodels.WorkEntryType, err error) {
	err = i.db.Model(dbmodels.WorkEntryType{}).
		Where("space_id = ?", spaceID).
		Order("code").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
