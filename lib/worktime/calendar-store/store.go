package calendarstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.WorkCalendar) (string, error)
	GetByID(spaceID, id string) (rec *dbmodels.WorkCalendar, err error)
	List(spaceID string) (list []dbmodels.WorkCalendar, err error)
	Delete(spaceID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WorkCalendar) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (rec *dbmodels.WorkCalendar, err error) {
	err = i.db.Model(dbmodels.WorkCalendar{}).
		Preload("Attendances").
		Preload("Leaves").
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

func (i impl) List(spaceID string) (list []dbmodels.WorkCalendar, err error) {
	err = i.db.Model(dbmodels.WorkCalendar{}).
		Preload("Attendances").
		Where("space_id = ?", spaceID).
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(spaceID, id string) error {
	return i.db.
		Where("space_id = ?", spaceID).
		Where("id = ?", id).
		Delete(&dbmodels.WorkCalendar{}).
		Error
}
