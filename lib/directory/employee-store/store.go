package employeestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (string, error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	Delete(spaceID, id string) error
	GetByID(spaceID, id string) (rec *dbmodels.Employee, err error)
	GetByIDs(spaceID string, ids []string) (list []dbmodels.Employee, err error)
	GetByUserID(spaceID, userID string) (rec *dbmodels.Employee, err error)
	List(spaceID string, page, limit int) (list []dbmodels.Employee, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (string, error) {
	err := rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(spaceID, id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Employee{}).
		Where("space_id = ?", spaceID).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(spaceID, id string) error {
	return i.db.
		Where("space_id = ?", spaceID).
		Where("id = ?", id).
		Delete(&dbmodels.Employee{}).
		Error
}

func (i impl) GetByID(spaceID, id string) (rec *dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Preload("Department").
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

func (i impl) GetByIDs(spaceID string, ids []string) (list []dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Where("space_id = ?", spaceID).
		Where("id IN ?", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetByUserID(spaceID, userID string) (rec *dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Where("space_id = ?", spaceID).
		Where("user_id = ?", userID).
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

func (i impl) List(spaceID string, page, limit int) (list []dbmodels.Employee, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.Employee{}).
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
		Order("last_name, first_name").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}
