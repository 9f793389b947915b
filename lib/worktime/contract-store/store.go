package contractstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hr-timesheet-backend/models"
	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Contract) (string, error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	GetByID(spaceID, id string) (rec *dbmodels.Contract, err error)
	ListByEmployee(spaceID, employeeID string) (list []dbmodels.Contract, err error)
	GetOpenByEmployee(spaceID, employeeID string) (rec *dbmodels.Contract, err error)
	ListActiveInRange(spaceID, employeeID string, dateStart, dateEnd time.Time) (list []dbmodels.Contract, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Contract) (string, error) {
	err := i.db.
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
		Model(&dbmodels.Contract{}).
		Where("space_id = ?", spaceID).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(spaceID, id string) (rec *dbmodels.Contract, err error) {
	err = i.db.Model(dbmodels.Contract{}).
		Preload("Calendar").
		Preload("Calendar.Attendances").
		Preload("Calendar.Leaves").
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

func (i impl) ListByEmployee(spaceID, employeeID string) (list []dbmodels.Contract, err error) {
	err = i.db.Model(dbmodels.Contract{}).
		Where("space_id = ?", spaceID).
		Where("employee_id = ?", employeeID).
		Order("date_start").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetOpenByEmployee(spaceID, employeeID string) (rec *dbmodels.Contract, err error) {
	err = i.db.Model(dbmodels.Contract{}).
		Where("space_id = ?", spaceID).
		Where("employee_id = ?", employeeID).
		Where("state = ?", models.ContractStateOpen).
		Order("date_start desc").
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

// ListActiveInRange возвращает контракты, период действия которых
// пересекается с запрошенным интервалом
func (i impl) ListActiveInRange(spaceID, employeeID string, dateStart, dateEnd time.Time) (list []dbmodels.Contract, err error) {
	err = i.db.Model(dbmodels.Contract{}).
		Preload("Calendar").
		Preload("Calendar.Attendances").
		Preload("Calendar.Leaves").
		Where("space_id = ?", spaceID).
		Where("employee_id = ?", employeeID).
		Where("date_start <= ?", dateEnd).
		Where("date_end IS NULL OR date_end >= ?", dateStart).
		Order("date_start").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
