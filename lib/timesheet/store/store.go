package timesheetstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hr-timesheet-backend/models"
	timesheetapimodels "hr-timesheet-backend/models/api/timesheet"
	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TimeEntry) (string, error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	Delete(spaceID, id string) error
	GetByID(spaceID, id string) (rec *dbmodels.TimeEntry, err error)
	GetByIDs(spaceID string, ids []string) (list []dbmodels.TimeEntry, err error)
	LockByIDs(spaceID string, ids []string) (list []dbmodels.TimeEntry, err error)
	List(spaceID string, filter timesheetapimodels.TimeEntryFilter, page, limit int) (list []dbmodels.TimeEntry, rowCount int64, err error)
	ListByApproval(spaceID, approvalID string) (list []dbmodels.TimeEntry, err error)
	ApplyTransition(spaceID string, ids []string, patch models.TransitionPatch, skipValidated bool) error
	SetApprovalLink(spaceID string, ids []string, approvalID *string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TimeEntry) (string, error) {
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
		Model(&dbmodels.TimeEntry{}).
		Where("space_id = ?", spaceID).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(spaceID, id string) error {
	return i.db.
		Where("space_id = ?", spaceID).
		Where("id = ?", id).
		Delete(&dbmodels.TimeEntry{}).
		Error
}

func (i impl) GetByID(spaceID, id string) (rec *dbmodels.TimeEntry, err error) {
	err = i.db.Model(dbmodels.TimeEntry{}).
		Preload("Employee").
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

func (i impl) GetByIDs(spaceID string, ids []string) (list []dbmodels.TimeEntry, err error) {
	err = i.db.Model(dbmodels.TimeEntry{}).
		Where("space_id = ?", spaceID).
		Where("id IN ?", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// LockByIDs читает строки с блокировкой до конца транзакции
func (i impl) LockByIDs(spaceID string, ids []string) (list []dbmodels.TimeEntry, err error) {
	err = i.db.Model(dbmodels.TimeEntry{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("space_id = ?", spaceID).
		Where("id IN ?", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) List(spaceID string, filter timesheetapimodels.TimeEntryFilter, page, limit int) (list []dbmodels.TimeEntry, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.TimeEntry{}).
		Where("space_id = ?", spaceID)
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.State != "" {
		tx = tx.Where("state = ?", filter.State)
	}
	if filter.DateFrom != nil {
		tx = tx.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		tx = tx.Where("date <= ?", *filter.DateTo)
	}
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
		Preload("Employee").
		Order("date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListByApproval(spaceID, approvalID string) (list []dbmodels.TimeEntry, err error) {
	err = i.db.Model(dbmodels.TimeEntry{}).
		Where("space_id = ?", spaceID).
		Where("approval_id = ?", approvalID).
		Order("date").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ApplyTransition зеркалирует смену статуса заявки на строки табеля.
// Меняются только статус и отметки этапов, часы и содержимое строк
// остаются нетронутыми.
func (i impl) ApplyTransition(spaceID string, ids []string, patch models.TransitionPatch, skipValidated bool) error {
	if len(ids) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.TimeEntry{}).
		Where("space_id = ?", spaceID).
		Where("id IN ?", ids)
	if skipValidated {
		tx = tx.Where("validated = ?", false)
	}
	return tx.
		Updates(patch.ToUpdMap()).
		Error
}

func (i impl) SetApprovalLink(spaceID string, ids []string, approvalID *string) error {
	if len(ids) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.TimeEntry{}).
		Where("space_id = ?", spaceID).
		Where("id IN ?", ids).
		Update("approval_id", approvalID).
		Error
}
