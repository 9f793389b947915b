package activitystore

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApprovalActivity) (string, error)
	MarkDone(spaceID, entityType, entityID string) error
	ListByUser(spaceID, userID string, onlyOpen bool) (list []dbmodels.ApprovalActivity, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApprovalActivity) (string, error) {
	err := i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// MarkDone закрывает все открытые задачи по документу
func (i impl) MarkDone(spaceID, entityType, entityID string) error {
	return i.db.
		Model(&dbmodels.ApprovalActivity{}).
		Where("space_id = ?", spaceID).
		Where("entity_type = ?", entityType).
		Where("entity_id = ?", entityID).
		Where("done = ?", false).
		Update("done", true).
		Error
}

func (i impl) ListByUser(spaceID, userID string, onlyOpen bool) (list []dbmodels.ApprovalActivity, err error) {
	tx := i.db.Model(dbmodels.ApprovalActivity{}).
		Where("space_id = ?", spaceID).
		Where("user_id = ?", userID)
	if onlyOpen {
		tx = tx.Where("done = ?", false)
	}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
