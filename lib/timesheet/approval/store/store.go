package approvalstore

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hr-timesheet-backend/models"
	timesheetapimodels "hr-timesheet-backend/models/api/timesheet"
	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TimesheetApproval) (string, error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	Delete(spaceID, id string) error
	GetByID(spaceID, id string) (rec *dbmodels.TimesheetApproval, err error)
	GetByIDs(spaceID string, ids []string) (list []dbmodels.TimesheetApproval, err error)
	LockByID(spaceID, id string) (rec *dbmodels.TimesheetApproval, err error)
	LockByIDs(spaceID string, ids []string) (list []dbmodels.TimesheetApproval, err error)
	List(spaceID string, filter timesheetapimodels.ApprovalFilter, page, limit int) (list []dbmodels.TimesheetApproval, rowCount int64, err error)
	ExistsForPeriod(spaceID, employeeID string, dateStart, dateEnd time.Time, excludeID string) (bool, error)
	NextNumber(spaceID string) (string, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TimesheetApproval) (string, error) {
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
		Model(&dbmodels.TimesheetApproval{}).
		Where("space_id = ?", spaceID).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(spaceID, id string) error {
	return i.db.
		Where("space_id = ?", spaceID).
		Where("id = ?", id).
		Delete(&dbmodels.TimesheetApproval{}).
		Error
}

func (i impl) GetByID(spaceID, id string) (rec *dbmodels.TimesheetApproval, err error) {
	err = i.db.Model(dbmodels.TimesheetApproval{}).
		Preload("Employee").
		Preload("Lines").
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

func (i impl) GetByIDs(spaceID string, ids []string) (list []dbmodels.TimesheetApproval, err error) {
	err = i.db.Model(dbmodels.TimesheetApproval{}).
		Preload("Employee").
		Preload("Lines").
		Where("space_id = ?", spaceID).
		Where("id IN ?", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// LockByID блокирует заявку до конца транзакции, строки подгружаются
// отдельным запросом после захвата блокировки
func (i impl) LockByID(spaceID, id string) (rec *dbmodels.TimesheetApproval, err error) {
	err = i.db.Model(dbmodels.TimesheetApproval{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
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
	err = i.db.Model(dbmodels.TimeEntry{}).
		Where("space_id = ?", spaceID).
		Where("approval_id = ?", id).
		Order("date").
		Find(&rec.Lines).
		Error
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (i impl) LockByIDs(spaceID string, ids []string) (list []dbmodels.TimesheetApproval, err error) {
	err = i.db.Model(dbmodels.TimesheetApproval{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("space_id = ?", spaceID).
		Where("id IN ?", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	for idx := range list {
		err = i.db.Model(dbmodels.TimeEntry{}).
			Where("space_id = ?", spaceID).
			Where("approval_id = ?", list[idx].ID).
			Order("date").
			Find(&list[idx].Lines).
			Error
		if err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (i impl) List(spaceID string, filter timesheetapimodels.ApprovalFilter, page, limit int) (list []dbmodels.TimesheetApproval, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.TimesheetApproval{}).
		Where("space_id = ?", spaceID)
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.State != "" {
		tx = tx.Where("state = ?", filter.State)
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
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

// ExistsForPeriod - есть ли неотклоненная заявка того же сотрудника
// на тот же период
func (i impl) ExistsForPeriod(spaceID, employeeID string, dateStart, dateEnd time.Time, excludeID string) (bool, error) {
	var count int64
	tx := i.db.Model(&dbmodels.TimesheetApproval{}).
		Where("space_id = ?", spaceID).
		Where("employee_id = ?", employeeID).
		Where("date_start = ?", dateStart).
		Where("date_end = ?", dateEnd).
		Where("state <> ?", models.ApprovalStateRejected)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	err := tx.Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// NextNumber выдает следующий номер заявки, последняя строка блокируется
// от конкурентной выдачи того же номера
func (i impl) NextNumber(spaceID string) (string, error) {
	var last dbmodels.TimesheetApproval
	err := i.db.Model(dbmodels.TimesheetApproval{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("space_id = ?", spaceID).
		Order("created_at desc").
		First(&last).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Sprintf("TS-%06d", 1), nil
		}
		return "", err
	}
	seq := 0
	parts := strings.Split(last.Number, "-")
	if len(parts) == 2 {
		seq, _ = strconv.Atoi(parts[1])
	}
	return fmt.Sprintf("TS-%06d", seq+1), nil
}
