package dbmodels

import (
	"fmt"

	"github.com/pkg/errors"
)

type Employee struct {
	BaseSpaceModel
	FirstName string `gorm:"type:varchar(150)"`
	LastName  string `gorm:"type:varchar(150)"`
	Email     string `gorm:"type:varchar(255)"`
	// учетная запись сотрудника
	UserID *string    `gorm:"type:varchar(36)"`
	User   *SpaceUser `gorm:"foreignKey:UserID"`
	// руководитель, согласующий табели первым этапом
	ManagerUserID *string    `gorm:"type:varchar(36)"`
	ManagerUser   *SpaceUser `gorm:"foreignKey:ManagerUserID"`
	DepartmentID  *string    `gorm:"type:varchar(36)"`
	Department    *Department
}

func (e Employee) GetFullName() string {
	return fmt.Sprintf("%s %s", e.FirstName, e.LastName)
}

func (e *Employee) Validate() error {
	if err := e.BaseSpaceModel.Validate(); err != nil {
		return err
	}
	if e.FirstName == "" || e.LastName == "" {
		return errors.New("не указано имя сотрудника")
	}
	return nil
}
