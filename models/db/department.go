package dbmodels

import (
	"github.com/pkg/errors"
)

type Department struct {
	BaseSpaceModel
	Name string `gorm:"type:varchar(255)"`
	// руководитель подразделения, согласует вторым этапом при политике department_head
	HeadUserID *string    `gorm:"type:varchar(36)"`
	HeadUser   *SpaceUser `gorm:"foreignKey:HeadUserID"`
}

func (d *Department) Validate() error {
	if err := d.BaseSpaceModel.Validate(); err != nil {
		return err
	}
	if d.Name == "" {
		return errors.New("не указано название подразделения")
	}
	return nil
}
