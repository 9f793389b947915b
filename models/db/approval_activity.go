package dbmodels

import (
	"time"
)

// ApprovalActivity - задача-уведомление участнику согласования
type ApprovalActivity struct {
	BaseSpaceModel
	UserID  string     `gorm:"type:varchar(36);index"`
	User    *SpaceUser
	Summary string    `gorm:"type:varchar(255)"`
	Note    string    `gorm:"type:varchar(1000)"`
	DueDate time.Time `gorm:"type:date"`
	// документ, по которому создана задача
	EntityType string `gorm:"type:varchar(50);index:idx_activity_entity"`
	EntityID   string `gorm:"type:varchar(36);index:idx_activity_entity"`
	Done       bool
}
