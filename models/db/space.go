package dbmodels

type Space struct {
	BaseModel
	IsActive         bool
	OrganizationName string `gorm:"type:varchar(255)"` // Юридическое название компании
	FullName         string `gorm:"type:varchar(255)"`
	DirectorName     string `gorm:"type:varchar(255)"`
}
