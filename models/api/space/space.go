package spaceapimodels

import (
	"errors"
)

type CreateSpace struct {
	OrganizationName string    `json:"organization_name"`
	FullName         string    `json:"full_name"`
	DirectorName     string    `json:"director_name"`
	AdminData        AdminData `json:"admin_data"`
}

type AdminData struct {
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func (r CreateSpace) Validate() error {
	if r.OrganizationName == "" {
		return errors.New("не указано название организации")
	}
	if r.AdminData.Email == "" {
		return errors.New("не указан емайл администратора")
	}
	if r.AdminData.Password == "" {
		return errors.New("не указан пароль администратора")
	}
	return nil
}
