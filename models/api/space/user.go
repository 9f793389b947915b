package spaceapimodels

import (
	"errors"
)

type CreateUser struct {
	Password string `json:"password"`
	SpaceUserCommonData
}

type UpdateUser struct {
	Password string `json:"password"`
	SpaceUserCommonData
}

type SpaceUser struct {
	ID string `json:"id"`
	SpaceUserCommonData
}

type SpaceUserCommonData struct {
	SpaceID        string `json:"space_id"`
	Email          string `json:"email"` // Email пользователя
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	PhoneNumber    string `json:"phone_number"`
	IsAdmin        bool   `json:"is_admin"`
	Role           string `json:"role"`
	SeniorApprover bool   `json:"senior_approver"` // входит в группу согласующих второго этапа
	HrApprover     bool   `json:"hr_approver"`     // входит в группу HR согласования
}

func (r SpaceUserCommonData) Validate() error {
	if r.Email == "" {
		return errors.New("не указан емайл")
	}
	if r.FirstName == "" && r.LastName == "" {
		return errors.New("не указаны имя и фамилия")
	}
	return nil
}
