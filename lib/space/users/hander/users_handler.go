package spaceusershander

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"hr-timesheet-backend/db"
	spaceusersstore "hr-timesheet-backend/lib/space/users/store"
	authutils "hr-timesheet-backend/lib/utils/auth-utils"
	"hr-timesheet-backend/models"
	spaceapimodels "hr-timesheet-backend/models/api/space"
	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	CreateUser(request spaceapimodels.CreateUser) (string, error)
	UpdateUser(userID string, request spaceapimodels.UpdateUser) error
	DeleteUser(userID string) error
	GetListUsers(spaceID string, page, limit int) (usersList []spaceapimodels.SpaceUser, err error)
	GetByID(userID string) (user spaceapimodels.SpaceUser, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		spaceUserStore: spaceusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	spaceUserStore spaceusersstore.Provider
}

func (i impl) GetByID(userID string) (user spaceapimodels.SpaceUser, err error) {
	userDB, err := i.spaceUserStore.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка поиска пользователя")
		return spaceapimodels.SpaceUser{}, err
	}
	if userDB == nil {
		return spaceapimodels.SpaceUser{}, errors.New("пользователь не найден")
	}
	return userDB.ToModel(), nil
}

func (i impl) CreateUser(request spaceapimodels.CreateUser) (string, error) {
	userExist, err := i.spaceUserStore.ExistByEmail(request.Email)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("ошибка проверки уже существующего пользователя space")
		return "", err
	}
	if userExist {
		return "", errors.New("пользователь с такой почтой уже существует")
	}
	rec := dbmodels.SpaceUser{
		Password:       authutils.GetMD5Hash(request.Password),
		FirstName:      request.FirstName,
		LastName:       request.LastName,
		Email:          request.Email,
		IsActive:       true,
		PhoneNumber:    request.PhoneNumber,
		SpaceID:        request.SpaceID,
		SeniorApprover: request.SeniorApprover,
		HrApprover:     request.HrApprover,
	}
	if request.IsAdmin {
		rec.Role = models.SpaceAdminRole
	} else {
		rec.Role = models.SpaceUserRole
	}
	id, err := i.spaceUserStore.Create(rec)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("ошибка создания пользователя space")
		return "", err
	}
	return id, nil
}

func (i impl) UpdateUser(userID string, request spaceapimodels.UpdateUser) error {
	_, err := i.GetByID(userID)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"first_name":      request.FirstName,
		"last_name":       request.LastName,
		"email":           request.Email,
		"phone_number":    request.PhoneNumber,
		"senior_approver": request.SeniorApprover,
		"hr_approver":     request.HrApprover,
	}
	if request.Password != "" {
		updMap["password"] = authutils.GetMD5Hash(request.Password)
	}
	if request.IsAdmin {
		updMap["role"] = string(models.SpaceAdminRole)
	} else {
		updMap["role"] = string(models.SpaceUserRole)
	}
	err = i.spaceUserStore.Update(userID, updMap)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("ошибка обновления пользователя space")
		return err
	}
	return nil
}

func (i impl) DeleteUser(userID string) error {
	err := i.spaceUserStore.Delete(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка удаления пользователя space")
		return err
	}
	return nil
}

func (i impl) GetListUsers(spaceID string, page, limit int) (usersList []spaceapimodels.SpaceUser, err error) {
	list, err := i.spaceUserStore.GetList(spaceID, page, limit)
	if err != nil {
		log.WithField("space_id", spaceID).WithError(err).Error("ошибка получения списка пользователей space")
		return nil, err
	}
	for _, user := range list {
		usersList = append(usersList, user.ToModel())
	}
	return usersList, nil
}
