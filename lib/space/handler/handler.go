package spacehandler

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"hr-timesheet-backend/db"
	spacestore "hr-timesheet-backend/lib/space/store"
	spaceusersstore "hr-timesheet-backend/lib/space/users/store"
	authutils "hr-timesheet-backend/lib/utils/auth-utils"
	"hr-timesheet-backend/models"
	spaceapimodels "hr-timesheet-backend/models/api/space"
	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	CreateSpace(request spaceapimodels.CreateSpace) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		spaceStore:     spacestore.NewInstance(db.DB),
		spaceUserStore: spaceusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	spaceStore     spacestore.Provider
	spaceUserStore spaceusersstore.Provider
}

func (i impl) CreateSpace(request spaceapimodels.CreateSpace) error {
	space := dbmodels.Space{
		IsActive:         true,
		OrganizationName: request.OrganizationName,
		FullName:         request.FullName,
		DirectorName:     request.DirectorName,
	}
	spaceID, err := i.spaceStore.CreateSpace(space)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("Ошибка создания организации в space")
		return err
	}
	admin := dbmodels.SpaceUser{
		Password:    authutils.GetMD5Hash(request.AdminData.Password),
		FirstName:   request.AdminData.FirstName,
		LastName:    request.AdminData.LastName,
		Email:       request.AdminData.Email,
		IsActive:    true,
		PhoneNumber: request.AdminData.PhoneNumber,
		SpaceID:     spaceID,
		Role:        models.SpaceAdminRole,
	}
	_, err = i.spaceUserStore.Create(admin)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("Ошибка создания администратора в space")
		err = i.spaceStore.DeleteSpace(spaceID)
		if err != nil {
			log.
				WithField("request", fmt.Sprintf("%+v", request)).
				WithError(err).
				Error("Ошибка очистки space после неудачного создания администратора")
		}
		return err
	}
	return nil
}
