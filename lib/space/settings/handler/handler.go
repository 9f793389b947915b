package spacesettingshandler

import (
	"errors"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hr-timesheet-backend/db"
	spacesettingsstore "hr-timesheet-backend/lib/space/settings/store"
	"hr-timesheet-backend/models"
	spaceapimodels "hr-timesheet-backend/models/api/space"
	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	UpdateSettingValue(spaceID, settingCode, settingValue string) error
	GetList(spaceID string) (settingsList []spaceapimodels.SpaceSettingView, err error)
	GetValueByCode(spaceID string, code models.SpaceSettingCode) (value string, err error)
	GetSeniorApproverPolicy(spaceID string) models.SeniorApproverPolicy
	IsSignatureRequired(spaceID string) bool
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		spaceSettingsStore: spacesettingsstore.NewInstance(db.DB),
	}
}

type impl struct {
	spaceSettingsStore spacesettingsstore.Provider
}

func (i impl) UpdateSettingValue(spaceID, settingCode, settingValue string) error {
	err := i.spaceSettingsStore.Update(spaceID, settingCode, settingValue)
	if err != nil {
		log.WithFields(log.Fields{
			"space_id":      spaceID,
			"setting_code":  settingCode,
			"setting_value": settingValue,
		}).
			WithError(err).
			Error("ошибка обновления настройки пространства")
		return err
	}
	return nil
}

func (i impl) GetList(spaceID string) (settingsList []spaceapimodels.SpaceSettingView, err error) {
	list, err := i.spaceSettingsStore.List(spaceID)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithError(err).
			Error("ошибка получения списка настроек пространства")
		return nil, err
	}
	for _, setting := range list {
		settingsList = append(settingsList, setting.ToModelView())
	}
	return settingsList, nil
}

func (i impl) GetValueByCode(spaceID string, code models.SpaceSettingCode) (value string, err error) {
	value, err = i.spaceSettingsStore.GetValueByCode(spaceID, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			def, ok := dbmodels.DefaultSettinsMap[code]
			if ok {
				return def.Value, nil
			}
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// GetSeniorApproverPolicy возвращает политику второго этапа согласования,
// при ошибке чтения настройки действует политика по умолчанию
func (i impl) GetSeniorApproverPolicy(spaceID string) models.SeniorApproverPolicy {
	value, err := i.GetValueByCode(spaceID, models.SeniorApproverPolicySetting)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithError(err).
			Error("ошибка получения политики второго этапа согласования")
		return models.SeniorPolicyCeo
	}
	policy := models.SeniorApproverPolicy(value)
	if !policy.IsValid() {
		return models.SeniorPolicyCeo
	}
	return policy
}

func (i impl) IsSignatureRequired(spaceID string) bool {
	value, err := i.GetValueByCode(spaceID, models.SignatureRequiredSetting)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithError(err).
			Error("ошибка получения настройки подписи")
		return false
	}
	return value == "true"
}
