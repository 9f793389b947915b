package dbmodels

import (
	"hr-timesheet-backend/models"
	spaceapimodels "hr-timesheet-backend/models/api/space"
)

type SpaceSetting struct {
	BaseModel
	SpaceID string                  `gorm:"type:varchar(36);index:idx_setting_code"`
	Name    string                  `gorm:"type:varchar(255)"`
	Code    models.SpaceSettingCode `gorm:"type:varchar(255);index:idx_setting_code"`
	Value   string                  `gorm:"type:varchar(500)"`
}

func (r SpaceSetting) ToModelView() spaceapimodels.SpaceSettingView {
	return spaceapimodels.SpaceSettingView{
		ID:      r.ID,
		SpaceID: r.SpaceID,
		Name:    r.Name,
		Code:    r.Code,
		Value:   r.Value,
	}
}

var DefaultSeniorApproverPolicySetting = SpaceSetting{
	SpaceID: "",
	Name:    "политика второго этапа согласования (ceo/department_head)",
	Code:    models.SeniorApproverPolicySetting,
	Value:   string(models.SeniorPolicyCeo),
}

var DefaultSignatureRequiredSetting = SpaceSetting{
	SpaceID: "",
	Name:    "требовать подпись участника перед его действием",
	Code:    models.SignatureRequiredSetting,
	Value:   "false",
}

var DefaultSpaceSenderEmail = SpaceSetting{
	SpaceID: "",
	Name:    "почта, с которой отправляются уведомления",
	Code:    models.SpaceSenderEmail,
	Value:   "",
}

var DefaultSettinsMap = map[models.SpaceSettingCode]SpaceSetting{
	models.SeniorApproverPolicySetting: DefaultSeniorApproverPolicySetting,
	models.SignatureRequiredSetting:    DefaultSignatureRequiredSetting,
	models.SpaceSenderEmail:            DefaultSpaceSenderEmail,
}
