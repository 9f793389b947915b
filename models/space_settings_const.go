package models

type SpaceSettingCode string

const (
	SeniorApproverPolicySetting SpaceSettingCode = "SeniorApproverPolicy" // кто согласует вторым этапом: ceo или department_head
	SignatureRequiredSetting    SpaceSettingCode = "SignatureRequired"    // требовать подпись участника перед его действием
	SpaceSenderEmail            SpaceSettingCode = "SpaceSenderEmail"     // почта, с которой отправляются уведомления
)

type SeniorApproverPolicy string

const (
	SeniorPolicyCeo            SeniorApproverPolicy = "ceo"
	SeniorPolicyDepartmentHead SeniorApproverPolicy = "department_head"
)

func (p SeniorApproverPolicy) IsValid() bool {
	return p == SeniorPolicyCeo || p == SeniorPolicyDepartmentHead
}
