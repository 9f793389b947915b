package models

import "time"

// TransitionPatch - результат перехода workflow: новое состояние и отметки,
// которые нужно записать на документ (и зеркально на строки табеля).
// Содержит только состояние и отметки, бизнес-поля документа не затрагивает.
type TransitionPatch struct {
	State             ApprovalState
	SubmittedAt       *time.Time
	ManagerApprovedAt *time.Time
	SeniorApprovedAt  *time.Time
	HrApprovedAt      *time.Time
	RejectedAt        *time.Time
	RejectionReason   *string
	RejectedByID      *string
	Reset             bool
}

// ToUpdMap - представление для gorm Updates. При сбросе в черновик все отметки
// очищаются разом.
func (p TransitionPatch) ToUpdMap() map[string]interface{} {
	if p.Reset {
		return map[string]interface{}{
			"state":               ApprovalStateDraft,
			"submitted_at":        nil,
			"manager_approved_at": nil,
			"senior_approved_at":  nil,
			"hr_approved_at":      nil,
			"rejected_at":         nil,
			"rejection_reason":    nil,
			"rejected_by_id":      nil,
		}
	}
	updMap := map[string]interface{}{
		"state": p.State,
	}
	if p.SubmittedAt != nil {
		updMap["submitted_at"] = *p.SubmittedAt
	}
	if p.ManagerApprovedAt != nil {
		updMap["manager_approved_at"] = *p.ManagerApprovedAt
	}
	if p.SeniorApprovedAt != nil {
		updMap["senior_approved_at"] = *p.SeniorApprovedAt
	}
	if p.HrApprovedAt != nil {
		updMap["hr_approved_at"] = *p.HrApprovedAt
	}
	if p.RejectedAt != nil {
		updMap["rejected_at"] = *p.RejectedAt
	}
	if p.RejectionReason != nil {
		updMap["rejection_reason"] = *p.RejectionReason
	}
	if p.RejectedByID != nil {
		updMap["rejected_by_id"] = *p.RejectedByID
	}
	return updMap
}
