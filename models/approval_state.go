package models

type ApprovalState string

const (
	ApprovalStateDraft           ApprovalState = "draft"
	ApprovalStateSubmitted       ApprovalState = "submitted"
	ApprovalStateManagerApproved ApprovalState = "manager_approved"
	ApprovalStateSeniorApproved  ApprovalState = "senior_approved"
	ApprovalStateHrApproved      ApprovalState = "hr_approved"
	ApprovalStateRejected        ApprovalState = "rejected"
)

var approvalStateHumanName = map[ApprovalState]string{
	ApprovalStateDraft:           "Черновик",
	ApprovalStateSubmitted:       "Подан на согласование",
	ApprovalStateManagerApproved: "Согласован руководителем",
	ApprovalStateSeniorApproved:  "Согласован вторым этапом",
	ApprovalStateHrApproved:      "Согласован HR",
	ApprovalStateRejected:        "Отклонен",
}

func (s ApprovalState) ToHuman() string {
	if human, exist := approvalStateHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApprovalState) AllowSubmit() bool {
	return s == ApprovalStateDraft
}

func (s ApprovalState) AllowManagerApprove() bool {
	return s == ApprovalStateSubmitted
}

func (s ApprovalState) AllowSeniorApprove() bool {
	return s == ApprovalStateManagerApproved
}

func (s ApprovalState) AllowHrApprove() bool {
	return s == ApprovalStateSeniorApproved
}

// Отклонить можно любой документ кроме черновика и финально согласованного
func (s ApprovalState) AllowReject() bool {
	return s != ApprovalStateDraft && s != ApprovalStateHrApproved
}

// Возврат в черновик запрещен только после финального согласования
func (s ApprovalState) AllowReset() bool {
	return s != ApprovalStateHrApproved
}

func (s ApprovalState) IsTerminal() bool {
	return s == ApprovalStateHrApproved
}
