package models

type UserRole string

const (
	SpaceAdminRole     UserRole = "SPACE_ADMIN_ROLE"
	SpaceUserRole      UserRole = "SPACE_USER_ROLE"
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
)

var roleHumanName = map[UserRole]string{
	SpaceAdminRole:     "Администратор",
	SpaceUserRole:      "Пользователь",
	UserRoleSuperAdmin: "Суперадмин системы",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsSpaceAdmin() bool {
	return r == SpaceAdminRole
}

const SystemUser = "Система"

// ApproverRole - роль участника согласования табелей
type ApproverRole string

const (
	ApproverRoleManager ApproverRole = "manager"
	ApproverRoleSenior  ApproverRole = "senior"
	ApproverRoleHr      ApproverRole = "hr"
)

var approverRoleHumanName = map[ApproverRole]string{
	ApproverRoleManager: "Руководитель",
	ApproverRoleSenior:  "Согласующий второго этапа",
	ApproverRoleHr:      "HR менеджер",
}

func (r ApproverRole) ToHuman() string {
	if human, exist := approverRoleHumanName[r]; exist {
		return human
	}
	return string(r)
}
