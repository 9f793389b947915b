package directory

import (
	log "github.com/sirupsen/logrus"

	"hr-timesheet-backend/db"
	departmentstore "hr-timesheet-backend/lib/directory/department-store"
	employeestore "hr-timesheet-backend/lib/directory/employee-store"
	spacesettingshandler "hr-timesheet-backend/lib/space/settings/handler"
	spaceusersstore "hr-timesheet-backend/lib/space/users/store"
	"hr-timesheet-backend/models"
	apimodels "hr-timesheet-backend/models/api"
	timesheetapimodels "hr-timesheet-backend/models/api/timesheet"
	dbmodels "hr-timesheet-backend/models/db"
)

type Provider interface {
	CreateEmployee(spaceID string, data timesheetapimodels.EmployeeData) (string, error)
	UpdateEmployee(spaceID, id string, data timesheetapimodels.EmployeeData) error
	DeleteEmployee(spaceID, id string) error
	GetEmployee(spaceID, id string) (*timesheetapimodels.EmployeeView, error)
	ListEmployees(spaceID string, pg apimodels.Pagination) ([]timesheetapimodels.EmployeeView, int64, error)
	EmployeeByUserID(spaceID, userID string) (*dbmodels.Employee, error)

	CreateDepartment(spaceID, name string, headUserID *string) (string, error)
	ListDepartments(spaceID string) ([]dbmodels.Department, error)

	IsOwner(spaceID, userID, employeeID string) (bool, error)
	CanApprove(spaceID, userID string, role models.ApproverRole, employeeID string) (bool, error)
	StageApproverIDs(spaceID string, role models.ApproverRole, employeeID string) ([]string, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithStores(
		employeestore.NewInstance(db.DB),
		departmentstore.NewInstance(db.DB),
		spaceusersstore.NewInstance(db.DB),
	)
}

func NewHandlerWithStores(
	employeeStore employeestore.Provider,
	departmentStore departmentstore.Provider,
	spaceUsersStore spaceusersstore.Provider,
) Provider {
	return impl{
		employeeStore:   employeeStore,
		departmentStore: departmentStore,
		spaceUsersStore: spaceUsersStore,
	}
}

type impl struct {
	employeeStore   employeestore.Provider
	departmentStore departmentstore.Provider
	spaceUsersStore spaceusersstore.Provider
}

func (i impl) CreateEmployee(spaceID string, data timesheetapimodels.EmployeeData) (string, error) {
	rec := dbmodels.Employee{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
	}
	rec.SpaceID = spaceID
	if data.UserID != "" {
		rec.UserID = &data.UserID
	}
	if data.ManagerUserID != "" {
		rec.ManagerUserID = &data.ManagerUserID
	}
	if data.DepartmentID != "" {
		rec.DepartmentID = &data.DepartmentID
	}
	id, err := i.employeeStore.Create(rec)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithError(err).
			Error("ошибка создания сотрудника")
		return "", err
	}
	return id, nil
}

func (i impl) UpdateEmployee(spaceID, id string, data timesheetapimodels.EmployeeData) error {
	updMap := map[string]interface{}{
		"first_name": data.FirstName,
		"last_name":  data.LastName,
		"email":      data.Email,
	}
	updMap["user_id"] = nilIfEmpty(data.UserID)
	updMap["manager_user_id"] = nilIfEmpty(data.ManagerUserID)
	updMap["department_id"] = nilIfEmpty(data.DepartmentID)
	err := i.employeeStore.Update(spaceID, id, updMap)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("employee_id", id).
			WithError(err).
			Error("ошибка обновления сотрудника")
		return err
	}
	return nil
}

func (i impl) DeleteEmployee(spaceID, id string) error {
	err := i.employeeStore.Delete(spaceID, id)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("employee_id", id).
			WithError(err).
			Error("ошибка удаления сотрудника")
		return err
	}
	return nil
}

func (i impl) GetEmployee(spaceID, id string) (*timesheetapimodels.EmployeeView, error) {
	rec, err := i.employeeStore.GetByID(spaceID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewValidationError("сотрудник не найден")
	}
	view := timesheetapimodels.EmployeeConvert(*rec)
	return &view, nil
}

func (i impl) ListEmployees(spaceID string, pg apimodels.Pagination) ([]timesheetapimodels.EmployeeView, int64, error) {
	page, limit := pg.GetPage()
	list, rowCount, err := i.employeeStore.List(spaceID, page, limit)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithError(err).
			Error("ошибка получения списка сотрудников")
		return nil, 0, err
	}
	result := make([]timesheetapimodels.EmployeeView, 0, len(list))
	for _, rec := range list {
		result = append(result, timesheetapimodels.EmployeeConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) EmployeeByUserID(spaceID, userID string) (*dbmodels.Employee, error) {
	return i.employeeStore.GetByUserID(spaceID, userID)
}

func (i impl) CreateDepartment(spaceID, name string, headUserID *string) (string, error) {
	rec := dbmodels.Department{
		Name:       name,
		HeadUserID: headUserID,
	}
	rec.SpaceID = spaceID
	return i.departmentStore.Create(rec)
}

func (i impl) ListDepartments(spaceID string) ([]dbmodels.Department, error) {
	return i.departmentStore.List(spaceID)
}

func (i impl) IsOwner(spaceID, userID, employeeID string) (bool, error) {
	employee, err := i.employeeStore.GetByID(spaceID, employeeID)
	if err != nil {
		return false, err
	}
	if employee == nil || employee.UserID == nil {
		return false, nil
	}
	return *employee.UserID == userID, nil
}

// CanApprove проверяет, может ли пользователь действовать на этапе role
// для документа сотрудника employeeID
func (i impl) CanApprove(spaceID, userID string, role models.ApproverRole, employeeID string) (bool, error) {
	ids, err := i.StageApproverIDs(spaceID, role, employeeID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (i impl) StageApproverIDs(spaceID string, role models.ApproverRole, employeeID string) ([]string, error) {
	switch role {
	case models.ApproverRoleManager:
		employee, err := i.employeeStore.GetByID(spaceID, employeeID)
		if err != nil {
			return nil, err
		}
		if employee == nil || employee.ManagerUserID == nil {
			return nil, nil
		}
		return []string{*employee.ManagerUserID}, nil
	case models.ApproverRoleSenior:
		return i.seniorApproverIDs(spaceID, employeeID)
	case models.ApproverRoleHr:
		users, err := i.spaceUsersStore.ListHrApprovers(spaceID)
		if err != nil {
			return nil, err
		}
		return userIDs(users), nil
	}
	return nil, models.NewValidationError("неизвестный этап согласования: %v", role)
}

// seniorApproverIDs учитывает политику пространства: при department_head
// согласует руководитель отдела сотрудника, при его отсутствии действует
// общий список согласующих второго этапа
func (i impl) seniorApproverIDs(spaceID, employeeID string) ([]string, error) {
	policy := spacesettingshandler.Instance.GetSeniorApproverPolicy(spaceID)
	if policy == models.SeniorPolicyDepartmentHead {
		employee, err := i.employeeStore.GetByID(spaceID, employeeID)
		if err != nil {
			return nil, err
		}
		if employee != nil && employee.DepartmentID != nil {
			department, err := i.departmentStore.GetByID(spaceID, *employee.DepartmentID)
			if err != nil {
				return nil, err
			}
			if department != nil && department.HeadUserID != nil {
				return []string{*department.HeadUserID}, nil
			}
		}
	}
	users, err := i.spaceUsersStore.ListSeniorApprovers(spaceID)
	if err != nil {
		return nil, err
	}
	return userIDs(users), nil
}

func userIDs(users []dbmodels.SpaceUser) []string {
	ids := make([]string, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}
	return ids
}

func nilIfEmpty(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
