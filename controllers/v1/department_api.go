package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-timesheet-backend/controllers"
	"hr-timesheet-backend/lib/directory"
	"hr-timesheet-backend/middleware"
	apimodels "hr-timesheet-backend/models/api"
)

type departmentApiController struct {
	controllers.BaseAPIController
}

type departmentData struct {
	Name       string  `json:"name"`
	HeadUserID *string `json:"head_user_id"`
}

func InitDepartmentApiRouters(app *fiber.App) {
	controller := departmentApiController{}
	app.Route("departments", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Use(middleware.SpaceAdminRequired()).Post("", controller.create)
	})
}

// @Summary Создание отдела
// @Tags Отделы
// @Description Создание отдела с руководителем
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/departments [post]
func (c *departmentApiController) create(ctx *fiber.Ctx) error {
	var payload departmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.Name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указано название отдела"))
	}
	spaceID := middleware.GetUserSpace(ctx)
	id, err := directory.Instance.CreateDepartment(spaceID, payload.Name, payload.HeadUserID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания отдела")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список отделов
// @Tags Отделы
// @Description Список отделов пространства
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/departments/list [get]
func (c *departmentApiController) list(ctx *fiber.Ctx) error {
	spaceID := middleware.GetUserSpace(ctx)
	list, err := directory.Instance.ListDepartments(spaceID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка отделов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
