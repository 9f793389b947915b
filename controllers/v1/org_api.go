package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-timesheet-backend/controllers"
	spacehandler "hr-timesheet-backend/lib/space/handler"
	apimodels "hr-timesheet-backend/models/api"
	spaceapimodels "hr-timesheet-backend/models/api/space"
)

type orgApiController struct {
	controllers.BaseAPIController
}

func InitOrgApiRouters(app *fiber.App) {
	controller := orgApiController{}
	app.Route("organizations", func(router fiber.Router) {
		router.Post("", controller.createOrg)
	})
}

// @Summary Регистрация организации
// @Tags Организации
// @Description Регистрация организации с администратором пространства
// @Param	body				body		spaceapimodels.CreateSpace	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/organizations [post]
func (c *orgApiController) createOrg(ctx *fiber.Ctx) error {
	var payload spaceapimodels.CreateSpace
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := spacehandler.Instance.CreateSpace(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации организации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
