package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-timesheet-backend/controllers"
	"hr-timesheet-backend/lib/notify"
	"hr-timesheet-backend/middleware"
	apimodels "hr-timesheet-backend/models/api"
)

type activityApiController struct {
	controllers.BaseAPIController
}

func InitActivityApiRouters(app *fiber.App) {
	controller := activityApiController{}
	app.Route("activities", func(router fiber.Router) {
		router.Get("", controller.list)
	})
}

// @Summary Задачи согласования
// @Tags Уведомления
// @Description Задачи согласования текущего пользователя, open=true только открытые
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   open        		query   bool	false   "только открытые"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.ApprovalActivity}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/activities [get]
func (c *activityApiController) list(ctx *fiber.Ctx) error {
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	onlyOpen := ctx.QueryBool("open", false)
	list, err := notify.Instance.ListActivities(spaceID, userID, onlyOpen)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка задач")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
