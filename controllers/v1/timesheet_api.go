package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-timesheet-backend/controllers"
	timesheethandler "hr-timesheet-backend/lib/timesheet"
	"hr-timesheet-backend/lib/timesheet/workflow"
	"hr-timesheet-backend/middleware"
	apimodels "hr-timesheet-backend/models/api"
	timesheetapimodels "hr-timesheet-backend/models/api/timesheet"
)

type timesheetApiController struct {
	controllers.BaseAPIController
}

func getActor(ctx *fiber.Ctx) workflow.Actor {
	return workflow.Actor{
		UserID:  middleware.GetUserID(ctx),
		SpaceID: middleware.GetUserSpace(ctx),
		IsAdmin: middleware.GetSpaceRole(ctx).IsSpaceAdmin(),
	}
}

func InitTimesheetApiRouters(app *fiber.App) {
	controller := timesheetApiController{}
	app.Route("timesheet", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Post("submit_selected", controller.submitSelected)
		router.Post("manager_approve_selected", controller.managerApproveSelected)
		router.Post("senior_approve_selected", controller.seniorApproveSelected)
		router.Post("hr_approve_selected", controller.hrApproveSelected)
		router.Post("reject_selected", controller.rejectSelected)
		router.Post("reset_selected", controller.resetSelected)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("submit", controller.submit)
			idRoute.Put("manager_approve", controller.managerApprove)
			idRoute.Put("senior_approve", controller.seniorApprove)
			idRoute.Put("hr_approve", controller.hrApprove)
			idRoute.Put("reject", controller.reject)
			idRoute.Put("reset", controller.reset)
			idRoute.Put("validated", controller.setValidated)
		})
	})
}

// @Summary Создание записи табеля
// @Tags Табель
// @Description Создание записи учета времени
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.TimeEntryData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet [post]
func (c *timesheetApiController) create(ctx *fiber.Ctx) error {
	var payload timesheetapimodels.TimeEntryData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	id, err := timesheethandler.Instance.Create(spaceID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания записи табеля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление записи табеля
// @Tags Табель
// @Description Обновление записи учета времени
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Param	body body	 timesheetapimodels.TimeEntryData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/{id} [put]
func (c *timesheetApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload timesheetapimodels.TimeEntryData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = timesheethandler.Instance.Update(spaceID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления записи табеля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление записи табеля
// @Tags Табель
// @Description Удаление записи учета времени
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/{id} [delete]
func (c *timesheetApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = timesheethandler.Instance.Delete(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления записи табеля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение по ИД
// @Tags Табель
// @Description Получение записи учета времени по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.TimeEntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/{id} [get]
func (c *timesheetApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	resp, err := timesheethandler.Instance.Get(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения записи табеля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список записей табеля
// @Tags Табель
// @Description Список записей учета времени с фильтром
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.TimeEntryListData	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]timesheetapimodels.TimeEntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/list [post]
func (c *timesheetApiController) list(ctx *fiber.Ctx) error {
	var payload timesheetapimodels.TimeEntryListData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	list, rowCount, err := timesheethandler.Instance.List(spaceID, payload.TimeEntryFilter, payload.Pagination)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка записей табеля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Отметка проверки
// @Tags Табель
// @Description Отметка проверки записи табеля
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/{id}/validated [put]
func (c *timesheetApiController) setValidated(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload struct {
		Validated bool `json:"validated"`
	}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = timesheethandler.Instance.SetValidated(spaceID, id, payload.Validated)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки проверки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отправка на согласование
// @Tags Табель
// @Description Отправка записи табеля на согласование
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/{id}/submit [put]
func (c *timesheetApiController) submit(ctx *fiber.Ctx) error {
	return c.transition(ctx, timesheethandler.Instance.Submit, "Ошибка отправки на согласование")
}

// @Summary Согласование руководителем
// @Tags Табель
// @Description Согласование записи табеля руководителем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/{id}/manager_approve [put]
func (c *timesheetApiController) managerApprove(ctx *fiber.Ctx) error {
	return c.transition(ctx, timesheethandler.Instance.ManagerApprove, "Ошибка согласования")
}

// @Summary Согласование вторым уровнем
// @Tags Табель
// @Description Согласование записи табеля вторым уровнем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/{id}/senior_approve [put]
func (c *timesheetApiController) seniorApprove(ctx *fiber.Ctx) error {
	return c.transition(ctx, timesheethandler.Instance.SeniorApprove, "Ошибка согласования")
}

// @Summary Согласование HR
// @Tags Табель
// @Description Финальное согласование записи табеля HR
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/{id}/hr_approve [put]
func (c *timesheetApiController) hrApprove(ctx *fiber.Ctx) error {
	return c.transition(ctx, timesheethandler.Instance.HrApprove, "Ошибка согласования")
}

// @Summary Отклонение
// @Tags Табель
// @Description Отклонение записи табеля с указанием причины
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Param	body body	 timesheetapimodels.RejectData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/{id}/reject [put]
func (c *timesheetApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload timesheetapimodels.RejectData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = timesheethandler.Instance.Reject(getActor(ctx), id, payload.Reason)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Возврат в черновик
// @Tags Табель
// @Description Возврат записи табеля в черновик
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/{id}/reset [put]
func (c *timesheetApiController) reset(ctx *fiber.Ctx) error {
	return c.transition(ctx, timesheethandler.Instance.ResetToDraft, "Ошибка возврата в черновик")
}

// @Summary Отправка выбранных на согласование
// @Tags Табель
// @Description Отправка выбранных записей на согласование, неподходящие пропускаются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.IDListData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/submit_selected [post]
func (c *timesheetApiController) submitSelected(ctx *fiber.Ctx) error {
	return c.transitionSelected(ctx, timesheethandler.Instance.SubmitSelected, "Ошибка отправки на согласование")
}

// @Summary Согласование выбранных руководителем
// @Tags Табель
// @Description Согласование выбранных записей руководителем, неподходящие пропускаются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.IDListData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/manager_approve_selected [post]
func (c *timesheetApiController) managerApproveSelected(ctx *fiber.Ctx) error {
	return c.transitionSelected(ctx, timesheethandler.Instance.ManagerApproveSelected, "Ошибка согласования")
}

// @Summary Согласование выбранных вторым уровнем
// @Tags Табель
// @Description Согласование выбранных записей вторым уровнем, неподходящие пропускаются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.IDListData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/senior_approve_selected [post]
func (c *timesheetApiController) seniorApproveSelected(ctx *fiber.Ctx) error {
	return c.transitionSelected(ctx, timesheethandler.Instance.SeniorApproveSelected, "Ошибка согласования")
}

// @Summary Согласование выбранных HR
// @Tags Табель
// @Description Финальное согласование выбранных записей HR, неподходящие пропускаются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.IDListData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/hr_approve_selected [post]
func (c *timesheetApiController) hrApproveSelected(ctx *fiber.Ctx) error {
	return c.transitionSelected(ctx, timesheethandler.Instance.HrApproveSelected, "Ошибка согласования")
}

// @Summary Отклонение выбранных
// @Tags Табель
// @Description Отклонение выбранных записей с указанием причины
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.RejectSelectedData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/reject_selected [post]
func (c *timesheetApiController) rejectSelected(ctx *fiber.Ctx) error {
	var payload timesheetapimodels.RejectSelectedData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	applied, err := timesheethandler.Instance.RejectSelected(getActor(ctx), payload.IDs, payload.Reason)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(applied))
}

// @Summary Возврат выбранных в черновик
// @Tags Табель
// @Description Возврат выбранных записей в черновик, неподходящие пропускаются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.IDListData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet/reset_selected [post]
func (c *timesheetApiController) resetSelected(ctx *fiber.Ctx) error {
	return c.transitionSelected(ctx, timesheethandler.Instance.ResetSelected, "Ошибка возврата в черновик")
}

func (c *timesheetApiController) transition(ctx *fiber.Ctx, apply func(actor workflow.Actor, id string) error, errMsg string) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = apply(getActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, errMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *timesheetApiController) transitionSelected(ctx *fiber.Ctx, apply func(actor workflow.Actor, ids []string) (int, error), errMsg string) error {
	var payload timesheetapimodels.IDListData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	applied, err := apply(getActor(ctx), payload.IDs)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, errMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(applied))
}
