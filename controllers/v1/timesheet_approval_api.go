package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-timesheet-backend/controllers"
	approvalhandler "hr-timesheet-backend/lib/timesheet/approval"
	"hr-timesheet-backend/lib/timesheet/workflow"
	"hr-timesheet-backend/middleware"
	apimodels "hr-timesheet-backend/models/api"
	timesheetapimodels "hr-timesheet-backend/models/api/timesheet"
)

type timesheetApprovalApiController struct {
	controllers.BaseAPIController
}

func InitTimesheetApprovalApiRouters(app *fiber.App) {
	controller := timesheetApprovalApiController{}
	app.Route("timesheet-approvals", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Post("submit_selected", controller.submitSelected)
		router.Post("manager_approve_selected", controller.managerApproveSelected)
		router.Post("senior_approve_selected", controller.seniorApproveSelected)
		router.Post("hr_approve_selected", controller.hrApproveSelected)
		router.Post("reject_selected", controller.rejectSelected)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Put("signature", controller.setSignature)
			idRoute.Put("submit", controller.submit)
			idRoute.Put("manager_approve", controller.managerApprove)
			idRoute.Put("senior_approve", controller.seniorApprove)
			idRoute.Put("hr_approve", controller.hrApprove)
			idRoute.Put("reject", controller.reject)
			idRoute.Put("reset", controller.reset)
		})
	})
}

// @Summary Создание заявки на согласование
// @Tags Согласование табеля
// @Description Создание заявки на согласование из выбранных записей табеля
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.ApprovalCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.CreateResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet-approvals [post]
func (c *timesheetApprovalApiController) create(ctx *fiber.Ctx) error {
	var payload timesheetapimodels.ApprovalCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := approvalhandler.Instance.CreateFromSelection(getActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки на согласование")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение по ИД
// @Tags Согласование табеля
// @Description Получение заявки на согласование по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.ApprovalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet-approvals/{id} [get]
func (c *timesheetApprovalApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	resp, err := approvalhandler.Instance.Get(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список заявок
// @Tags Согласование табеля
// @Description Список заявок на согласование с фильтром
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.ApprovalFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]timesheetapimodels.ApprovalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet-approvals/list [post]
func (c *timesheetApprovalApiController) list(ctx *fiber.Ctx) error {
	var payload timesheetapimodels.ApprovalFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	list, rowCount, err := approvalhandler.Instance.List(spaceID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Удаление заявки
// @Tags Согласование табеля
// @Description Удаление черновика заявки, записи табеля освобождаются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet-approvals/{id} [delete]
func (c *timesheetApprovalApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = approvalhandler.Instance.Delete(getActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Подпись заявки
// @Tags Согласование табеля
// @Description Сохранение подписи участника согласования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Param	body body	 timesheetapimodels.SignatureData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet-approvals/{id}/signature [put]
func (c *timesheetApprovalApiController) setSignature(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload timesheetapimodels.SignatureData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = approvalhandler.Instance.SetSignature(spaceID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения подписи")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отправка на согласование
// @Tags Согласование табеля
// @Description Отправка заявки на согласование
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet-approvals/{id}/submit [put]
func (c *timesheetApprovalApiController) submit(ctx *fiber.Ctx) error {
	return c.transition(ctx, approvalhandler.Instance.Submit, "Ошибка отправки на согласование")
}

// @Summary Согласование руководителем
// @Tags Согласование табеля
// @Description Согласование заявки руководителем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet-approvals/{id}/manager_approve [put]
func (c *timesheetApprovalApiController) managerApprove(ctx *fiber.Ctx) error {
	return c.transition(ctx, approvalhandler.Instance.ManagerApprove, "Ошибка согласования")
}

// @Summary Согласование вторым уровнем
// @Tags Согласование табеля
// @Description Согласование заявки вторым уровнем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet-approvals/{id}/senior_approve [put]
func (c *timesheetApprovalApiController) seniorApprove(ctx *fiber.Ctx) error {
	return c.transition(ctx, approvalhandler.Instance.SeniorApprove, "Ошибка согласования")
}

// @Summary Согласование HR
// @Tags Согласование табеля
// @Description Финальное согласование заявки HR
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet-approvals/{id}/hr_approve [put]
func (c *timesheetApprovalApiController) hrApprove(ctx *fiber.Ctx) error {
	return c.transition(ctx, approvalhandler.Instance.HrApprove, "Ошибка согласования")
}

// @Summary Отклонение заявки
// @Tags Согласование табеля
// @Description Отклонение заявки с указанием причины
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Param	body body	 timesheetapimodels.RejectData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet-approvals/{id}/reject [put]
func (c *timesheetApprovalApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload timesheetapimodels.RejectData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = approvalhandler.Instance.Reject(getActor(ctx), id, payload.Reason)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Возврат в черновик
// @Tags Согласование табеля
// @Description Возврат заявки и ее записей в черновик
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet-approvals/{id}/reset [put]
func (c *timesheetApprovalApiController) reset(ctx *fiber.Ctx) error {
	return c.transition(ctx, approvalhandler.Instance.ResetToDraft, "Ошибка возврата в черновик")
}

// @Summary Отправка выбранных на согласование
// @Tags Согласование табеля
// @Description Отправка выбранных заявок на согласование, неподходящие пропускаются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.IDListData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet-approvals/submit_selected [post]
func (c *timesheetApprovalApiController) submitSelected(ctx *fiber.Ctx) error {
	return c.transitionSelected(ctx, approvalhandler.Instance.SubmitSelected, "Ошибка отправки на согласование")
}

// @Summary Согласование выбранных руководителем
// @Tags Согласование табеля
// @Description Согласование выбранных заявок руководителем, неподходящие пропускаются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.IDListData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet-approvals/manager_approve_selected [post]
func (c *timesheetApprovalApiController) managerApproveSelected(ctx *fiber.Ctx) error {
	return c.transitionSelected(ctx, approvalhandler.Instance.ManagerApproveSelected, "Ошибка согласования")
}

// @Summary Согласование выбранных вторым уровнем
// @Tags Согласование табеля
// @Description Согласование выбранных заявок вторым уровнем, неподходящие пропускаются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.IDListData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet-approvals/senior_approve_selected [post]
func (c *timesheetApprovalApiController) seniorApproveSelected(ctx *fiber.Ctx) error {
	return c.transitionSelected(ctx, approvalhandler.Instance.SeniorApproveSelected, "Ошибка согласования")
}

// @Summary Согласование выбранных HR
// @Tags Согласование табеля
// @Description Финальное согласование выбранных заявок HR, неподходящие пропускаются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.IDListData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet-approvals/hr_approve_selected [post]
func (c *timesheetApprovalApiController) hrApproveSelected(ctx *fiber.Ctx) error {
	return c.transitionSelected(ctx, approvalhandler.Instance.HrApproveSelected, "Ошибка согласования")
}

// @Summary Отклонение выбранных
// @Tags Согласование табеля
// @Description Отклонение выбранных заявок с указанием причины
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.RejectSelectedData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/timesheet-approvals/reject_selected [post]
func (c *timesheetApprovalApiController) rejectSelected(ctx *fiber.Ctx) error {
	var payload timesheetapimodels.RejectSelectedData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	applied, err := approvalhandler.Instance.RejectSelected(getActor(ctx), payload.IDs, payload.Reason)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(applied))
}

func (c *timesheetApprovalApiController) transition(ctx *fiber.Ctx, apply func(actor workflow.Actor, id string) error, errMsg string) error {
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

func (c *timesheetApprovalApiController) transitionSelected(ctx *fiber.Ctx, apply func(actor workflow.Actor, ids []string) (int, error), errMsg string) error {
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
