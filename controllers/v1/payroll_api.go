package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-timesheet-backend/controllers"
	payrollhandler "hr-timesheet-backend/lib/timesheet/payroll"
	"hr-timesheet-backend/middleware"
	apimodels "hr-timesheet-backend/models/api"
	timesheetapimodels "hr-timesheet-backend/models/api/timesheet"
)

type payrollApiController struct {
	controllers.BaseAPIController
}

func InitPayrollApiRouters(app *fiber.App) {
	controller := payrollApiController{}
	app.Route("payroll", func(router fiber.Router) {
		router.Use(middleware.SpaceAdminRequired())
		router.Post("summary", controller.summary)
		router.Post("generate", controller.generate)
		router.Post("batches/list", controller.listBatches)
		router.Get("batches/:id", controller.getBatch)
	})
}

// @Summary Сводка для передачи в расчет зарплаты
// @Tags Зарплата
// @Description Сводка по выбранным заявкам перед формированием пакета
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.IDListData	true	"request body"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.PayrollSummaryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/payroll/summary [post]
func (c *payrollApiController) summary(ctx *fiber.Ctx) error {
	var payload timesheetapimodels.IDListData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	resp, err := payrollhandler.Instance.Summary(spaceID, payload.IDs)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сводки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Формирование пакета расчетных листов
// @Tags Зарплата
// @Description Передача согласованных заявок в расчет зарплаты
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.PayrollGenerateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.BatchView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/payroll/generate [post]
func (c *payrollApiController) generate(ctx *fiber.Ctx) error {
	var payload timesheetapimodels.PayrollGenerateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	resp, err := payrollhandler.Instance.GenerateBatch(spaceID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования пакета расчетных листов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список пакетов
// @Tags Зарплата
// @Description Список пакетов расчетных листов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]timesheetapimodels.BatchView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/payroll/batches/list [post]
func (c *payrollApiController) listBatches(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	list, rowCount, err := payrollhandler.Instance.ListBatches(spaceID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка пакетов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Получение пакета по ИД
// @Tags Зарплата
// @Description Пакет расчетных листов с листами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.BatchView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/payroll/batches/{id} [get]
func (c *payrollApiController) getBatch(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	resp, err := payrollhandler.Instance.GetBatch(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения пакета")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
