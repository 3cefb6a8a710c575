package controller

import (
	"github.com/gofiber/fiber/v2"

	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/pkg/apperr"
	"yoloeats-be/internal/pkg/serverutils"
	"yoloeats-be/internal/service"
)

type ICheckController interface {
	RegisterRoutes(r fiber.Router)
	Check(ctx *fiber.Ctx) error
}

type checkController struct {
	safetyService service.ISafetyService
}

func NewCheckController(safetyService service.ISafetyService) ICheckController {
	return &checkController{safetyService: safetyService}
}

func (c *checkController) RegisterRoutes(r fiber.Router) {
	r.Post("/check", c.Check)
}

func (c *checkController) Check(ctx *fiber.Ctx) error {
	var req dto.CheckRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.BadRequestf("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.safetyService.Check(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success check product safety", res))
}
