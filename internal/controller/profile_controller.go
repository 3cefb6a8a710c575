package controller

import (
	"github.com/gofiber/fiber/v2"

	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/pkg/apperr"
	"yoloeats-be/internal/pkg/serverutils"
	"yoloeats-be/internal/service"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	ListAllergens(ctx *fiber.Ctx) error
}

type profileController struct {
	profileService service.IProfileService
}

func NewProfileController(profileService service.IProfileService) IProfileController {
	return &profileController{profileService: profileService}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	users := r.Group("/users")
	users.Get(":userId/profile", c.GetProfile)
	users.Put(":userId/profile", c.UpdateProfile)

	r.Get("/allergens", c.ListAllergens)
}

func (c *profileController) GetProfile(ctx *fiber.Ctx) error {
	res, err := c.profileService.GetProfile(ctx.Context(), ctx.Params("userId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

func (c *profileController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.BadRequestf("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.profileService.UpsertProfile(ctx.Context(), ctx.Params("userId"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update profile", res))
}

func (c *profileController) ListAllergens(ctx *fiber.Ctx) error {
	res, err := c.profileService.ListAllergens(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get allergens", res))
}
