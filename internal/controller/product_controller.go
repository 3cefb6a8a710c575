package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/pkg/apperr"
	"yoloeats-be/internal/pkg/serverutils"
	"yoloeats-be/internal/service"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	GetByBarcode(ctx *fiber.Ctx) error
	GetByID(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Recommendations(ctx *fiber.Ctx) error
}

type productController struct {
	productService        service.IProductService
	recommendationService service.IRecommendationService
}

func NewProductController(
	productService service.IProductService,
	recommendationService service.IRecommendationService,
) IProductController {
	return &productController{
		productService:        productService,
		recommendationService: recommendationService,
	}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/products")
	h.Post("", c.Create)
	// Static segments before the :id wildcard.
	h.Get("search", c.Search)
	h.Get("barcode/:code", c.GetByBarcode)
	h.Get(":id", c.GetByID)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Get(":id/recommendations", c.Recommendations)
}

func (c *productController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.BadRequestf("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.productService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create product", res))
}

func (c *productController) Search(ctx *fiber.Ctx) error {
	limit, _ := strconv.ParseInt(ctx.Query("limit", "0"), 10, 64)
	skip, _ := strconv.ParseInt(ctx.Query("skip", "0"), 10, 64)

	query := dto.SearchProductsQuery{
		Name:       ctx.Query("name", ""),
		Category:   ctx.Query("category", ""),
		Brand:      ctx.Query("brand", ""),
		Label:      ctx.Query("label", ""),
		Country:    ctx.Query("country", ""),
		Nutriscore: ctx.Query("nutriscore", ""),
		Allergens:  queryMulti(ctx, "allergen"),
		Diets:      queryMulti(ctx, "diet"),
		Limit:      limit,
		Skip:       skip,
	}

	res, err := c.productService.Search(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search products", res))
}

func (c *productController) GetByBarcode(ctx *fiber.Ctx) error {
	res, err := c.productService.GetByCode(ctx.Context(), ctx.Params("code"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get product", res))
}

func (c *productController) GetByID(ctx *fiber.Ctx) error {
	res, err := c.productService.GetByID(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get product", res))
}

func (c *productController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.BadRequestf("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.productService.Update(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update product", res))
}

func (c *productController) Delete(ctx *fiber.Ctx) error {
	res, err := c.productService.Delete(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete product", res))
}

func (c *productController) Recommendations(ctx *fiber.Ctx) error {
	limit, _ := strconv.ParseUint(ctx.Query("limit", "0"), 10, 64)

	query := dto.RecommendationQuery{
		ProductId:        ctx.Params("id"),
		UserId:           ctx.Query("user_id", ""),
		ExcludeAllergens: queryMulti(ctx, "exclude_allergen"),
		ExcludeDiets:     queryMulti(ctx, "exclude_diet"),
		Limit:            limit,
	}

	res, err := c.recommendationService.Recommend(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get recommendations", res))
}

// queryMulti collects every occurrence of a repeated query parameter.
func queryMulti(ctx *fiber.Ctx, key string) []string {
	raw := ctx.Context().QueryArgs().PeekMulti(key)
	if len(raw) == 0 {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if len(v) > 0 {
			values = append(values, string(v))
		}
	}
	return values
}
