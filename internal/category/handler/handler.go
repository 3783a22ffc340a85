package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/souqline/souq-admin-service/internal/apperror"
	"github.com/souqline/souq-admin-service/internal/category"
	"github.com/souqline/souq-admin-service/internal/category/dto"
	"github.com/souqline/souq-admin-service/internal/httpapi"
	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/pkg/logger"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) Register(router fiber.Router) {
	router.Get("/categories", h.GetForest)
	router.Get("/categories/tree/:id", h.GetTree)
	router.Get("/categories/attributes/:id", h.GetAttributes)
	router.Post("/categories", h.Create)
	router.Put("/categories/toggle-activation/:id", h.ToggleActivation)
	router.Put("/categories/attributes/:categoryId/:attributeId", h.ToggleAttributeLink)
	router.Put("/categories/:id", h.Update)
	router.Delete("/categories/:id", h.Delete)
}

func (h *CategoryHandler) GetForest(c *fiber.Ctx) error {
	forest, err := h.uc.GetCategoryForest(c.Context(), httpapi.Lang(c))
	if err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgSuccess, forest)
}

func (h *CategoryHandler) GetTree(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return httpapi.Fail(c, err)
	}

	node, err := h.uc.GetCategoryTree(c.Context(), id, httpapi.Lang(c))
	if err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgSuccess, node)
}

func (h *CategoryHandler) GetAttributes(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return httpapi.Fail(c, err)
	}

	selection, err := h.uc.GetCategoryAttributes(c.Context(), id, httpapi.Lang(c))
	if err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgSuccess, selection)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateCategoryInput
	if err := c.BodyParser(&input); err != nil {
		return httpapi.Fail(c, apperror.Validation(localization.MsgInvalidInput))
	}

	cat, err := h.uc.CreateCategory(c.Context(), &input)
	if err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgSavedSuccessfully, fiber.Map{"id": cat.ID})
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return httpapi.Fail(c, err)
	}

	var input dto.UpdateCategoryInput
	if err := c.BodyParser(&input); err != nil {
		return httpapi.Fail(c, apperror.Validation(localization.MsgInvalidInput))
	}
	input.ID = id

	if _, err := h.uc.UpdateCategory(c.Context(), &input); err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgUpdatedSuccessfully, nil)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return httpapi.Fail(c, err)
	}

	if err := h.uc.DeleteCategory(c.Context(), id); err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgDeletedSuccessfully, nil)
}

func (h *CategoryHandler) ToggleActivation(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return httpapi.Fail(c, err)
	}

	msg, err := h.uc.ToggleActivation(c.Context(), id)
	if err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, msg, nil)
}

func (h *CategoryHandler) ToggleAttributeLink(c *fiber.Ctx) error {
	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		return httpapi.Fail(c, err)
	}
	attributeID, err := paramID(c, "attributeId")
	if err != nil {
		return httpapi.Fail(c, err)
	}

	msg, err := h.uc.ToggleAttributeLink(c.Context(), categoryID, attributeID)
	if err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, msg, nil)
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation(localization.MsgInvalidID)
	}
	return id, nil
}
