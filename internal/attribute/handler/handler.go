package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/souqline/souq-admin-service/internal/apperror"
	"github.com/souqline/souq-admin-service/internal/attribute"
	"github.com/souqline/souq-admin-service/internal/attribute/dto"
	"github.com/souqline/souq-admin-service/internal/httpapi"
	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/pkg/logger"
)

type AttributeHandler struct {
	uc     attribute.UseCase
	logger logger.ZapLogger
}

func NewAttributeHandler(uc attribute.UseCase, log logger.ZapLogger) *AttributeHandler {
	return &AttributeHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *AttributeHandler) Register(router fiber.Router) {
	router.Get("/dynamic-attributes", h.List)
	router.Post("/dynamic-attributes", h.Create)
	router.Put("/dynamic-attributes/toggle-activation/:id", h.ToggleActivation)
	router.Put("/dynamic-attributes/:id", h.Update)
	router.Delete("/dynamic-attributes/:id", h.Delete)
}

func (h *AttributeHandler) List(c *fiber.Ctx) error {
	views, err := h.uc.ListAttributes(c.Context(), httpapi.Lang(c))
	if err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgSuccess, views)
}

func (h *AttributeHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateAttributeInput
	if err := c.BodyParser(&input); err != nil {
		return httpapi.Fail(c, apperror.Validation(localization.MsgInvalidInput))
	}

	attr, err := h.uc.CreateAttribute(c.Context(), &input)
	if err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgSavedSuccessfully, fiber.Map{"id": attr.ID})
}

func (h *AttributeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return httpapi.Fail(c, err)
	}

	var input dto.UpdateAttributeInput
	if err := c.BodyParser(&input); err != nil {
		return httpapi.Fail(c, apperror.Validation(localization.MsgInvalidInput))
	}
	input.ID = id

	if _, err := h.uc.UpdateAttribute(c.Context(), &input); err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgUpdatedSuccessfully, nil)
}

func (h *AttributeHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return httpapi.Fail(c, err)
	}

	if err := h.uc.DeleteAttribute(c.Context(), id); err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgDeletedSuccessfully, nil)
}

func (h *AttributeHandler) ToggleActivation(c *fiber.Ctx) error {
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

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation(localization.MsgInvalidID)
	}
	return id, nil
}
