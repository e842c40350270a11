package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rosterhq/roster-backend/internal/dto"
	"github.com/rosterhq/roster-backend/internal/services"
)

type AttributeHandler struct {
	attributeService *services.AttributeService
}

func NewAttributeHandler(attributeService *services.AttributeService) *AttributeHandler {
	return &AttributeHandler{attributeService: attributeService}
}

func (h *AttributeHandler) List(c *fiber.Ctx) error {
	defs, err := h.attributeService.ListAttributes()
	if err != nil {
		slog.Error("failed to list attributes", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch attributes",
		})
	}
	return c.JSON(fiber.Map{"attributes": defs})
}

func (h *AttributeHandler) Create(c *fiber.Ctx) error {
	var req dto.AttributeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	def, err := h.attributeService.CreateAttribute(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAttributeType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("failed to create attribute", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create attribute",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(def)
}

func (h *AttributeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid attribute ID",
		})
	}

	var req dto.AttributeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	def, err := h.attributeService.UpdateAttribute(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAttributeType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrAttributeNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("failed to update attribute", "attribute_id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update attribute",
		})
	}

	return c.JSON(def)
}

func (h *AttributeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid attribute ID",
		})
	}

	if err := h.attributeService.DeleteAttribute(id); err != nil {
		slog.Error("failed to delete attribute", "attribute_id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete attribute",
		})
	}

	return c.JSON(fiber.Map{"message": "Attribute deleted"})
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
