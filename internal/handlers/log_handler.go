package handlers

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rosterhq/roster-backend/internal/dto"
	"github.com/rosterhq/roster-backend/internal/models"
	"gorm.io/gorm"
)

// LogHandler serves the console's Logs view from the system_logs sink.
type LogHandler struct {
	db *gorm.DB
}

func NewLogHandler(db *gorm.DB) *LogHandler {
	return &LogHandler{db: db}
}

func (h *LogHandler) List(c *fiber.Ctx) error {
	level := c.Query("level", "")
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	if limit > 200 {
		limit = 200
	}

	query := h.db.Model(&models.SystemLog{})
	if level != "" {
		query = query.Where("level = ?", level)
	}

	var logs []models.SystemLog
	if err := query.Order("timestamp DESC").Limit(limit).Find(&logs).Error; err != nil {
		slog.Error("failed to fetch system logs", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch logs",
		})
	}

	return c.JSON(fiber.Map{"logs": logs, "limit": limit})
}
