package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/modules/dashboard/services"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/shared/middleware"
)

type ExportHandler struct {
	exportService *services.ExportService
}

func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportTable godoc
// @Summary Export a dashboard table
// @Description Download the cohorts, funnel or features table as xlsx, pdf or csv
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce application/pdf
// @Produce text/csv
// @Param table path string true "Table name" Enums(cohorts, funnel, features)
// @Param format query string false "File format" Enums(excel, xlsx, pdf, csv) default(excel)
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/export/{table} [get]
func (h *ExportHandler) ExportTable(c *fiber.Ctx) error {
	table := utils.CopyString(c.Params("table"))

	format, err := export.ParseFormat(c.Query("format", string(export.FormatExcel)))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid format, use excel, pdf or csv",
		})
	}

	file, err := h.exportService.Export(table, format)
	if err != nil {
		if errors.Is(err, services.ErrUnknownTable) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":  fmt.Sprintf("Unknown table %q", table),
				"tables": h.exportService.Tables(),
			})
		}

		log.Error().
			Err(err).
			Str("table", table).
			Str("format", string(format)).
			Str("request_id", middleware.GetRequestID(c)).
			Msg("Export failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Export failed",
		})
	}

	c.Attachment(file.FileName)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Body)
}
