package handlers

import (
	"errors"

	"finextract/internal/repository"
	"finextract/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// respondPipelineError maps the pipeline's error taxonomy onto HTTP answers.
// Every failure is request-scoped; none of them is treated as fatal.
func respondPipelineError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	var (
		invalidDoc *service.InvalidDocumentError
		extractErr *service.ExtractionError
		validation *service.ValidationError
		persist    *repository.PersistError
	)

	switch {
	case errors.As(err, &invalidDoc):
		logger.Warn("Rejected document", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": invalidDoc.Reason,
		})
	case errors.As(err, &validation):
		logger.Warn("Validation failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validation.Error(),
		})
	case errors.As(err, &extractErr):
		logger.Error("Extraction failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "No output from LLM",
		})
	case errors.As(err, &persist):
		logger.Error("Persistence failed", zap.Error(err))
		status := fiber.StatusInternalServerError
		if persist.NotConnected {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"error": persist.Error(),
		})
	default:
		logger.Error("Unexpected error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
