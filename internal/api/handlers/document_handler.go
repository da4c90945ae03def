package handlers

import (
	"io"
	"strings"

	"finextract/internal/dto"
	"finextract/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	docService *service.DocumentService
	validator  *service.Validator
	logger     *zap.Logger
}

func NewDocumentHandler(docService *service.DocumentService, validator *service.Validator, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		validator:  validator,
		logger:     logger,
	}
}

// Upload accepts a single PDF, runs the extraction pipeline and returns the
// validated record as JSON. Validation failures come back as a client error
// with the reason; nothing is persisted here.
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only PDF files are allowed",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read file",
		})
	}

	h.logger.Info("Received PDF file",
		zap.String("filename", file.Filename),
		zap.Int("size", len(data)),
	)

	force := c.FormValue("force") == "true"
	record, err := h.docService.ExtractFromPDF(c.Context(), data, file.Filename, c.FormValue("model"), force)
	if err != nil {
		return respondPipelineError(c, h.logger, err)
	}

	return c.JSON(record)
}

// Save persists a previously extracted record. The payload is re-validated,
// so only records that pass the full schema ever reach storage.
func (h *DocumentHandler) Save(c *fiber.Ctx) error {
	var req dto.SaveDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Filename is required",
		})
	}
	if len(req.Record) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Record is required",
		})
	}

	record, err := h.validator.Validate(string(req.Record))
	if err != nil {
		return respondPipelineError(c, h.logger, err)
	}

	result, err := h.docService.Save(c.Context(), record, req.Filename)
	if err != nil {
		return respondPipelineError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SaveDocumentResponse{
		Table:    result.Table,
		RecordID: result.RecordID,
	})
}

// Recent lists the newest persisted documents from both tables.
func (h *DocumentHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	docs, err := h.docService.RecentDocuments(c.Context(), limit)
	if err != nil {
		return respondPipelineError(c, h.logger, err)
	}
	return c.JSON(docs)
}

// Models serves the curated extraction model catalog.
func (h *DocumentHandler) Models(c *fiber.Ctx) error {
	return c.JSON(service.ModelCatalog())
}
