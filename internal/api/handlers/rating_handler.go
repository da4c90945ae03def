package handlers

import (
	"strconv"
	"strings"

	"finextract/internal/dto"
	"finextract/internal/models"
	"finextract/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RatingHandler struct {
	ratingRepo *repository.RatingRepository
	logger     *zap.Logger
}

func NewRatingHandler(ratingRepo *repository.RatingRepository, logger *zap.Logger) *RatingHandler {
	return &RatingHandler{
		ratingRepo: ratingRepo,
		logger:     logger,
	}
}

// Submit records one extraction quality rating. A zero rating means the user
// never picked one and is rejected before it can reach the store.
func (h *RatingHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Rating < 1 || req.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please select a rating before submitting.",
		})
	}
	if req.Filename == "" || req.DocumentType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Filename and document type are required",
		})
	}
	if !models.DocumentType(req.DocumentType).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document type",
		})
	}

	rating := &models.RatingRecord{
		Filename:     req.Filename,
		DocumentType: req.DocumentType,
		Model:        req.Model,
		Rating:       req.Rating,
		DocumentID:   req.DocumentID,
	}
	if comment := strings.TrimSpace(req.Comment); comment != "" {
		comment = strings.ToValidUTF8(comment, "")
		rating.Comment = &comment
	}

	id, err := h.ratingRepo.Save(c.Context(), rating)
	if err != nil {
		return respondPipelineError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SubmitRatingResponse{RecordID: id})
}

// List returns submitted ratings, optionally filtered by document_id or
// document_type.
func (h *RatingHandler) List(c *fiber.Ctx) error {
	var filter repository.RatingFilter

	if raw := c.Query("document_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid document_id",
			})
		}
		filter.DocumentID = &id
	}
	if docType := c.Query("document_type"); docType != "" {
		if !models.DocumentType(docType).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid document type",
			})
		}
		filter.DocumentType = docType
	}

	ratings, err := h.ratingRepo.List(c.Context(), filter)
	if err != nil {
		return respondPipelineError(c, h.logger, err)
	}
	if ratings == nil {
		ratings = []*models.RatingRecord{}
	}
	return c.JSON(ratings)
}
