package service

import (
	"context"

	"finextract/internal/dto"
	"finextract/internal/models"
	"finextract/internal/repository"

	"go.uber.org/zap"
)

// DocumentService runs the extraction pipeline: rasterize, one model round
// trip, normalize, validate. Persistence is a separate call so a failed save
// never forces re-extraction.
type DocumentService struct {
	rasterizer *Rasterizer
	llm        *LLMService
	validator  *Validator
	cache      *ExtractionCache
	docRepo    *repository.DocumentRepository
	logger     *zap.Logger
}

func NewDocumentService(
	rasterizer *Rasterizer,
	llm *LLMService,
	validator *Validator,
	cache *ExtractionCache,
	docRepo *repository.DocumentRepository,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		rasterizer: rasterizer,
		llm:        llm,
		validator:  validator,
		cache:      cache,
		docRepo:    docRepo,
		logger:     logger,
	}
}

// ExtractFromPDF runs the pipeline on an uploaded PDF. Results are memoized
// by (content digest, model id): re-running the same document against the
// same model returns the cached record without another model call. force
// drops every cached result for the document first.
// Multi-page documents extract page 1 only.
func (s *DocumentService) ExtractFromPDF(ctx context.Context, data []byte, filename, modelID string, force bool) (*models.ExtractedRecord, error) {
	if modelID == "" {
		modelID = s.llm.DefaultModel()
	}

	digest := CacheKey(data)
	if force {
		s.cache.Invalidate(digest)
	}
	if record, ok := s.cache.Get(digest, modelID); ok {
		s.logger.Info("Extraction served from cache",
			zap.String("filename", filename),
			zap.String("model", modelID),
		)
		return record, nil
	}

	images, err := s.rasterizer.Rasterize(data, KindPDF)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Converted PDF",
		zap.String("filename", filename),
		zap.Int("pages", len(images)),
	)

	raw, err := s.llm.Extract(ctx, images[0], modelID)
	if err != nil {
		return nil, err
	}

	record, err := s.validator.Validate(NormalizeOutput(raw))
	if err != nil {
		return nil, err
	}

	s.cache.Put(digest, modelID, record)
	s.logger.Info("Document extracted",
		zap.String("filename", filename),
		zap.String("model", modelID),
		zap.String("document_type", string(record.DocumentType)),
	)
	return record, nil
}

// Save persists a validated record. The record survives a failed save and
// may be retried as-is.
func (s *DocumentService) Save(ctx context.Context, record *models.ExtractedRecord, filename string) (repository.SaveResult, error) {
	return s.docRepo.Save(ctx, record, filename)
}

// RecentDocuments returns the newest persisted rows of both tables.
func (s *DocumentService) RecentDocuments(ctx context.Context, limit int) (*dto.RecentDocumentsResponse, error) {
	invoices, statements, err := s.docRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &dto.RecentDocumentsResponse{
		Invoices:   invoices,
		Statements: statements,
	}, nil
}
