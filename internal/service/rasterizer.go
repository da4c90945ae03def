package service

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

// SourceKind names the two accepted upload formats.
type SourceKind string

const (
	KindPDF   SourceKind = "pdf"
	KindImage SourceKind = "image"
)

// Rasterizer converts uploaded document bytes into page images. It holds no
// state between calls; callers retain the source bytes if they may need to
// re-rasterize.
type Rasterizer struct {
	logger *zap.Logger
}

func NewRasterizer(logger *zap.Logger) *Rasterizer {
	return &Rasterizer{logger: logger}
}

// Rasterize renders every page of a PDF to an RGB raster at the document's
// native resolution, or decodes a single-frame image directly.
func (r *Rasterizer) Rasterize(data []byte, kind SourceKind) ([]image.Image, error) {
	switch kind {
	case KindPDF:
		return r.rasterizePDF(data)
	case KindImage:
		img, err := imaging.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, &InvalidDocumentError{Reason: "unrecognized image format", Err: err}
		}
		return []image.Image{img}, nil
	default:
		return nil, &InvalidDocumentError{Reason: "unsupported source kind " + string(kind)}
	}
}

func (r *Rasterizer) rasterizePDF(data []byte) ([]image.Image, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		r.logger.Error("Invalid PDF file", zap.Error(err))
		return nil, &InvalidDocumentError{Reason: "invalid PDF file", Err: err}
	}
	defer doc.Close()

	pages := doc.NumPage()
	if pages == 0 {
		return nil, &InvalidDocumentError{Reason: "PDF document is empty"}
	}

	images := make([]image.Image, 0, pages)
	for i := 0; i < pages; i++ {
		img, err := doc.Image(i)
		if err != nil {
			r.logger.Error("Failed to render PDF page",
				zap.Int("page", i+1),
				zap.Error(err),
			)
			return nil, &InvalidDocumentError{Reason: "error processing PDF file", Err: err}
		}
		images = append(images, img)
	}

	r.logger.Info("Rasterized PDF",
		zap.Int("pages", len(images)),
	)
	return images, nil
}
