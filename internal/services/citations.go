package services

import (
	"context"
	"errors"
	"strings"

	"github.com/GregMSThompson/factcheck/internal/dto"
	"github.com/GregMSThompson/factcheck/internal/models"
	"github.com/GregMSThompson/factcheck/pkg/logger"
)

var (
	errNoWebSource  = errors.New("grounding chunk has no web source")
	errMissingURI   = errors.New("grounding chunk has no uri")
	errMissingTitle = errors.New("grounding chunk has no title")
)

// validateCitation turns one provider grounding chunk into a Citation, or
// reports why it cannot be used.
func validateCitation(chunk dto.VertexGroundingChunk) (models.Citation, error) {
	if chunk.Web == nil {
		return models.Citation{}, errNoWebSource
	}
	uri := strings.TrimSpace(chunk.Web.URI)
	if uri == "" {
		return models.Citation{}, errMissingURI
	}
	title := strings.TrimSpace(chunk.Web.Title)
	if title == "" {
		return models.Citation{}, errMissingTitle
	}
	return models.Citation{URI: uri, Title: title}, nil
}

// collectCitations keeps the usable chunks in provider order. The result is
// never nil so an ungrounded answer serialises as an empty list.
func collectCitations(ctx context.Context, chunks []dto.VertexGroundingChunk) []models.Citation {
	out := make([]models.Citation, 0, len(chunks))
	for i, chunk := range chunks {
		citation, err := validateCitation(chunk)
		if err != nil {
			if logger.IsDebugEnabled(ctx) {
				logger.FromContext(ctx).Debug("dropping grounding chunk", "index", i, "reason", err.Error())
			}
			continue
		}
		out = append(out, citation)
	}
	return out
}
