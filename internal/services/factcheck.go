package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GregMSThompson/factcheck/internal/dto"
	"github.com/GregMSThompson/factcheck/internal/errs"
	"github.com/GregMSThompson/factcheck/internal/models"
	"github.com/GregMSThompson/factcheck/pkg/helpers"
	"github.com/GregMSThompson/factcheck/pkg/logger"
)

type vertexClient interface {
	GenerateContent(ctx context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error)
}

type outcomeRecorder interface {
	ObserveOutcome(outcome string)
	ObserveProviderCall(d time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveOutcome(string)             {}
func (noopRecorder) ObserveProviderCall(time.Duration) {}

type factCheckService struct {
	vertex   vertexClient
	apiKey   string
	model    string
	metrics  outcomeRecorder
	clockNow func() time.Time
	newID    func() string
}

// NewFactCheckService builds the query client. The credential is checked on
// every call so a missing key surfaces to the user instead of failing startup.
func NewFactCheckService(vertex vertexClient, apiKey, model string, metrics outcomeRecorder) *factCheckService {
	if metrics == nil {
		metrics = noopRecorder{}
	}
	return &factCheckService{
		vertex:   vertex,
		apiKey:   apiKey,
		model:    model,
		metrics:  metrics,
		clockNow: time.Now,
		newID:    uuid.NewString,
	}
}

func (s *factCheckService) FactCheck(ctx context.Context, claim string) (result models.FactCheckResult, err error) {
	log, ctx := logger.With(ctx, "submission_id", s.newID())

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("fact-check panicked", "panic", rec)
			result, err = models.FactCheckResult{}, errs.NewUnknownError()
		}
		s.metrics.ObserveOutcome(errs.Code(err))
	}()

	if strings.TrimSpace(claim) == "" {
		return models.FactCheckResult{}, errs.NewValidationError("claim is required")
	}
	if s.apiKey == "" {
		log.Error("fact-check credential not set")
		return models.FactCheckResult{}, errs.NewConfigurationError()
	}

	start := s.clockNow()
	resp, err := s.vertex.GenerateContent(ctx, dto.VertexGenerateRequest{
		Model:            s.model,
		UserMessage:      buildPrompt(claim),
		GoogleSearch:     true,
		ResponseMIMEType: "application/json",
		ResponseSchema:   analysisSchema(),
	})
	s.metrics.ObserveProviderCall(s.clockNow().Sub(start))
	if err != nil {
		log.Error("provider call failed", "error", err)
		return models.FactCheckResult{}, errs.NewProviderError(err)
	}

	parsed, err := parseAnalysis(resp.Text)
	if err != nil {
		log.Warn("provider output rejected", "error", errors.Unwrap(err), "text_len", len(resp.Text))
		return models.FactCheckResult{}, err
	}

	rating, known := models.ParseRating(parsed.Rating)
	if !known {
		log.Warn("provider returned unrecognized rating", "rating", parsed.Rating)
	}

	result = models.FactCheckResult{
		Rating:        rating,
		Summary:       parsed.Summary,
		Justification: parsed.Justification,
		Sources:       collectCitations(ctx, resp.GroundingChunks),
	}
	log.Info("fact-check completed", "rating", string(rating), "sources", len(result.Sources))
	return result, nil
}

type analysis struct {
	Rating        string
	Summary       string
	Justification string
}

type rawAnalysis struct {
	Rating        *string `json:"rating"`
	Summary       *string `json:"summary"`
	Justification *string `json:"justification"`
}

var errMissingField = errors.New("required field missing from model output")

func parseAnalysis(text string) (analysis, error) {
	var raw rawAnalysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		return analysis{}, errs.NewParseError(err)
	}
	if raw.Rating == nil || raw.Summary == nil || raw.Justification == nil {
		return analysis{}, errs.NewParseError(errMissingField)
	}
	if strings.TrimSpace(*raw.Rating) == "" {
		return analysis{}, errs.NewParseError(errMissingField)
	}

	return analysis{
		Rating:        helpers.Value(raw.Rating),
		Summary:       helpers.Value(raw.Summary),
		Justification: helpers.Value(raw.Justification),
	}, nil
}

func buildPrompt(claim string) string {
	return "As a professional fact-checker, analyze the following claim or the content at the provided URL " +
		"and return a JSON object with your findings. " +
		"Determine its veracity by cross-referencing reliable, neutral and diverse sources from the web.\n\n" +
		"Claim/URL to verify: \"" + claim + "\""
}

func analysisSchema() *dto.VertexSchema {
	return &dto.VertexSchema{
		Type: "object",
		Properties: map[string]*dto.VertexSchema{
			"rating": {
				Type: "string",
				Enum: models.RatingValues(),
				Description: `Your final rating of the claim. Must be one of: "True", "False", "Misleading", ` +
					`"Partially True", or "Unverifiable".`,
			},
			"summary": {
				Type:        "string",
				Description: "A clear, concise summary of your findings.",
			},
			"justification": {
				Type:        "string",
				Description: "A brief justification for your rating based on the evidence found.",
			},
		},
		Required: []string{"rating", "summary", "justification"},
	}
}
