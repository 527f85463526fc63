package vertexclient

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"github.com/googleapis/gax-go/v2"

	"github.com/GregMSThompson/factcheck/internal/dto"
	"github.com/GregMSThompson/factcheck/pkg/helpers"
	"github.com/GregMSThompson/factcheck/pkg/logger"
)

type fakePredictionClient struct {
	requests []*aiplatformpb.GenerateContentRequest
	resp     *aiplatformpb.GenerateContentResponse
	err      error
	closed   bool
}

func (f *fakePredictionClient) GenerateContent(_ context.Context, req *aiplatformpb.GenerateContentRequest, _ ...gax.CallOption) (*aiplatformpb.GenerateContentResponse, error) {
	f.requests = append(f.requests, req)
	return f.resp, f.err
}

func (f *fakePredictionClient) Close() error {
	f.closed = true
	return nil
}

func webChunk(uri, title string) *aiplatformpb.GroundingChunk {
	return &aiplatformpb.GroundingChunk{
		ChunkType: &aiplatformpb.GroundingChunk_Web_{
			Web: &aiplatformpb.GroundingChunk_Web{
				Uri:   helpers.Ptr(uri),
				Title: helpers.Ptr(title),
			},
		},
	}
}

func testAdapter(client predictionClient, projectID, region string) *Adapter {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	return newAdapter(client, log, projectID, region, "gemini-2.5-flash")
}

func TestGenerateContentBuildsSearchGroundedJSONRequest(t *testing.T) {
	client := &fakePredictionClient{resp: &aiplatformpb.GenerateContentResponse{}}
	a := testAdapter(client, "", "")

	_, err := a.GenerateContent(context.Background(), dto.VertexGenerateRequest{
		UserMessage:      "check this",
		GoogleSearch:     true,
		ResponseMIMEType: "application/json",
		ResponseSchema: &dto.VertexSchema{
			Type: "object",
			Properties: map[string]*dto.VertexSchema{
				"rating": {Type: "string", Enum: []string{"True", "False"}},
			},
			Required: []string{"rating"},
		},
	})
	if err != nil {
		t.Fatalf("GenerateContent error: %v", err)
	}
	if len(client.requests) != 1 {
		t.Fatalf("expected one outbound call, got %d", len(client.requests))
	}

	req := client.requests[0]
	if req.GetModel() != "publishers/google/models/gemini-2.5-flash" {
		t.Fatalf("model mismatch: %q", req.GetModel())
	}
	if len(req.GetTools()) != 1 || req.GetTools()[0].GetGoogleSearch() == nil {
		t.Fatalf("expected google search tool, got %+v", req.GetTools())
	}
	cfg := req.GetGenerationConfig()
	if cfg.GetResponseMimeType() != "application/json" {
		t.Fatalf("mime type mismatch: %q", cfg.GetResponseMimeType())
	}
	if cfg.Temperature != nil {
		t.Fatalf("temperature should be left to the model default")
	}
	schema := cfg.GetResponseSchema()
	if schema.GetType() != aiplatformpb.Type_OBJECT {
		t.Fatalf("schema type mismatch: %v", schema.GetType())
	}
	rating := schema.GetProperties()["rating"]
	if rating.GetType() != aiplatformpb.Type_STRING || len(rating.GetEnum()) != 2 {
		t.Fatalf("rating schema mismatch: %+v", rating)
	}
	if got := req.GetContents()[0].GetParts()[0].GetText(); got != "check this" {
		t.Fatalf("prompt mismatch: %q", got)
	}
}

func TestGenerateContentUsesProjectResourceWhenConfigured(t *testing.T) {
	client := &fakePredictionClient{resp: &aiplatformpb.GenerateContentResponse{}}
	a := testAdapter(client, "proj", "us-central1")

	if _, err := a.GenerateContent(context.Background(), dto.VertexGenerateRequest{UserMessage: "x"}); err != nil {
		t.Fatalf("GenerateContent error: %v", err)
	}

	want := "projects/proj/locations/us-central1/publishers/google/models/gemini-2.5-flash"
	if got := client.requests[0].GetModel(); got != want {
		t.Fatalf("model mismatch: got %q want %q", got, want)
	}
	if len(client.requests[0].GetTools()) != 0 {
		t.Fatalf("search tool should be off unless requested")
	}
}

func TestGenerateContentParsesTextAndGrounding(t *testing.T) {
	client := &fakePredictionClient{
		resp: &aiplatformpb.GenerateContentResponse{
			Candidates: []*aiplatformpb.Candidate{
				{
					Content: &aiplatformpb.Content{
						Parts: []*aiplatformpb.Part{textPart(`{"rating":`), textPart(`"True"}`)},
					},
					GroundingMetadata: &aiplatformpb.GroundingMetadata{
						GroundingChunks: []*aiplatformpb.GroundingChunk{
							webChunk("https://a.example", "A"),
							{},
							webChunk("", "B"),
						},
					},
				},
				{
					Content: &aiplatformpb.Content{Parts: []*aiplatformpb.Part{textPart("ignored")}},
				},
			},
		},
	}
	a := testAdapter(client, "", "")

	resp, err := a.GenerateContent(context.Background(), dto.VertexGenerateRequest{UserMessage: "x"})
	if err != nil {
		t.Fatalf("GenerateContent error: %v", err)
	}
	if resp.Text != `{"rating":"True"}` {
		t.Fatalf("text mismatch: %q", resp.Text)
	}
	if len(resp.GroundingChunks) != 3 {
		t.Fatalf("expected raw chunks to be passed through, got %d", len(resp.GroundingChunks))
	}
	if resp.GroundingChunks[0].Web == nil || resp.GroundingChunks[0].Web.URI != "https://a.example" || resp.GroundingChunks[0].Web.Title != "A" {
		t.Fatalf("first chunk mismatch: %+v", resp.GroundingChunks[0].Web)
	}
	if resp.GroundingChunks[1].Web != nil {
		t.Fatalf("non-web chunk should have nil web source")
	}
}

func TestGenerateContentPropagatesProviderError(t *testing.T) {
	client := &fakePredictionClient{err: errors.New("unavailable")}
	a := testAdapter(client, "", "")

	_, err := a.GenerateContent(context.Background(), dto.VertexGenerateRequest{UserMessage: "x"})
	if err == nil || err.Error() != "unavailable" {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestGenerateContentRejectsEmptyRequest(t *testing.T) {
	client := &fakePredictionClient{}
	a := testAdapter(client, "", "")

	if _, err := a.GenerateContent(context.Background(), dto.VertexGenerateRequest{}); err == nil {
		t.Fatalf("expected error for empty request")
	}
	if len(client.requests) != 0 {
		t.Fatalf("no call expected for empty request")
	}
}

func TestEndpoint(t *testing.T) {
	if got := endpoint("", "us-central1"); got != globalEndpoint {
		t.Fatalf("expected global endpoint without project, got %q", got)
	}
	if got := endpoint("proj", "europe-west4"); got != "europe-west4-aiplatform.googleapis.com:443" {
		t.Fatalf("regional endpoint mismatch: %q", got)
	}
}

func TestClose(t *testing.T) {
	client := &fakePredictionClient{}
	if err := testAdapter(client, "", "").Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if !client.closed {
		t.Fatalf("expected underlying client to be closed")
	}
}
