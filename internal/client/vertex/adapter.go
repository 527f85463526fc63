package vertexclient

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	"github.com/GregMSThompson/factcheck/internal/dto"
)

const globalEndpoint = "aiplatform.googleapis.com:443"

type predictionClient interface {
	GenerateContent(ctx context.Context, req *aiplatformpb.GenerateContentRequest, opts ...gax.CallOption) (*aiplatformpb.GenerateContentResponse, error)
	Close() error
}

type Adapter struct {
	client    predictionClient
	projectID string
	region    string
	model     string
	log       *slog.Logger
}

// NewAdapter dials Vertex AI authenticating with apiKey. Without a project the
// global express endpoint is used.
func NewAdapter(ctx context.Context, log *slog.Logger, apiKey, projectID, region, model string) (*Adapter, error) {
	client, err := aiplatform.NewPredictionClient(ctx,
		option.WithEndpoint(endpoint(projectID, region)),
		option.WithAPIKey(apiKey),
	)
	if err != nil {
		return nil, err
	}

	return newAdapter(client, log, projectID, region, model), nil
}

func newAdapter(client predictionClient, log *slog.Logger, projectID, region, model string) *Adapter {
	return &Adapter{
		client:    client,
		projectID: projectID,
		region:    region,
		model:     model,
		log:       log,
	}
}

func (a *Adapter) Close() error {
	err := a.client.Close()
	if err != nil && a.log != nil {
		a.log.Error("vertex adapter close failed", "error", err)
	}
	return err
}

func (a *Adapter) GenerateContent(ctx context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error) {
	out := dto.VertexGenerateResponse{}

	modelName := req.Model
	if modelName == "" {
		modelName = a.model
	}
	if modelName == "" {
		return out, fmt.Errorf("vertex model is required")
	}
	if req.UserMessage == "" {
		return out, fmt.Errorf("vertex generate request has no content")
	}

	pbReq := &aiplatformpb.GenerateContentRequest{
		Model: a.modelResource(modelName),
		Contents: []*aiplatformpb.Content{
			{
				Role:  "user",
				Parts: []*aiplatformpb.Part{textPart(req.UserMessage)},
			},
		},
		GenerationConfig: &aiplatformpb.GenerationConfig{
			ResponseMimeType: req.ResponseMIMEType,
			ResponseSchema:   toPBSchema(req.ResponseSchema),
		},
	}
	if req.GoogleSearch {
		pbReq.Tools = []*aiplatformpb.Tool{
			{GoogleSearch: &aiplatformpb.Tool_GoogleSearch{}},
		}
	}

	resp, err := a.client.GenerateContent(ctx, pbReq)
	if err != nil {
		return out, err
	}

	out.Text, out.GroundingChunks = parseContentResponse(resp)
	return out, nil
}

func (a *Adapter) modelResource(model string) string {
	if strings.Contains(model, "/") {
		return model
	}
	if a.projectID != "" && a.region != "" {
		return fmt.Sprintf("projects/%s/locations/%s/publishers/google/models/%s", a.projectID, a.region, model)
	}
	return "publishers/google/models/" + model
}

func endpoint(projectID, region string) string {
	if projectID == "" || region == "" || region == "global" {
		return globalEndpoint
	}
	return fmt.Sprintf("%s-aiplatform.googleapis.com:443", region)
}

func textPart(text string) *aiplatformpb.Part {
	return &aiplatformpb.Part{Data: &aiplatformpb.Part_Text{Text: text}}
}

// parseContentResponse reads the first candidate only; grounding metadata is
// attached per candidate and the text answer and its sources must agree.
func parseContentResponse(resp *aiplatformpb.GenerateContentResponse) (string, []dto.VertexGroundingChunk) {
	if resp == nil || len(resp.GetCandidates()) == 0 {
		return "", nil
	}
	candidate := resp.GetCandidates()[0]

	var text strings.Builder
	for _, part := range candidate.GetContent().GetParts() {
		text.WriteString(part.GetText())
	}

	var chunks []dto.VertexGroundingChunk
	for _, chunk := range candidate.GetGroundingMetadata().GetGroundingChunks() {
		out := dto.VertexGroundingChunk{}
		if web := chunk.GetWeb(); web != nil {
			out.Web = &dto.VertexWebSource{
				URI:   web.GetUri(),
				Title: web.GetTitle(),
			}
		}
		chunks = append(chunks, out)
	}

	return text.String(), chunks
}

func toPBSchema(schema *dto.VertexSchema) *aiplatformpb.Schema {
	if schema == nil {
		return nil
	}

	out := &aiplatformpb.Schema{
		Type:        toPBType(schema.Type),
		Description: schema.Description,
		Enum:        schema.Enum,
		Required:    schema.Required,
	}

	if len(schema.Properties) > 0 {
		out.Properties = make(map[string]*aiplatformpb.Schema, len(schema.Properties))
		for key, value := range schema.Properties {
			out.Properties[key] = toPBSchema(value)
		}
	}

	return out
}

func toPBType(schemaType string) aiplatformpb.Type {
	switch schemaType {
	case "object":
		return aiplatformpb.Type_OBJECT
	case "array":
		return aiplatformpb.Type_ARRAY
	case "string":
		return aiplatformpb.Type_STRING
	case "number":
		return aiplatformpb.Type_NUMBER
	case "integer":
		return aiplatformpb.Type_INTEGER
	case "boolean":
		return aiplatformpb.Type_BOOLEAN
	default:
		return aiplatformpb.Type_TYPE_UNSPECIFIED
	}
}
