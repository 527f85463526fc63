package dto

type VertexGenerateRequest struct {
	Model            string
	UserMessage      string
	GoogleSearch     bool
	ResponseMIMEType string
	ResponseSchema   *VertexSchema
}

type VertexGenerateResponse struct {
	Text            string
	GroundingChunks []VertexGroundingChunk
}

// VertexGroundingChunk is one candidate citation as reported by the provider.
// Web is nil for chunks that do not come from a web search.
type VertexGroundingChunk struct {
	Web *VertexWebSource
}

type VertexWebSource struct {
	URI   string
	Title string
}

type VertexSchema struct {
	Type        string
	Description string
	Enum        []string
	Properties  map[string]*VertexSchema
	Required    []string
}
