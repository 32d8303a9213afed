// Package llm wraps the embedding model used by the semantic matcher.
package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultEmbeddingModel is the Gemini embedding model used when none is
// configured. 768-dimensional, suitable for short-text semantic similarity.
const DefaultEmbeddingModel = "text-embedding-004"

// Client is an abstraction over embedding providers. Implementations must be
// safe for concurrent use: the client is created once at process startup and
// shared read-only across requests.
type Client interface {
	// EmbedTexts encodes each input text into a dense vector.
	// The result has one vector per input, in input order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client using Google's embedding models.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates an embedding client. The model name is optional;
// DefaultEmbeddingModel is used when empty.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// EmbedTexts encodes the inputs in a single batched request.
func (c *GeminiClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	em := c.client.EmbeddingModel(c.model)
	batch := em.NewBatch()
	for _, text := range texts {
		batch.AddContent(genai.Text(text))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to embed %d texts: %w", len(texts), err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(resp.Embeddings), len(texts))
	}

	vectors := make([][]float32, len(resp.Embeddings))
	for i, embedding := range resp.Embeddings {
		vectors[i] = embedding.Values
	}
	return vectors, nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
