// Package terms implements retrieval-augmented extraction of payment terms
// from the indexed contract corpus: embed the query, similarity-search the
// contract collection, and run the retrieved snippets through an
// extraction prompt.
package terms

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/nexgen-labs/procure-agent/agent/contract"
	promptx "github.com/nexgen-labs/procure-agent/agent/prompt"
)

const defaultTopK = 4

// Document is one retrieved contract snippet.
type Document struct {
	ID       string
	Text     string
	Score    float32
	Metadata map[string]any
}

// Embedder turns a query into a vector in the contract collection's space.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Searcher performs similarity search over the contract collection.
type Searcher interface {
	Search(ctx context.Context, vector []float32, topK int) ([]Document, error)
}

// Option customizes a Service.
type Option func(*Service)

func WithTopK(topK int) Option {
	return func(s *Service) {
		if topK > 0 {
			s.topK = topK
		}
	}
}

// Service implements contract.TermsExtractor.
type Service struct {
	embedder Embedder
	searcher Searcher
	runner   compose.Runnable[map[string]any, *schema.Message]
	topK     int
}

var _ contractx.TermsExtractor = (*Service)(nil)

func NewService(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	embedder Embedder,
	searcher Searcher,
	opts ...Option,
) (*Service, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("%w: chat model is required", contractx.ErrValidation)
	}
	if embedder == nil {
		return nil, fmt.Errorf("%w: embedder is required", contractx.ErrValidation)
	}
	if searcher == nil {
		return nil, fmt.Errorf("%w: searcher is required", contractx.ErrValidation)
	}

	prompts := promptx.LoadPromptSet()
	runner, err := compileExtractionGraph(ctx, chatModel, prompts.PaymentTerms)
	if err != nil {
		return nil, err
	}

	svc := &Service{
		embedder: embedder,
		searcher: searcher,
		runner:   runner,
		topK:     defaultTopK,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}
	return svc, nil
}

func (s *Service) ExtractPaymentTerms(ctx context.Context, query string) (string, error) {
	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return "", fmt.Errorf("%w: embed query: %v", contractx.ErrRetrieval, err)
	}

	docs, err := s.searcher.Search(ctx, vector, s.topK)
	if err != nil {
		return "", fmt.Errorf("%w: search contracts: %v", contractx.ErrRetrieval, err)
	}

	out, err := s.runner.Invoke(ctx, map[string]any{
		"query":     query,
		"documents": formatDocuments(docs),
	})
	if err != nil {
		return "", fmt.Errorf("%w: payment terms invoke: %v", contractx.ErrModelInvoke, err)
	}

	termsText := strings.TrimSpace(out.Content)
	if termsText == "" {
		return "", fmt.Errorf("%w: empty payment terms response", contractx.ErrSchemaViolation)
	}
	return termsText, nil
}

func formatDocuments(docs []Document) string {
	if len(docs) == 0 {
		return "No search results found."
	}
	lines := make([]string, 0, len(docs))
	for _, doc := range docs {
		text := strings.TrimSpace(doc.Text)
		if text == "" {
			text = "No content"
		}
		lines = append(lines, "- "+text)
	}
	return strings.Join(lines, "\n")
}

func compileExtractionGraph(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
) (compose.Runnable[map[string]any, *schema.Message], error) {
	template := einoprompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("Query: {query}\nRetrieved Documents:\n{documents}"),
	)

	graph := compose.NewGraph[map[string]any, *schema.Message]()
	if err := graph.AddChatTemplateNode("prompt", template); err != nil {
		return nil, fmt.Errorf("add extraction prompt node: %w", err)
	}
	if err := graph.AddChatModelNode("model", chatModel); err != nil {
		return nil, fmt.Errorf("add extraction model node: %w", err)
	}
	if err := graph.AddEdge(compose.START, "prompt"); err != nil {
		return nil, fmt.Errorf("add extraction edge start->prompt: %w", err)
	}
	if err := graph.AddEdge("prompt", "model"); err != nil {
		return nil, fmt.Errorf("add extraction edge prompt->model: %w", err)
	}
	if err := graph.AddEdge("model", compose.END); err != nil {
		return nil, fmt.Errorf("add extraction edge model->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("terms.extraction_graph"))
	if err != nil {
		return nil, fmt.Errorf("compile payment terms extraction graph: %w", err)
	}
	return runner, nil
}
