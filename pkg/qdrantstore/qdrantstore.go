// Package qdrantstore provides similarity search over the indexed
// procurement contracts collection in Qdrant.
package qdrantstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/qdrant/go-client/qdrant"

	"github.com/nexgen-labs/procure-agent/agent/terms"
)

// payloadTextKey is the payload field holding a chunk's text content.
const payloadTextKey = "text"

type Config struct {
	Host       string `envconfig:"HOST" split_words:"true" default:"localhost"`
	Port       int    `envconfig:"PORT" split_words:"true" default:"6334"`
	APIKey     string `envconfig:"API_KEY" split_words:"true"`
	UseTLS     bool   `envconfig:"USE_TLS" split_words:"true" default:"false"`
	Collection string `envconfig:"COLLECTION" split_words:"true" default:"procurement_contracts"`
}

// Store implements terms.Searcher against a Qdrant collection.
type Store struct {
	client     *qdrant.Client
	collection string
}

var _ terms.Searcher = (*Store)(nil)

func NewStore(cfg Config) (*Store, error) {
	collection := strings.TrimSpace(cfg.Collection)
	if collection == "" {
		return nil, errors.New("qdrant collection is required")
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
		UseTLS: cfg.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("create qdrant client: %w", err)
	}

	return &Store{client: client, collection: collection}, nil
}

func (s *Store) Search(ctx context.Context, vector []float32, topK int) ([]terms.Document, error) {
	searchRequest := &qdrant.SearchPoints{
		CollectionName: s.collection,
		Vector:         vector,
		Limit:          uint64(topK),
		WithPayload:    qdrant.NewWithPayload(true),
	}

	searchResult, err := s.client.GetPointsClient().Search(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("search collection %s: %w", s.collection, err)
	}

	docs := make([]terms.Document, 0, len(searchResult.Result))
	for _, point := range searchResult.Result {
		metadata := decodePayload(point.Payload)
		text, _ := metadata[payloadTextKey].(string)
		docs = append(docs, terms.Document{
			ID:       pointID(point.Id),
			Text:     text,
			Score:    point.Score,
			Metadata: metadata,
		})
	}
	return docs, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func pointID(id *qdrant.PointId) string {
	if id == nil {
		return ""
	}
	switch v := id.PointIdOptions.(type) {
	case *qdrant.PointId_Uuid:
		return v.Uuid
	case *qdrant.PointId_Num:
		return fmt.Sprintf("%d", v.Num)
	default:
		return ""
	}
}

func decodePayload(payload map[string]*qdrant.Value) map[string]any {
	if len(payload) == 0 {
		return nil
	}
	metadata := make(map[string]any, len(payload))
	for key, value := range payload {
		metadata[key] = decodeValue(value)
	}
	return metadata
}

func decodeValue(value *qdrant.Value) any {
	if value == nil {
		return nil
	}
	switch v := value.Kind.(type) {
	case *qdrant.Value_StringValue:
		return v.StringValue
	case *qdrant.Value_IntegerValue:
		return v.IntegerValue
	case *qdrant.Value_DoubleValue:
		return v.DoubleValue
	case *qdrant.Value_BoolValue:
		return v.BoolValue
	case *qdrant.Value_ListValue:
		if v.ListValue == nil {
			return nil
		}
		list := make([]any, len(v.ListValue.Values))
		for i, item := range v.ListValue.Values {
			list[i] = decodeValue(item)
		}
		return list
	default:
		return value
	}
}
