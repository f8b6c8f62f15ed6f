package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go"

	"PosBridge/internal/domain/order"
)

var _ order.AuditSink = (*AuditSink)(nil)

// AuditSink stores one document per dispatch attempt in OpenSearch.
type AuditSink struct {
	client *opensearch.Client
	index  string
}

func NewAuditSink(ctx context.Context, urls []string, index string) (*AuditSink, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	cfg := opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
	}
	client, err := opensearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	sink := &AuditSink{client: client, index: index}

	if err := sink.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return sink, nil
}

func (s *AuditSink) ensureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"order_id":      map[string]any{"type": "long"},
				"pos_reference": map[string]any{"type": "keyword"},
				"endpoint":      map[string]any{"type": "keyword"},
				"delivered":     map[string]any{"type": "boolean"},
				"response":      map[string]any{"type": "text"},
				"duration_ns":   map[string]any{"type": "long"},
				"at":            map[string]any{"type": "date"},
			},
		},
		"settings": map[string]any{
			"number_of_replicas": 0, // dev-friendly; change in prod
		},
	}
	buf, _ := json.Marshal(body)
	cr, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

// IndexDispatch writes one audit document. The document ID is generated
// here; dispatch attempts have no natural key since resends repeat them.
func (s *AuditSink) IndexDispatch(ctx context.Context, entry order.DispatchAudit) error {
	if entry.At.IsZero() {
		entry.At = time.Now().UTC()
	}

	payload, _ := json.Marshal(entry)
	res, err := s.client.Index(
		s.index,
		bytes.NewReader(payload),
		s.client.Index.WithDocumentID(uuid.NewString()),
		s.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}
