package wandb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"gitlab.com/nunet/opencompute-monitor/internal/config"
	"gitlab.com/nunet/opencompute-monitor/internal/tracing"
	"gitlab.com/nunet/opencompute-monitor/models"
)

var (
	ErrMissingAPIKey   = errors.New("no W&B API key configured, set WANDB_API_KEY")
	ErrUnauthorized    = errors.New("W&B rejected the API key")
	ErrProjectNotFound = errors.New("project not found")
)

// Client talks to the W&B public GraphQL API.
type Client struct {
	baseURL  string
	apiKey   string
	pageSize int
	http     *http.Client
}

// NewClient builds a client from the wandb config section.
func NewClient(cfg config.WandB) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		pageSize: pageSize,
		http:     &http.Client{Timeout: timeout},
	}, nil
}

// Runs lists every run of entity/project, following the cursor until the
// last page. Each run's config is unwrapped into a plain JSON object.
func (c *Client) Runs(ctx context.Context, entity, project string) ([]models.RawRecord, error) {
	path := config.WandB{Entity: entity, Project: project}.ProjectPath()
	ctx, span := tracing.Tracer.Start(ctx, "wandb.Runs")
	defer span.End()
	span.SetAttributes(attribute.String("wandb.project", path))

	var (
		records []models.RawRecord
		cursor  *string
		pages   int
	)

	for {
		body, err := c.query(ctx, runsQuery, map[string]interface{}{
			"entity":  entity,
			"project": project,
			"cursor":  cursor,
			"perPage": c.pageSize,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		pages++

		_, dataType, _, err := jsonparser.Get(body, "data", "project")
		if err != nil || dataType == jsonparser.Null {
			return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, path)
		}

		_, err = jsonparser.ArrayEach(body, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
			records = append(records, parseRun(value))
		}, "data", "project", "runs", "edges")
		if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
			return nil, fmt.Errorf("cannot iterate over runs: %w", err)
		}

		hasNext, _ := jsonparser.GetBoolean(body, "data", "project", "runs", "pageInfo", "hasNextPage")
		if !hasNext {
			break
		}
		next, err := jsonparser.GetString(body, "data", "project", "runs", "pageInfo", "endCursor")
		if err != nil || next == "" {
			break
		}
		if cursor != nil && next == *cursor {
			zlog.Ctx(ctx).Warn("pagination cursor did not advance, stopping",
				zap.String("project", path),
				zap.String("cursor", next))
			break
		}
		cursor = &next
	}

	span.SetAttributes(attribute.Int("wandb.runs", len(records)), attribute.Int("wandb.pages", pages))
	zlog.Ctx(ctx).Debug("listed runs",
		zap.String("project", path),
		zap.Int("runs", len(records)),
		zap.Int("pages", pages))

	return records, nil
}

// Viewer returns the username the API key belongs to.
func (c *Client) Viewer(ctx context.Context) (string, error) {
	body, err := c.query(ctx, viewerQuery, nil)
	if err != nil {
		return "", err
	}

	_, dataType, _, err := jsonparser.Get(body, "data", "viewer")
	if err != nil || dataType == jsonparser.Null {
		return "", ErrUnauthorized
	}

	username, err := jsonparser.GetString(body, "data", "viewer", "username")
	if err != nil {
		return "", fmt.Errorf("failed to get 'username' from viewer response: %w", err)
	}
	return username, nil
}

func (c *Client) query(ctx context.Context, query string, variables map[string]interface{}) ([]byte, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}
	req.SetBasicAuth("api", c.apiKey)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode >= 300:
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, c.baseURL)
	}

	if msg, err := jsonparser.GetString(body, "errors", "[0]", "message"); err == nil {
		return nil, fmt.Errorf("graphql error: %s", msg)
	}

	return body, nil
}

func parseRun(edge []byte) models.RawRecord {
	id, _ := jsonparser.GetString(edge, "node", "id")
	name, _ := jsonparser.GetString(edge, "node", "name")

	record := models.RawRecord{ID: id, Name: name}

	// config is a JSON document serialized into a string field
	raw, err := jsonparser.GetString(edge, "node", "config")
	if err != nil {
		return record
	}
	record.Config = unwrapConfig([]byte(raw))
	return record
}
