package common

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"skywatch/milmon/internal/models"
)

// AlertStreamService fans alert events out to a Redis Stream so that
// external consumers (bots, pagers) can subscribe without polling the
// HTTP API.
type AlertStreamService struct {
	client *redis.Client
	stream string
}

// NewAlertStreamService creates a publisher for the given stream name.
func NewAlertStreamService(client *redis.Client, stream string) *AlertStreamService {
	return &AlertStreamService{
		client: client,
		stream: stream,
	}
}

// PublishAlert appends one alert event to the stream.
// XADD stream * data <json>
func (s *AlertStreamService) PublishAlert(ctx context.Context, event models.AlertEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}

	if _, err := s.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to add to stream: %w", err)
	}

	return nil
}

// PublishAlertBatch appends multiple alert events in one pipeline.
func (s *AlertStreamService) PublishAlertBatch(ctx context.Context, events []models.AlertEvent) error {
	if len(events) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, event := range events {
		data, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal alert event %s: %w", event.ID, err)
		}
		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: s.stream,
			Values: map[string]interface{}{
				"data": string(data),
			},
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute batch: %w", err)
	}
	return nil
}
