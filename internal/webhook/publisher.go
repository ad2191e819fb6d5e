package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/ireporter/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "ireporter:status_events"
)

// StatusChangeEvent - событие смены статуса инцидента администратором
type StatusChangeEvent struct {
	IncidentID     int64         `json:"incident_id"`
	OwnerID        int64         `json:"owner_id"`
	ChangedBy      int64         `json:"changed_by"`
	PreviousStatus models.Status `json:"previous_status"`
	Status         models.Status `json:"status"`
	Timestamp      time.Time     `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event StatusChangeEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event StatusChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH + BRPOP в воркере дают FIFO
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// LogWebhookPublisher используется, когда Redis не настроен: событие только пишется в лог
type LogWebhookPublisher struct {
	logger *logrus.Logger
}

// NewLogWebhookPublisher создает новый LogWebhookPublisher
func NewLogWebhookPublisher(logger *logrus.Logger) *LogWebhookPublisher {
	return &LogWebhookPublisher{logger: logger}
}

// Publish пишет событие в лог
func (p *LogWebhookPublisher) Publish(_ context.Context, event StatusChangeEvent) error {
	p.logger.WithFields(logrus.Fields{
		"incident_id":     event.IncidentID,
		"owner_id":        event.OwnerID,
		"previous_status": event.PreviousStatus,
		"status":          event.Status,
	}).Info("Status change notification (delivery disabled)")
	return nil
}
