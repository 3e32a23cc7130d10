package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"meetapp/internal/lib/logger/sl"
)

const (
	// MaxStreamLen is the approximate max length of the stream.
	MaxStreamLen = 10000

	// PublishTimeout is the max time to wait for a Redis publish.
	PublishTimeout = 100 * time.Millisecond
)

// Publisher enqueues notification jobs to the Redis stream.
type Publisher struct {
	redis *redis.Client
	log   *slog.Logger
}

func NewPublisher(client *redis.Client, log *slog.Logger) *Publisher {
	return &Publisher{
		redis: client,
		log:   log.With(slog.String("component", "notifier.publisher")),
	}
}

// Enqueue adds a job to the stream synchronously.
func (p *Publisher) Enqueue(ctx context.Context, jobKey string, job SubscriptionJob) (string, error) {
	data, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("marshal job: %w", err)
	}

	id, err := p.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey,
		MaxLen: MaxStreamLen,
		Approx: true,
		ID:     "*",
		Values: map[string]interface{}{
			"job":     jobKey,
			"payload": string(data),
		},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("xadd: %w", err)
	}

	return id, nil
}

// EnqueueAsync publishes without blocking the caller. Errors are logged but
// never returned; a lost notification must not fail the subscription.
func (p *Publisher) EnqueueAsync(job SubscriptionJob) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), PublishTimeout)
		defer cancel()

		id, err := p.Enqueue(ctx, JobKeySubscriptionMail, job)
		if err != nil {
			p.log.Warn("failed to enqueue notification",
				slog.Int("meetup_id", job.MeetupID),
				sl.Err(err),
			)
			return
		}

		p.log.Debug("notification enqueued",
			slog.Int("meetup_id", job.MeetupID),
			slog.String("stream_id", id),
		)
	}()
}
