package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"meetapp/internal/lib/logger/sl"
)

const (
	// DefaultBatchSize is the max jobs read per iteration.
	DefaultBatchSize = 10

	// DefaultBlockTimeout is how long to block waiting for jobs.
	DefaultBlockTimeout = 5 * time.Second

	// DefaultMaxRetries is the max delivery attempts per job.
	DefaultMaxRetries = 3

	// DefaultClaimIdle is the idle time before reclaiming pending jobs
	// abandoned by a dead consumer.
	DefaultClaimIdle = 30 * time.Second
)

// Worker consumes notification jobs from the Redis stream and delivers them
// through the Mailer. Jobs are acked only after delivery, so the queue gives
// at-least-once semantics.
type Worker struct {
	redis        *redis.Client
	mailer       Mailer
	log          *slog.Logger
	consumerID   string
	batchSize    int
	blockTimeout time.Duration
	maxRetries   int
	claimIdle    time.Duration
	claimStartID string

	started bool
	cancel  context.CancelFunc
	done    chan struct{}
	mu      sync.Mutex
}

func NewWorker(client *redis.Client, mailer Mailer, log *slog.Logger, consumerID string) *Worker {
	return &Worker{
		redis:        client,
		mailer:       mailer,
		log:          log.With(slog.String("component", "notifier.worker"), slog.String("consumer_id", consumerID)),
		consumerID:   consumerID,
		batchSize:    DefaultBatchSize,
		blockTimeout: DefaultBlockTimeout,
		maxRetries:   DefaultMaxRetries,
		claimIdle:    DefaultClaimIdle,
		claimStartID: "0-0",
	}
}

// Run starts the worker loop. Blocks until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return errors.New("worker already started")
	}
	w.started = true
	w.done = make(chan struct{})
	ctx, w.cancel = context.WithCancel(ctx)
	w.mu.Unlock()

	defer close(w.done)

	if err := w.ensureConsumerGroup(ctx); err != nil {
		return fmt.Errorf("ensure consumer group: %w", err)
	}

	w.log.Info("notification worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info("notification worker stopping")
			return ctx.Err()
		default:
			if err := w.processOnce(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				w.log.Error("process error", sl.Err(err))
				time.Sleep(1 * time.Second)
			}
		}
	}
}

// Shutdown stops the worker, letting any in-flight delivery finish.
func (w *Worker) Shutdown(ctx context.Context) error {
	w.mu.Lock()
	if !w.started {
		w.mu.Unlock()
		return nil
	}
	cancel := w.cancel
	done := w.done
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	select {
	case <-done:
		w.log.Info("notification worker shutdown complete")
		return nil
	case <-ctx.Done():
		w.log.Warn("notification worker shutdown timed out")
		return ctx.Err()
	}
}

func (w *Worker) ensureConsumerGroup(ctx context.Context) error {
	err := w.redis.XGroupCreateMkStream(ctx, StreamKey, ConsumerGroup, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (w *Worker) processOnce(ctx context.Context) error {
	messages, err := w.claimPending(ctx)
	if err != nil {
		w.log.Warn("failed to claim pending jobs", sl.Err(err))
	}

	if len(messages) == 0 {
		messages, err = w.readBatch(ctx)
		if err != nil {
			return err
		}
	}

	for _, msg := range messages {
		w.handleMessage(ctx, msg)
	}

	return nil
}

// claimPending reclaims jobs whose consumer died mid-delivery.
func (w *Worker) claimPending(ctx context.Context) ([]redis.XMessage, error) {
	messages, start, err := w.redis.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   StreamKey,
		Group:    ConsumerGroup,
		Consumer: w.consumerID,
		MinIdle:  w.claimIdle,
		Start:    w.claimStartID,
		Count:    int64(w.batchSize),
	}).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("xautoclaim: %w", err)
	}
	if start != "" {
		w.claimStartID = start
	}
	return messages, nil
}

func (w *Worker) readBatch(ctx context.Context) ([]redis.XMessage, error) {
	streams, err := w.redis.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    ConsumerGroup,
		Consumer: w.consumerID,
		Streams:  []string{StreamKey, ">"},
		Count:    int64(w.batchSize),
		Block:    w.blockTimeout,
	}).Result()

	if err == redis.Nil || len(streams) == 0 {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("xreadgroup: %w", err)
	}

	return streams[0].Messages, nil
}

// handleMessage delivers a single job with retries. Malformed jobs are acked
// and dropped so they cannot block the stream.
func (w *Worker) handleMessage(ctx context.Context, msg redis.XMessage) {
	mail, err := parseMessage(msg)
	if err != nil {
		w.log.Warn("dropping malformed job",
			slog.String("message_id", msg.ID),
			sl.Err(err),
		)
		w.ack(ctx, msg.ID)
		return
	}

	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err = w.mailer.Send(mail); err == nil {
			w.log.Info("notification delivered",
				slog.String("message_id", msg.ID),
				slog.String("to", mail.To),
			)
			w.ack(ctx, msg.ID)
			return
		}

		backoff := time.Duration(1<<attempt) * time.Second
		w.log.Warn("delivery failed, retrying",
			slog.String("message_id", msg.ID),
			slog.Int("attempt", attempt),
			sl.Err(err),
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}

	// Not acked: the job stays pending and will be reclaimed later.
	w.log.Error("delivery failed after retries",
		slog.String("message_id", msg.ID),
		sl.Err(err),
	)
}

func parseMessage(msg redis.XMessage) (Mail, error) {
	jobKey, ok := msg.Values["job"].(string)
	if !ok {
		return Mail{}, errors.New("job field missing or not a string")
	}
	if jobKey != JobKeySubscriptionMail {
		return Mail{}, fmt.Errorf("unknown job key: %s", jobKey)
	}

	payload, ok := msg.Values["payload"].(string)
	if !ok {
		return Mail{}, errors.New("payload field missing or not a string")
	}

	var job SubscriptionJob
	if err := json.Unmarshal([]byte(payload), &job); err != nil {
		return Mail{}, fmt.Errorf("unmarshal job: %w", err)
	}

	return SubscriptionMail(job), nil
}

func (w *Worker) ack(ctx context.Context, messageID string) {
	if err := w.redis.XAck(ctx, StreamKey, ConsumerGroup, messageID).Err(); err != nil {
		w.log.Warn("failed to ack job",
			slog.String("message_id", messageID),
			sl.Err(err),
		)
	}
}
