package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// QueueName is the Redis list key for pending interest runs
	QueueName = "interest:runs"

	// ScopeAccounts runs account interest accrual
	ScopeAccounts = "accounts"
	// ScopeLoans runs loan monthly interest accrual
	ScopeLoans = "loans"
)

// RunMessage is the message published to the queue. One message is one
// full batch run over the named scope.
type RunMessage struct {
	RunID       uuid.UUID `json:"run_id"`
	Scope       string    `json:"scope"`
	PublishedAt time.Time `json:"published_at"`
}

// Publisher handles publishing interest runs to Redis
type Publisher struct {
	client *redis.Client
}

// NewPublisher creates a new Publisher
func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// PublishRun queues an interest run for the given scope and returns its id
func (p *Publisher) PublishRun(ctx context.Context, scope string) (uuid.UUID, error) {
	if scope != ScopeAccounts && scope != ScopeLoans {
		return uuid.Nil, fmt.Errorf("unknown interest run scope %q", scope)
	}

	msg := RunMessage{
		RunID:       uuid.New(),
		Scope:       scope,
		PublishedAt: time.Now(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	// RPUSH keeps the list FIFO
	if err := p.client.RPush(ctx, QueueName, data).Err(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to publish to queue: %w", err)
	}

	return msg.RunID, nil
}

// QueueLength returns the current number of queued runs
func (p *Publisher) QueueLength(ctx context.Context) (int64, error) {
	return p.client.LLen(ctx, QueueName).Result()
}
