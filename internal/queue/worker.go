package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eirikmo/fossbank/internal/ledger"
)

// Worker consumes interest-run messages and executes the batch accruals
type Worker struct {
	client   *redis.Client
	accounts *ledger.AccountLedger
	loans    *ledger.LoanLedger
	stopCh   chan struct{}
}

// NewWorker creates a new Worker
func NewWorker(client *redis.Client, accounts *ledger.AccountLedger, loans *ledger.LoanLedger) *Worker {
	return &Worker{
		client:   client,
		accounts: accounts,
		loans:    loans,
		stopCh:   make(chan struct{}),
	}
}

// Start begins consuming runs from the queue until Stop() is called or the
// context is cancelled
func (w *Worker) Start(ctx context.Context) {
	log.Println("Worker started, listening for interest runs...")

	for {
		select {
		case <-ctx.Done():
			log.Println("Worker stopping due to context cancellation")
			return
		case <-w.stopCh:
			log.Println("Worker stopping due to stop signal")
			return
		default:
			// BLPOP with a timeout so the loop can observe the stop signal
			result, err := w.client.BLPop(ctx, 5*time.Second, QueueName).Result()
			if err != nil {
				if err == redis.Nil {
					continue
				}
				if ctx.Err() != nil {
					return
				}
				log.Printf("Error reading from queue: %v", err)
				time.Sleep(1 * time.Second)
				continue
			}

			// result[0] is the queue name, result[1] is the message
			if len(result) < 2 {
				continue
			}

			w.processMessage(ctx, result[1])
		}
	}
}

// Stop signals the worker to stop processing
func (w *Worker) Stop() {
	close(w.stopCh)
}

// processMessage executes a single interest run
func (w *Worker) processMessage(ctx context.Context, data string) {
	var msg RunMessage
	if err := json.Unmarshal([]byte(data), &msg); err != nil {
		log.Printf("Failed to unmarshal message: %v", err)
		return
	}

	log.Printf("Processing interest run %s (scope: %s)", msg.RunID, msg.Scope)

	switch msg.Scope {
	case ScopeAccounts:
		applied, err := w.accounts.ApplyInterestToAll(ctx)
		if err != nil {
			log.Printf("Interest run %s failed: %v", msg.RunID, err)
			return
		}
		log.Printf("Interest run %s credited %d accounts", msg.RunID, applied)

	case ScopeLoans:
		applied, err := w.loans.ApplyMonthlyInterestToAll(ctx)
		if err != nil {
			log.Printf("Interest run %s aborted after %d loans: %v", msg.RunID, applied, err)
			return
		}
		log.Printf("Interest run %s accrued %d loans", msg.RunID, applied)

	default:
		log.Printf("Interest run %s has unknown scope %q", msg.RunID, msg.Scope)
	}
}

// ProcessOne processes a single queued run synchronously (useful for testing)
func (w *Worker) ProcessOne(ctx context.Context) error {
	result, err := w.client.LPop(ctx, QueueName).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return err
	}

	w.processMessage(ctx, result)
	return nil
}
