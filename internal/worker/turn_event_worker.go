package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/kumamoto2401-netizen/document-qa/internal/cache"
	"github.com/kumamoto2401-netizen/document-qa/internal/model"
	"github.com/kumamoto2401-netizen/document-qa/internal/repository"
)

// TurnEventWorker consumes appended-turn events and rewarms the redis
// transcript cache from the durable store. Persistence itself is
// synchronous on the request path; this worker only keeps reads hot.
type TurnEventWorker struct {
	conn      *amqp.Connection
	turnRepo  *repository.TurnRepository
	cache     *cache.TranscriptCache
	queueName string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewTurnEventWorker(conn *amqp.Connection, turnRepo *repository.TurnRepository, cache *cache.TranscriptCache, queueName string) *TurnEventWorker {
	return &TurnEventWorker{
		conn:      conn,
		turnRepo:  turnRepo,
		cache:     cache,
		queueName: queueName,
	}
}

func (w *TurnEventWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare worker queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				var turn model.Turn
				if err := json.Unmarshal(d.Body, &turn); err != nil {
					log.Printf("worker decode turn event failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				if err := w.refresh(workerCtx, turn.DocumentID); err != nil {
					log.Printf("worker refresh transcript cache failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

// refresh reloads the document's transcript from the durable store and
// writes it into the cache.
func (w *TurnEventWorker) refresh(ctx context.Context, documentID uint) error {
	turns, err := w.turnRepo.ListByDocumentID(documentID)
	if err != nil {
		return err
	}
	return w.cache.SetTranscript(ctx, documentID, turns)
}

func (w *TurnEventWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
