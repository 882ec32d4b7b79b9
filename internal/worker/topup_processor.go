package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/inkroute/inkroute/internal/adapter/payment"
	"github.com/inkroute/inkroute/internal/domain/model"
)

// MarketFacade exposes the subset of application functionality required by the worker.
type MarketFacade interface {
	TopupsForProcessing(ctx context.Context, limit int) ([]model.Topup, error)
	CheckPayment(ctx context.Context, reference string) (*model.Payment, error)
	SettleTopup(ctx context.Context, topupID int64, status model.TopupStatus) error
}

// TopupProcessor polls the payment gateway and settles pending wallet top-ups
// concurrently.
type TopupProcessor struct {
	facade       MarketFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Topup
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewTopupProcessor constructs the settlement worker pool.
func NewTopupProcessor(facade MarketFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *TopupProcessor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &TopupProcessor{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Topup, batchSize*workers),
	}
}

// Start launches background processing.
func (p *TopupProcessor) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *TopupProcessor) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *TopupProcessor) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *TopupProcessor) fetchAndDispatch(ctx context.Context) {
	topups, err := p.facade.TopupsForProcessing(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("fetch topups for processing failed", slog.String("error", err.Error()))
		return
	}
	for _, topup := range topups {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- topup:
		}
	}
}

func (p *TopupProcessor) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case topup, ok := <-p.jobs:
			if !ok {
				return
			}
			p.handleTopup(ctx, topup)
		}
	}
}

func (p *TopupProcessor) handleTopup(ctx context.Context, topup model.Topup) {
	result, err := p.facade.CheckPayment(ctx, topup.Reference)
	if err != nil {
		switch e := err.(type) {
		case payment.TooManyRequestsError:
			p.logger.Warn("gateway rate limited", slog.Duration("retry_after", e.RetryAfter))
			time.Sleep(e.RetryAfter)
		default:
			if errors.Is(err, payment.ErrPaymentUnknown) {
				// Reference not visible to the gateway yet; stays PROCESSING
				// until a later poll.
				return
			}
			p.logger.Error("payment check failed", slog.String("reference", topup.Reference), slog.String("error", err.Error()))
		}
		return
	}

	var status model.TopupStatus
	switch result.Status {
	case model.PaymentStatusSuccess:
		status = model.TopupStatusConfirmed
	case model.PaymentStatusFailed:
		status = model.TopupStatusFailed
	default:
		// PENDING stays in PROCESSING for the next poll.
		return
	}

	if err := p.facade.SettleTopup(ctx, topup.ID, status); err != nil {
		p.logger.Error("settle topup failed", slog.Int64("topup", topup.ID), slog.String("error", err.Error()))
	}
}
