package test

import (
	"context"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
)

// PaymentVerifierStub simulates payment gateway verification.
type PaymentVerifierStub struct {
	VerifyFn func(context.Context, string) (*model.Payment, error)
	Status   model.PaymentStatus
	Err      error
	Calls    []string
}

// Verify records the reference and returns configured responses.
func (s *PaymentVerifierStub) Verify(ctx context.Context, reference string) (*model.Payment, error) {
	s.Calls = append(s.Calls, reference)
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, reference)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	status := s.Status
	if status == "" {
		status = model.PaymentStatusSuccess
	}
	return &model.Payment{Reference: reference, Status: status}, nil
}

// EventRecorderStub captures published order events.
type EventRecorderStub struct {
	Events []model.OrderEvent
}

// Publish appends the event to the recorded stream.
func (s *EventRecorderStub) Publish(event model.OrderEvent) {
	s.Events = append(s.Events, event)
}

// LocationCacheStub stores rider positions in-memory for tests.
type LocationCacheStub struct {
	Positions map[int64]model.Position
	UpdateErr error
	GetErr    error
}

// NewLocationCacheStub constructs the stub with initialized state.
func NewLocationCacheStub() *LocationCacheStub {
	return &LocationCacheStub{Positions: make(map[int64]model.Position)}
}

// Update stores the rider's latest fix.
func (s *LocationCacheStub) Update(ctx context.Context, riderID int64, pos model.Position) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	s.Positions[riderID] = pos
	return nil
}

// Get returns the rider's latest fix or not found.
func (s *LocationCacheStub) Get(ctx context.Context, riderID int64) (*model.Position, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	pos, ok := s.Positions[riderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &pos, nil
}
