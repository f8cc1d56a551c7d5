package commands

import (
	"context"

	"pharmadelivery/internal/core/domain/model/rider"
)

// DeactivateRiderCommandHandler removes an active rider from the pool.
// Orders already bound to the rider are unaffected.
type DeactivateRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewDeactivateRiderCommandHandler creates a handler for rider deactivation.
func NewDeactivateRiderCommandHandler(uowFactory RiderUoWFactory) DeactivateRiderCommandHandler {
	return DeactivateRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deactivates the rider.
func (h *DeactivateRiderCommandHandler) Handle(ctx context.Context, cmd DeactivateRiderCommand) (*rider.Rider, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	aggregate, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Deactivate(); err != nil {
		return nil, err
	}

	if err = riderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
