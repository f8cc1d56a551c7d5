package commands

import (
	"context"

	"pharmadelivery/internal/core/domain/model/rider"
)

// ApproveRiderCommandHandler moves a pending rider into the active pool.
type ApproveRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewApproveRiderCommandHandler creates a handler for rider approval.
func NewApproveRiderCommandHandler(uowFactory RiderUoWFactory) ApproveRiderCommandHandler {
	return ApproveRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle approves the rider. Approving a non-pending rider is a state
// conflict and leaves the rider untouched.
func (h *ApproveRiderCommandHandler) Handle(ctx context.Context, cmd ApproveRiderCommand) (*rider.Rider, error) {
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

	if err = aggregate.Approve(); err != nil {
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
