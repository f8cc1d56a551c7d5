package commands

import (
	"context"
	"time"

	"pharmadelivery/internal/core/domain/model/notification"
	"pharmadelivery/internal/core/domain/model/order"
	"pharmadelivery/internal/core/ports"
	"pharmadelivery/internal/pkg/errs"
)

// ClaimOrderCommandHandler arbitrates competing rider claims on the same
// order. Eligibility is checked first, then the repository performs the
// atomic conditional write; losing the race surfaces as AlreadyClaimed so
// the rider's app can say "someone else took this" and refresh the pool.
type ClaimOrderCommandHandler struct {
	uowFactory ClaimUoWFactory
	dispatcher NotificationDispatcher
	publisher  ports.OrderEventPublisher
}

// NewClaimOrderCommandHandler creates a handler for rider claims.
func NewClaimOrderCommandHandler(
	uowFactory ClaimUoWFactory,
	dispatcher NotificationDispatcher,
	publisher ports.OrderEventPublisher,
) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		publisher:  publisher,
	}
}

// Handle processes one claim attempt and returns the claimed order.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (*order.Order, error) {
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

	claimant, err := uow.RiderRepository().Get(ctx, cmd.RiderID())
	if err != nil {
		return nil, err
	}
	if !claimant.CanClaim() {
		return nil, errs.NewForbiddenError(claimant.ID().String(), "order "+cmd.OrderID().String())
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Claim(ctx, cmd.OrderID(), cmd.RiderID(), time.Now().UTC()); err != nil {
		return nil, err
	}

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Emit(ctx, notification.RiderAssignedTemplate(aggregate.CustomerID(), aggregate.ID(), claimant.Name()))
	_ = h.publisher.PublishOrderChanged(ctx, aggregate)

	return aggregate, nil
}
