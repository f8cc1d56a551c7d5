package commands

import (
	"context"
	"time"

	"pharmadelivery/internal/core/domain/model/notification"
	"pharmadelivery/internal/core/domain/model/order"
	"pharmadelivery/internal/core/ports"
	"pharmadelivery/internal/pkg/errs"
)

// TransitionOrderCommandHandler applies one transition from the lifecycle
// table to an order. The role check happens before the order is loaded, the
// transition itself is guarded by the aggregate's precondition checks, and
// the per-transition notification plus the order-changed event fire only
// after the transaction committed.
type TransitionOrderCommandHandler struct {
	uowFactory      FulfillmentUoWFactory
	dispatcher      NotificationDispatcher
	publisher       ports.OrderEventPublisher
	restockOnCancel bool
}

// NewTransitionOrderCommandHandler creates a handler for lifecycle
// transitions. restockOnCancel, when enabled, returns every line item's
// quantity to the stock ledger inside the rejecting transaction.
func NewTransitionOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	dispatcher NotificationDispatcher,
	publisher ports.OrderEventPublisher,
	restockOnCancel bool,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory:      uowFactory,
		dispatcher:      dispatcher,
		publisher:       publisher,
		restockOnCancel: restockOnCancel,
	}
}

// Handle processes one transition command.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.Role() != cmd.Action().allowedRole() {
		return nil, errs.NewForbiddenError(cmd.Role().String(), "action "+cmd.Action().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	riderName, err := h.apply(ctx, uow, aggregate, cmd)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.emit(ctx, aggregate, cmd.Action(), riderName)
	_ = h.publisher.PublishOrderChanged(ctx, aggregate)

	return aggregate, nil
}

// apply mutates the aggregate for the requested action inside the open
// transaction. It returns the rider's display name when the action involved
// one, for the riderAssigned notification.
func (h *TransitionOrderCommandHandler) apply(
	ctx context.Context,
	uow FulfillmentUoW,
	aggregate *order.Order,
	cmd TransitionOrderCommand,
) (string, error) {
	now := time.Now().UTC()

	switch cmd.Action() {
	case ActionConfirm:
		return "", aggregate.Confirm(now)
	case ActionPrepare:
		return "", aggregate.Prepare(now)
	case ActionMarkReady:
		return "", aggregate.MarkReady(now)
	case ActionAssignRider:
		assignee, err := uow.RiderRepository().Get(ctx, *cmd.ActorID())
		if err != nil {
			return "", err
		}
		if !assignee.CanClaim() {
			return "", errs.NewForbiddenError(assignee.ID().String(), "order "+aggregate.ID().String())
		}
		return assignee.Name(), aggregate.AssignRider(assignee.ID(), now)
	case ActionConfirmPickup:
		return "", aggregate.ConfirmPickup(*cmd.ActorID(), now)
	case ActionMarkDelivered:
		return "", aggregate.MarkDelivered(*cmd.ActorID(), cmd.PhotoURL(), now)
	case ActionConfirmDelivery:
		return "", aggregate.ConfirmDelivery(now)
	case ActionReject:
		if err := aggregate.Reject(); err != nil {
			return "", err
		}
		if h.restockOnCancel {
			return "", h.restock(ctx, uow, aggregate)
		}
		return "", nil
	case ActionArchive:
		return "", aggregate.Archive()
	default:
		return "", errs.NewValueIsInvalidError("action")
	}
}

// restock returns every line item's quantity to the ledger inside the
// rejecting transaction.
func (h *TransitionOrderCommandHandler) restock(ctx context.Context, uow FulfillmentUoW, aggregate *order.Order) error {
	productRepo := uow.ProductRepository()
	for _, item := range aggregate.Items() {
		if err := productRepo.Increment(ctx, item.ProductID(), item.Quantity()); err != nil {
			return err
		}
	}
	return nil
}

// emit fires the per-transition customer notification. Prepare, delivery
// confirmation and archiving are silent; the customer already saw
// "delivered" at mark_delivered.
func (h *TransitionOrderCommandHandler) emit(ctx context.Context, aggregate *order.Order, action Action, riderName string) {
	customerID := aggregate.CustomerID()
	orderID := aggregate.ID()

	switch action {
	case ActionConfirm:
		h.dispatcher.Emit(ctx, notification.OrderConfirmedTemplate(customerID, orderID))
	case ActionMarkReady:
		h.dispatcher.Emit(ctx, notification.OrderReadyTemplate(customerID, orderID))
	case ActionAssignRider:
		h.dispatcher.Emit(ctx, notification.RiderAssignedTemplate(customerID, orderID, riderName))
	case ActionConfirmPickup:
		h.dispatcher.Emit(ctx, notification.OutForDeliveryTemplate(customerID, orderID))
	case ActionMarkDelivered:
		h.dispatcher.Emit(ctx, notification.DeliveredTemplate(customerID, orderID))
	case ActionReject:
		h.dispatcher.Emit(ctx, notification.OrderCancelledTemplate(customerID, orderID))
	}
}
