package commands

import (
	"context"
	"time"

	"pharmadelivery/internal/core/domain/model/notification"
	"pharmadelivery/internal/core/domain/model/order"
	"pharmadelivery/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Stock decrements for every line item and the order row itself share one
// transaction: a single out-of-stock item aborts the whole placement with no
// partial deduction.
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	dispatcher NotificationDispatcher
	publisher  ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory PlacementUoWFactory,
	dispatcher NotificationDispatcher,
	publisher ports.OrderEventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
// Reads current unit prices from the stock ledger, decrements stock once per
// line item, creates the order with its delivery record, and commits. After
// the commit an orderPlaced notification and an order-changed event are
// emitted; neither can fail the placement.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
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

	productRepo := uow.ProductRepository()

	lineItems := make([]order.LineItem, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		entry, err := productRepo.Get(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		if err = productRepo.Decrement(ctx, item.ProductID, item.Quantity); err != nil {
			return nil, err
		}

		lineItem, err := order.NewLineItem(item.ProductID, item.Quantity, entry.UnitPrice())
		if err != nil {
			return nil, err
		}

		lineItems = append(lineItems, lineItem)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.AddressID(), lineItems, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Emit(ctx, notification.OrderPlacedTemplate(aggregate.CustomerID(), aggregate.ID()))
	_ = h.publisher.PublishOrderChanged(ctx, aggregate)

	return aggregate, nil
}
