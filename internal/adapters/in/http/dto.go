package http

import (
	"time"

	"pharmadelivery/internal/core/application/usecases/queries"
	"pharmadelivery/internal/core/domain/model/order"
	"pharmadelivery/internal/core/domain/model/rider"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	CustomerID string                  `json:"customerId"`
	AddressID  string                  `json:"addressId"`
	Items      []PlaceOrderItemRequest `json:"items"`
}

// PlaceOrderItemRequest is one requested line item.
type PlaceOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// TransitionOrderRequest is the body of POST /api/v1/orders/:id/transition.
type TransitionOrderRequest struct {
	Role     string  `json:"role"`
	Action   string  `json:"action"`
	ActorID  *string `json:"actorId,omitempty"`
	PhotoURL string  `json:"photoUrl,omitempty"`
}

// ClaimOrderRequest is the body of POST /api/v1/orders/:id/claim.
type ClaimOrderRequest struct {
	RiderID string `json:"riderId"`
}

// RegisterRiderRequest is the body of POST /api/v1/riders.
type RegisterRiderRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	VehicleType  string `json:"vehicleType,omitempty"`
	VehiclePlate string `json:"vehiclePlate,omitempty"`
}

// MarkNotificationReadRequest is the body of POST /api/v1/notifications/:id/read.
type MarkNotificationReadRequest struct {
	UserID string `json:"userId"`
}

// OrderItemResponse is one line item of an order.
type OrderItemResponse struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Subtotal  int64  `json:"subtotal"`
}

// DeliveryResponse is the delivery record of an order.
type DeliveryResponse struct {
	TrackingNumber string     `json:"trackingNumber"`
	Status         string     `json:"status"`
	EstimatedDate  time.Time  `json:"estimatedDate"`
	DeliveredAt    *time.Time `json:"deliveredAt,omitempty"`
}

// OrderResponse is the full order representation returned by write
// operations. Status carries the internal state; customerStatus is the
// customer-facing projection.
type OrderResponse struct {
	ID               string              `json:"id"`
	CustomerID       string              `json:"customerId"`
	AddressID        string              `json:"addressId"`
	Status           string              `json:"status"`
	CustomerStatus   string              `json:"customerStatus"`
	Items            []OrderItemResponse `json:"items"`
	Subtotal         int64               `json:"subtotal"`
	Tax              int64               `json:"tax"`
	Shipping         int64               `json:"shipping"`
	Total            int64               `json:"total"`
	RiderID          *string             `json:"riderId,omitempty"`
	Archived         bool                `json:"archived"`
	DeliveryPhotoURL string              `json:"deliveryPhotoUrl,omitempty"`
	Delivery         *DeliveryResponse   `json:"delivery,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
}

// OrderSummaryResponse is one row of GET /api/v1/orders.
type OrderSummaryResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customerId"`
	Status         string    `json:"status"`
	CustomerStatus string    `json:"customerStatus"`
	Total          int64     `json:"total"`
	Archived       bool      `json:"archived"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AvailableOrderResponse is one row of the rider work view.
type AvailableOrderResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Total     int64     `json:"total"`
	Mine      bool      `json:"mine"`
	CreatedAt time.Time `json:"createdAt"`
}

// RiderResponse is the rider representation.
type RiderResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	VehicleType  string `json:"vehicleType,omitempty"`
	VehiclePlate string `json:"vehiclePlate,omitempty"`
	Status       string `json:"status"`
}

// NotificationResponse is one row of a user's notification feed.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	OrderID   *string   `json:"orderId,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Subtotal:  item.Subtotal(),
		})
	}

	var riderID *string
	if id, assigned := aggregate.Assignment().RiderID(); assigned {
		raw := id.String()
		riderID = &raw
	}

	var delivery *DeliveryResponse
	if record := aggregate.Delivery(); record != nil {
		delivery = &DeliveryResponse{
			TrackingNumber: record.TrackingNumber(),
			Status:         record.Status().String(),
			EstimatedDate:  record.EstimatedDate(),
			DeliveredAt:    record.DeliveredAt(),
		}
	}

	return OrderResponse{
		ID:               aggregate.ID().String(),
		CustomerID:       aggregate.CustomerID().String(),
		AddressID:        aggregate.AddressID().String(),
		Status:           aggregate.Status().String(),
		CustomerStatus:   aggregate.Status().CustomerFacing(),
		Items:            items,
		Subtotal:         aggregate.Subtotal(),
		Tax:              aggregate.Tax(),
		Shipping:         aggregate.Shipping(),
		Total:            aggregate.Total(),
		RiderID:          riderID,
		Archived:         aggregate.Archived(),
		DeliveryPhotoURL: aggregate.DeliveryPhotoURL(),
		Delivery:         delivery,
		CreatedAt:        aggregate.CreatedAt(),
	}
}

func riderToResponse(aggregate *rider.Rider) RiderResponse {
	return RiderResponse{
		ID:           aggregate.ID().String(),
		Name:         aggregate.Name(),
		Phone:        aggregate.Phone(),
		VehicleType:  aggregate.VehicleType(),
		VehiclePlate: aggregate.VehiclePlate(),
		Status:       aggregate.Status().String(),
	}
}

func orderSummaryToResponse(row queries.ListOrdersQueryResponse) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:             row.ID.String(),
		CustomerID:     row.CustomerID.String(),
		Status:         row.Status,
		CustomerStatus: row.CustomerStatus,
		Total:          row.Total,
		Archived:       row.Archived,
		TrackingNumber: row.TrackingNumber,
		CreatedAt:      row.CreatedAt,
	}
}

func availableOrderToResponse(row queries.ListAvailableOrdersQueryResponse) AvailableOrderResponse {
	return AvailableOrderResponse{
		ID:        row.ID.String(),
		Status:    row.Status,
		Total:     row.Total,
		Mine:      row.Mine,
		CreatedAt: row.CreatedAt,
	}
}

func notificationToResponse(row queries.ListNotificationsQueryResponse) NotificationResponse {
	response := NotificationResponse{
		ID:        row.ID.String(),
		Type:      row.Type,
		Title:     row.Title,
		Message:   row.Message,
		Read:      row.Read,
		CreatedAt: row.CreatedAt,
	}
	if row.OrderID != nil {
		raw := row.OrderID.String()
		response.OrderID = &raw
	}
	return response
}
