package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads an order with its delivery on behalf of an actor.
// Visibility depends on the role:
//   - buyer: own orders
//   - seller: orders containing one of its products, showing its lines only
//   - delivery_agent: orders whose delivery is unclaimed or assigned to it
//   - admin: every order, including the payment review audit
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	role    kernel.Role

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID, actorID kernel.UUID, role kernel.Role) (GetOrderQuery, error) {
	if err := errors.Join(
		requireUUID("orderId", orderID),
		requireUUID("actorId", actorID),
		role.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actorID: actorID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetOrderQuery) ActorID() kernel.UUID { return q.actorID }
func (q GetOrderQuery) Role() kernel.Role    { return q.role }

func requireUUID(paramName string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	return nil
}

// GetOrderResponse is the order read model returned by the status endpoints.
type GetOrderResponse struct {
	ID               string          `json:"id"`
	BuyerID          string          `json:"buyerId"`
	DeliveryLocation LocationView    `json:"deliveryLocation"`
	Items            []OrderLineView `json:"items"`
	Subtotal         kernel.Money    `json:"subtotal"`
	DiscountAmount   kernel.Money    `json:"discountAmount"`
	DeliveryFee      kernel.Money    `json:"deliveryFee"`
	Total            kernel.Money    `json:"total"`
	VoucherCode      string          `json:"voucherCode,omitempty"`
	Status           string          `json:"status"`
	PaymentStatus    string          `json:"paymentStatus"`
	PaymentType      string          `json:"paymentType"`
	PaymentReference string          `json:"paymentReference,omitempty"`
	Version          int64           `json:"version"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	Delivery         *DeliveryView   `json:"delivery"`
	PaymentApprovals []ApprovalView  `json:"paymentApprovals,omitempty"`
}

type LocationView struct {
	County   string `json:"county"`
	Province string `json:"province"`
}

type OrderLineView struct {
	ProductID string       `json:"productId"`
	SellerID  string       `json:"sellerId"`
	Name      string       `json:"name"`
	Quantity  int          `json:"quantity"`
	UnitPrice kernel.Money `json:"unitPrice"`
	Total     kernel.Money `json:"total"`
}

type DeliveryView struct {
	ID            string       `json:"id"`
	Status        string       `json:"status"`
	Fee           kernel.Money `json:"fee"`
	TrackingID    string       `json:"trackingId"`
	AgentID       *string      `json:"agentId"`
	PickedUpAt    *time.Time   `json:"pickedUpAt"`
	DispatchedAt  *time.Time   `json:"dispatchedAt"`
	DeliveredAt   *time.Time   `json:"deliveredAt"`
	FailureReason string       `json:"failureReason,omitempty"`
}

type ApprovalView struct {
	AdminID   string    `json:"adminId"`
	Decision  string    `json:"decision"`
	Reason    string    `json:"reason,omitempty"`
	DecidedAt time.Time `json:"decidedAt"`
}
