package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads orders straight from the tables, bypassing the
// aggregates. An order the actor may not see is reported as not found.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID, buyerID, kernel.RoleBuyer)
//
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return echo.ErrNotFound
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderResponse{}, err
	}

	resp, found, err := h.order(ctx, query.OrderID())
	if err != nil {
		return GetOrderResponse{}, err
	}
	if !found {
		return GetOrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	if resp.Items, err = h.lines(ctx, query.OrderID()); err != nil {
		return GetOrderResponse{}, err
	}
	if resp.Delivery, err = h.delivery(ctx, query.OrderID()); err != nil {
		return GetOrderResponse{}, err
	}

	if !visibleTo(resp, query.ActorID().String(), query.Role()) {
		return GetOrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	switch query.Role() {
	case kernel.RoleSeller:
		resp.Items = linesOf(resp.Items, query.ActorID().String())
	case kernel.RoleAdmin:
		if resp.PaymentApprovals, err = h.approvals(ctx, query.OrderID()); err != nil {
			return GetOrderResponse{}, err
		}
	default:
	}

	return resp, nil
}

func (h GetOrderQueryHandler) order(ctx context.Context, id kernel.UUID) (GetOrderResponse, bool, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_id,
			county,
			subtotal,
			discount,
			delivery_fee,
			total,
			COALESCE(voucher_code, ''),
			status,
			payment_status,
			payment_type,
			COALESCE(payment_reference, ''),
			version,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, id.String()).Rows()
	if err != nil {
		return GetOrderResponse{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return GetOrderResponse{}, false, rows.Err()
	}

	var (
		resp                                   GetOrderResponse
		orderID, buyerID                       uuid.UUID
		county                                 string
		subtotal, discount, deliveryFee, total decimal.Decimal
	)
	err = rows.Scan(
		&orderID,
		&buyerID,
		&county,
		&subtotal,
		&discount,
		&deliveryFee,
		&total,
		&resp.VoucherCode,
		&resp.Status,
		&resp.PaymentStatus,
		&resp.PaymentType,
		&resp.PaymentReference,
		&resp.Version,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return GetOrderResponse{}, false, err
	}

	location, err := kernel.ResolveLocation(county)
	if err != nil {
		return GetOrderResponse{}, false, err
	}
	resp.ID = orderID.String()
	resp.BuyerID = buyerID.String()
	resp.DeliveryLocation = LocationView{County: location.County(), Province: string(location.Province())}

	if resp.Subtotal, err = kernel.NewMoney(subtotal); err != nil {
		return GetOrderResponse{}, false, err
	}
	if resp.DiscountAmount, err = kernel.NewMoney(discount); err != nil {
		return GetOrderResponse{}, false, err
	}
	if resp.DeliveryFee, err = kernel.NewMoney(deliveryFee); err != nil {
		return GetOrderResponse{}, false, err
	}
	if resp.Total, err = kernel.NewMoney(total); err != nil {
		return GetOrderResponse{}, false, err
	}

	return resp, true, rows.Err()
}

func (h GetOrderQueryHandler) lines(ctx context.Context, orderID kernel.UUID) ([]OrderLineView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			seller_id,
			name,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY position
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineView, 0)
	for rows.Next() {
		var (
			line                OrderLineView
			productID, sellerID uuid.UUID
			unitPrice           decimal.Decimal
		)
		if err = rows.Scan(&productID, &sellerID, &line.Name, &line.Quantity, &unitPrice); err != nil {
			return nil, err
		}
		if line.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, err
		}
		line.ProductID = productID.String()
		line.SellerID = sellerID.String()
		line.Total = line.UnitPrice.Times(line.Quantity)
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

func (h GetOrderQueryHandler) delivery(ctx context.Context, orderID kernel.UUID) (*DeliveryView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			fee,
			tracking_id,
			agent_id,
			picked_up_at,
			dispatched_at,
			delivered_at,
			COALESCE(failure_reason, '')
		FROM deliveries
		WHERE order_id = ?
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var (
		view    DeliveryView
		id      uuid.UUID
		agentID uuid.NullUUID
		fee     decimal.Decimal
	)
	err = rows.Scan(
		&id,
		&view.Status,
		&fee,
		&view.TrackingID,
		&agentID,
		&view.PickedUpAt,
		&view.DispatchedAt,
		&view.DeliveredAt,
		&view.FailureReason,
	)
	if err != nil {
		return nil, err
	}

	if view.Fee, err = kernel.NewMoney(fee); err != nil {
		return nil, err
	}
	view.ID = id.String()
	if agentID.Valid {
		agent := agentID.UUID.String()
		view.AgentID = &agent
	}

	return &view, rows.Err()
}

func (h GetOrderQueryHandler) approvals(ctx context.Context, orderID kernel.UUID) ([]ApprovalView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			admin_id,
			decision,
			COALESCE(reason, ''),
			decided_at
		FROM payment_approvals
		WHERE order_id = ?
		ORDER BY decided_at
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	approvals := make([]ApprovalView, 0)
	for rows.Next() {
		var (
			view      ApprovalView
			adminID   uuid.UUID
			decidedAt time.Time
		)
		if err = rows.Scan(&adminID, &view.Decision, &view.Reason, &decidedAt); err != nil {
			return nil, err
		}
		view.AdminID = adminID.String()
		view.DecidedAt = decidedAt.UTC()
		approvals = append(approvals, view)
	}

	return approvals, rows.Err()
}

func visibleTo(resp GetOrderResponse, actorID string, role kernel.Role) bool {
	switch role {
	case kernel.RoleAdmin:
		return true
	case kernel.RoleBuyer:
		return resp.BuyerID == actorID
	case kernel.RoleSeller:
		return len(linesOf(resp.Items, actorID)) > 0
	case kernel.RoleDeliveryAgent:
		d := resp.Delivery
		return d != nil && (d.AgentID == nil || *d.AgentID == actorID)
	default:
		return false
	}
}

func linesOf(lines []OrderLineView, sellerID string) []OrderLineView {
	out := make([]OrderLineView, 0, len(lines))
	for _, l := range lines {
		if l.SellerID == sellerID {
			out = append(out, l)
		}
	}
	return out
}
