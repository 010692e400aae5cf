// Package orderrepo persists order aggregates with their lines and the
// deliveries created for them.
package orderrepo

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Money totals are fixed at placement; only the
// state columns, the payment reference and version change afterwards.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BuyerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	County           string          `gorm:"type:varchar(64);not null"`
	Subtotal         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Discount         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	VoucherCode      string          `gorm:"type:varchar(64)"`
	Status           string          `gorm:"type:varchar(32);not null;index"`
	PaymentStatus    string          `gorm:"type:varchar(32);not null"`
	PaymentType      string          `gorm:"type:varchar(32);not null"`
	PaymentReference string          `gorm:"type:varchar(128)"`
	Version          int64           `gorm:"not null;default:0"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
	Lines            []LineDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is a priced product snapshot of an order.
type LineDTO struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	SellerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (LineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	lines := make([]LineDTO, 0, len(o.Lines()))
	for i, l := range o.Lines() {
		lines = append(lines, LineDTO{
			OrderID:   orderID,
			Position:  i,
			ProductID: l.ProductID().Bytes(),
			SellerID:  l.SellerID().Bytes(),
			Name:      l.Name(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:               orderID,
		BuyerID:          o.BuyerID().Bytes(),
		County:           o.Location().County(),
		Subtotal:         o.Subtotal().Decimal(),
		Discount:         o.Discount().Decimal(),
		DeliveryFee:      o.DeliveryFee().Decimal(),
		Total:            o.Total().Decimal(),
		VoucherCode:      o.VoucherCode(),
		Status:           o.Status().String(),
		PaymentStatus:    o.PaymentStatus().String(),
		PaymentType:      o.PaymentType().String(),
		PaymentReference: o.PaymentReference(),
		Version:          o.Version(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
		Lines:            lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	buyerID, buyerErr := kernel.UUIDFromBytes(dto.BuyerID[:])
	location, locationErr := kernel.ResolveLocation(dto.County)
	discount, discountErr := kernel.NewMoney(dto.Discount)
	fee, feeErr := kernel.NewMoney(dto.DeliveryFee)
	status, statusErr := order.ParseStatus(dto.Status)
	paymentStatus, paymentStatusErr := order.ParsePaymentStatus(dto.PaymentStatus)
	paymentType, paymentTypeErr := kernel.ParsePaymentType(dto.PaymentType)
	if err := errors.Join(idErr, buyerErr, locationErr, discountErr, feeErr,
		statusErr, paymentStatusErr, paymentTypeErr); err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, err := lineToDomain(l)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:               id,
		BuyerID:          buyerID,
		Lines:            lines,
		Location:         location,
		DeliveryFee:      fee,
		Discount:         discount,
		VoucherCode:      dto.VoucherCode,
		Status:           status,
		PaymentStatus:    paymentStatus,
		PaymentType:      paymentType,
		PaymentReference: dto.PaymentReference,
		Version:          dto.Version,
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
	})
}

func lineToDomain(dto LineDTO) (order.Line, error) {
	productID, productErr := kernel.UUIDFromBytes(dto.ProductID[:])
	sellerID, sellerErr := kernel.UUIDFromBytes(dto.SellerID[:])
	price, priceErr := kernel.NewMoney(dto.UnitPrice)
	if err := errors.Join(productErr, sellerErr, priceErr); err != nil {
		return order.Line{}, err
	}

	return order.NewLine(productID, sellerID, dto.Name, dto.Quantity, price)
}
