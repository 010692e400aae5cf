package postgres

import (
	"marketplace/internal/adapters/out/postgres/catalogrepo"
	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/paymentrepo"
	"marketplace/internal/adapters/out/postgres/voucherrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&catalogrepo.SellerDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.PlatformSettingDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&deliveryrepo.DeliveryDTO{},
		&voucherrepo.VoucherDTO{},
		&voucherrepo.RedemptionDTO{},
		&paymentrepo.ApprovalDTO{},
		&paymentrepo.TipDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
