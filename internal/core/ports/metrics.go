package ports

// CheckoutMetrics records business outcomes of the checkout flow.
type CheckoutMetrics interface {
	// ObserveCheckout counts a delivery options evaluation by whether the
	// order could proceed.
	ObserveCheckout(canProceed bool)

	// ObserveVoucher counts a voucher preview or redemption attempt by stage
	// ("preview" or "redeem") and outcome ("applied" or a rejection reason).
	ObserveVoucher(stage, outcome string)

	// ObserveTipResult counts gateway results by final tip status.
	ObserveTipResult(status string)
}
