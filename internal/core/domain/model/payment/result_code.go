package payment

import "marketplace/internal/pkg/errs"

// M-Pesa STK push result codes the gateway reports in its callback.
const (
	ResultSuccess           = 0
	ResultInsufficientFunds = 1
	ResultCancelledByUser   = 1032
	ResultPhoneUnreachable  = 1037
	ResultWrongPIN          = 2001
	// ResultExpiredLocally is recorded when the expiry job gives up on a tip.
	ResultExpiredLocally = -1
)

const (
	defaultFailureReason  = "Payment could not be completed"
	defaultActionRequired = "Please try again"
)

type outcome struct {
	status         TipStatus
	reason         string
	actionRequired string
	canRetry       bool
}

var outcomes = map[int]outcome{
	ResultSuccess: {status: TipCompleted},
	ResultInsufficientFunds: {
		status: TipFailed, reason: "Insufficient M-Pesa balance",
		actionRequired: "Top up your M-Pesa account and try again", canRetry: true,
	},
	ResultCancelledByUser: {
		status: TipCancelled, reason: "Payment was cancelled on the phone",
		actionRequired: "Start the payment again when ready", canRetry: true,
	},
	ResultPhoneUnreachable: {
		status: TipFailed, reason: "Phone could not be reached",
		actionRequired: "Make sure your phone is on and has network, then retry", canRetry: true,
	},
	ResultWrongPIN: {
		status: TipFailed, reason: "Wrong M-Pesa PIN entered",
		actionRequired: "Retry and enter the correct M-Pesa PIN", canRetry: true,
	},
	ResultExpiredLocally: {
		status: TipFailed, reason: "Payment was not confirmed in time",
		actionRequired: "Check your phone for the M-Pesa prompt and try again", canRetry: true,
	},
}

// Outcome maps a gateway result code to the terminal tip status and, for
// failures, a buyer-facing *errs.PaymentFailedError. Unknown codes are generic
// retryable failures.
func Outcome(code int) (TipStatus, *errs.PaymentFailedError) {
	o, ok := outcomes[code]
	if !ok {
		return TipFailed, errs.NewPaymentFailedError(defaultFailureReason, defaultActionRequired, true)
	}
	if o.status == TipCompleted {
		return TipCompleted, nil
	}
	return o.status, errs.NewPaymentFailedError(o.reason, o.actionRequired, o.canRetry)
}
