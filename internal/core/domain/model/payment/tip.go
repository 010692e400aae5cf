package payment

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrTipIsNotConstructed = errors.New("Tip must be created via NewTip constructor")

var kenyanPhone = regexp.MustCompile(`^254(7|1)\d{8}$`)

// MinTip is the smallest amount the gateway accepts.
var MinTip = kernel.Shillings(1)

// Tip is a reader's support payment on a blog post, settled through an M-Pesa
// STK push. The server records it PENDING; the gateway callback or the expiry
// job moves it to a terminal status exactly once.
type Tip struct {
	id                kernel.UUID
	checkoutRequestID string
	postSlug          string
	phone             string
	amount            kernel.Money
	status            TipStatus
	resultCode        *int
	failedReason      string
	createdAt         time.Time
	updatedAt         time.Time
	guard             guard.ConstructorGuard
}

func NewTip(checkoutRequestID, postSlug, phone string, amount kernel.Money, now time.Time) (*Tip, error) {
	t := &Tip{
		id:                kernel.NewUUID(),
		checkoutRequestID: strings.TrimSpace(checkoutRequestID),
		postSlug:          strings.TrimSpace(postSlug),
		amount:            amount,
		status:            TipPending,
		createdAt:         now.UTC(),
		updatedAt:         now.UTC(),
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.validateRequestID(),
		t.validateSlug(),
		t.setPhone(phone),
		t.validateAmount(),
	); err != nil {
		return nil, err
	}
	return t, nil
}

// RestoreTipParams carries a persisted tip back into the domain.
type RestoreTipParams struct {
	ID                kernel.UUID
	CheckoutRequestID string
	PostSlug          string
	Phone             string
	Amount            kernel.Money
	Status            TipStatus
	ResultCode        *int
	FailedReason      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func RestoreTip(p RestoreTipParams) (*Tip, error) {
	if err := errors.Join(p.ID.Validate(), p.Status.Validate()); err != nil {
		return nil, err
	}
	return &Tip{
		id:                p.ID,
		checkoutRequestID: p.CheckoutRequestID,
		postSlug:          p.PostSlug,
		phone:             p.Phone,
		amount:            p.Amount,
		status:            p.Status,
		resultCode:        p.ResultCode,
		failedReason:      p.FailedReason,
		createdAt:         p.CreatedAt.UTC(),
		updatedAt:         p.UpdatedAt.UTC(),
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (t *Tip) Validate() error {
	if t == nil {
		return ErrTipIsNotConstructed
	}
	return t.guard.Validate(ErrTipIsNotConstructed)
}

func (t *Tip) ID() kernel.UUID           { return t.id }
func (t *Tip) CheckoutRequestID() string { return t.checkoutRequestID }
func (t *Tip) PostSlug() string          { return t.postSlug }
func (t *Tip) Phone() string             { return t.phone }
func (t *Tip) Amount() kernel.Money      { return t.amount }
func (t *Tip) Status() TipStatus         { return t.status }
func (t *Tip) ResultCode() *int          { return t.resultCode }
func (t *Tip) FailedReason() string      { return t.failedReason }
func (t *Tip) CreatedAt() time.Time      { return t.createdAt }
func (t *Tip) UpdatedAt() time.Time      { return t.updatedAt }

// Failure describes a failed or cancelled tip for the buyer; nil otherwise.
func (t *Tip) Failure() *errs.PaymentFailedError {
	if t.status != TipFailed && t.status != TipCancelled {
		return nil
	}
	code := defaultUnknownCode
	if t.resultCode != nil {
		code = *t.resultCode
	}
	_, failure := Outcome(code)
	if failure == nil {
		return nil
	}
	if t.failedReason != "" {
		failure.Reason = t.failedReason
	}
	return failure
}

// ApplyResult settles a PENDING tip from a gateway callback. A tip that is
// already terminal rejects the call with errs.InvalidTransitionError, which
// callers treat as an idempotent replay.
func (t *Tip) ApplyResult(code int, description string, now time.Time) error {
	status, failure := Outcome(code)
	if t.status != TipPending {
		return errs.NewInvalidTransitionError("tip", t.status, status)
	}

	t.status = status
	t.resultCode = &code
	if failure != nil {
		t.failedReason = failure.Reason
		if desc := strings.TrimSpace(description); desc != "" && !knownCode(code) {
			t.failedReason = desc
		}
	}
	t.updatedAt = now.UTC()
	return nil
}

// Expire fails a tip that stayed PENDING past its deadline.
func (t *Tip) Expire(now time.Time) error {
	return t.ApplyResult(ResultExpiredLocally, "", now)
}

// IsExpired reports whether a PENDING tip is older than timeout at now.
func (t *Tip) IsExpired(timeout time.Duration, now time.Time) bool {
	return t.status == TipPending && now.Sub(t.createdAt) > timeout
}

const defaultUnknownCode = -2

func knownCode(code int) bool {
	_, ok := outcomes[code]
	return ok
}

func (t *Tip) validateRequestID() error {
	if t.checkoutRequestID == "" {
		return errs.NewValueIsRequiredError("checkoutRequestId")
	}
	return nil
}

func (t *Tip) validateSlug() error {
	if t.postSlug == "" {
		return errs.NewValueIsRequiredError("postSlug")
	}
	return nil
}

func (t *Tip) validateAmount() error {
	if t.amount.LessThan(MinTip) {
		return errs.NewValueIsOutOfRangeError("amount", t.amount, MinTip, "unbounded")
	}
	return nil
}

// setPhone normalizes 07XXXXXXXX, 01XXXXXXXX and +254... to 254XXXXXXXXX.
func (t *Tip) setPhone(phone string) error {
	p := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
	p = strings.TrimPrefix(p, "+")
	if strings.HasPrefix(p, "0") {
		p = "254" + p[1:]
	}
	if !kenyanPhone.MatchString(p) {
		return errs.NewValueIsInvalidErrorWithCause("phone", errors.New("expected a Kenyan mobile number such as 0712345678"))
	}
	t.phone = p
	return nil
}
