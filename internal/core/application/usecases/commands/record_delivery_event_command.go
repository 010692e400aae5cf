package commands

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRecordDeliveryEventCommandIsNotConstructed = errors.New(
	"RecordDeliveryEventCommand must be created via NewRecordDeliveryEventCommand constructor",
)

// DeliveryEvent is what a delivery agent reports from the road.
type DeliveryEvent string

const (
	EventPickedUp       DeliveryEvent = "PICKED_UP"
	EventInTransit      DeliveryEvent = "IN_TRANSIT"
	EventOutForDelivery DeliveryEvent = "OUT_FOR_DELIVERY"
	EventDelivered      DeliveryEvent = "DELIVERED"
	EventFailed         DeliveryEvent = "FAILED"
)

func ParseDeliveryEvent(s string) (DeliveryEvent, error) {
	e := DeliveryEvent(strings.ToUpper(strings.TrimSpace(s)))
	switch e {
	case EventPickedUp, EventInTransit, EventOutForDelivery, EventDelivered, EventFailed:
		return e, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("event", fmt.Errorf("%q is not a delivery event", s))
}

// RecordDeliveryEventCommand carries one agent report. A FAILED report needs
// a reason.
type RecordDeliveryEventCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID
	event   DeliveryEvent
	reason  string

	guard guard.ConstructorGuard
}

func NewRecordDeliveryEventCommand(
	orderID, agentID kernel.UUID,
	event DeliveryEvent,
	reason string,
) (RecordDeliveryEventCommand, error) {
	reason = strings.TrimSpace(reason)

	eventErr := func() error {
		if _, err := ParseDeliveryEvent(string(event)); err != nil {
			return err
		}
		if event == EventFailed && reason == "" {
			return errs.NewValueIsRequiredError("reason")
		}
		return nil
	}()

	if err := errors.Join(
		requireID("orderId", orderID),
		requireID("agentId", agentID),
		eventErr,
	); err != nil {
		return RecordDeliveryEventCommand{}, err
	}

	return RecordDeliveryEventCommand{
		orderID: orderID,
		agentID: agentID,
		event:   event,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RecordDeliveryEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryEventCommandIsNotConstructed)
}

func (c RecordDeliveryEventCommand) OrderID() kernel.UUID { return c.orderID }
func (c RecordDeliveryEventCommand) AgentID() kernel.UUID { return c.agentID }
func (c RecordDeliveryEventCommand) Event() DeliveryEvent { return c.event }
func (c RecordDeliveryEventCommand) Reason() string       { return c.reason }
