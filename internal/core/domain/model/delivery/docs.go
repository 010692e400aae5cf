// Package delivery models the shipment of a confirmed order and its agent-driven
// lifecycle: ASSIGNED, PICKED_UP, IN_TRANSIT, OUT_FOR_DELIVERY, then DELIVERED
// or FAILED. Every step is triggered by the delivery agent and checked against
// the current status.
package delivery
