// Package checkout holds the typed results of a checkout computation:
// one DeliveryOption per seller group and the Summary that aggregates them.
// Both are plain values built by the domain services and never persisted.
package checkout
