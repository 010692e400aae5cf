// Package services contains the stateless checkout domain services.
//
//   - DeliveryResolver decides per seller group whether the seller, the platform,
//     or nobody can deliver to the buyer's location
//   - FeeCalculator prices seller delivery with free-delivery thresholds
//   - CheckoutAggregator folds the per-seller options into one Summary
//   - Checkout wires the three together for a grouped cart
//
// All services are pure: they read already-loaded domain values and never touch
// storage, so they run in parallel across requests without coordination.
package services
