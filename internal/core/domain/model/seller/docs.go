// Package seller models marketplace sellers and the delivery settings that the
// checkout uses to decide coverage, fees and payment timing.
package seller
