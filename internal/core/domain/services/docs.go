// Package services holds domain services of the order lifecycle.
//
// OrderPricer turns catalog products into immutable order item snapshots and
// computes order totals. Delivery fee and discount are capabilities behind the
// DeliveryFeePolicy and DiscountPolicy interfaces, so a disabled feature and a
// real one are interchangeable.
package services
