// Package services holds domain logic spanning more than one aggregate.
//
// OrderReviser applies a full order replacement, which touches both the order
// aggregate and the customer's contact info.
package services
