// Package order models the order aggregate of the pizza service.
//
// An Order owns one Line per pizza and each Line owns one SizeDetail per size.
// The whole tree is validated on construction and replaced as a unit by
// ReviseLines, which is only allowed while the order is Processing.
//
// Status is an ordered enumeration (Processing < Delivering < Delivered) and
// Advance accepts only strictly forward moves. The first move into Delivered
// stamps the delivery time.
//
// Every mutation records a domain event (order.placed, order.revised,
// order.status_changed, order.discarded) that the unit of work writes to the
// outbox when the transaction commits.
package order
