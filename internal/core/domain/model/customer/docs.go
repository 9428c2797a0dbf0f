// Package customer holds the customer directory entities: Customer, identified by
// its unique name, and ContactInfo, the address and phone an order is delivered to.
package customer
