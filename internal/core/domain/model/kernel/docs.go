// Package kernel holds the primitives shared by every aggregate of the pizza
// ordering domain: the UUID value object and the DomainEvent contract.
package kernel
