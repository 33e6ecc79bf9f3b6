// Package kernel provides core domain primitives for the commerce core.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - GTIN, GLN, SSCC: GS1 identifier value objects with mod-10 check-digit verification
//   - Money: An exact-decimal monetary value object with per-currency minor-unit precision
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
