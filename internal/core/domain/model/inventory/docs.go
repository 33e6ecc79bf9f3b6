// Package inventory holds per-location stock state and its movement history.
// An InventoryItem tracks on-hand, reserved, and available counts for one
// product at one location; StockMovement is the immutable record of every
// quantity change. Movements are never edited or deleted, only reversed by a
// compensating movement, so the history stays auditable.
package inventory
