// Package custody holds the append-only chain-of-custody ledger kept per
// regulated batch. Each event records a holder-to-holder transfer; the ledger
// enforces that holders form an unbroken chain from the declared origin
// license and that event time never runs backward. Entries are never edited
// or removed; a mistake is amended by appending a correction event that
// references the earlier sequence number.
package custody
