package ports

import (
	"context"

	"cannacommerce/internal/core/domain/model/custody"
)

// CustodyRepository defines the persistence contract for chain-of-custody
// ledgers. Ledgers are stored as their event sequence; appends are the only
// write after a chain is opened.
type CustodyRepository interface {
	// AddChain persists a newly opened ledger. The batch number must not
	// already have one.
	AddChain(ctx context.Context, chain *custody.Chain) error

	// AppendEvent persists one sequenced ledger entry.
	AppendEvent(ctx context.Context, batchNumber string, event custody.Event) error

	// GetChain retrieves a batch's full ledger, replayed through the domain
	// invariants. The chain row is locked for the surrounding transaction so
	// concurrent appends for the same batch serialize.
	GetChain(ctx context.Context, batchNumber string) (*custody.Chain, error)
}
