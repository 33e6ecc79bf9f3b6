package queries

import (
	"errors"
	"time"

	"cannacommerce/internal/core/domain/model/custody"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/guard"
)

var (
	ErrGetCustodyChainQueryIsNotConstructed = errors.New(
		"GetCustodyChainQuery must be created via NewGetCustodyChainQuery constructor",
	)
	ErrCustodyChainBatchNumberIsRequired = errors.New("batch number is required")
)

// GetCustodyChainQuery retrieves the full custody ledger for a regulated
// batch, for audit and compliance reporting.
//
// Example:
//
//	query, err := NewGetCustodyChainQuery("BATCH-2025-0042")
//	if err != nil {
//	    return err
//	}
//	handler := NewGetCustodyChainQueryHandler(db)
//
//	chain, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get custody chain: %w", err)
//	}
//
//	fmt.Printf("Batch %s held by %s after %d events\n",
//	    chain.BatchNumber, chain.CurrentHolder, len(chain.Events))
type GetCustodyChainQuery struct {
	batchNumber string

	guard guard.ConstructorGuard
}

// NewGetCustodyChainQuery creates a query for one batch's custody ledger.
func NewGetCustodyChainQuery(batchNumber string) (GetCustodyChainQuery, error) {
	if batchNumber == "" {
		return GetCustodyChainQuery{}, ErrCustodyChainBatchNumberIsRequired
	}

	return GetCustodyChainQuery{
		batchNumber: batchNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustodyChainQuery) Validate() error {
	return q.guard.Validate(ErrGetCustodyChainQueryIsNotConstructed)
}

// BatchNumber returns the batch whose ledger is requested.
func (q GetCustodyChainQuery) BatchNumber() string {
	return q.batchNumber
}

// GetCustodyChainQueryResponse represents a batch's full custody history.
type GetCustodyChainQueryResponse struct {
	BatchNumber   string
	OriginHolder  kernel.GLN
	CurrentHolder kernel.GLN
	Events        []CustodyEventResponse
}

// CustodyEventResponse represents one sequenced entry in the ledger.
type CustodyEventResponse struct {
	Seq         int
	Timestamp   time.Time
	FromHolder  *kernel.GLN
	ToHolder    kernel.GLN
	EventType   custody.EventType
	CorrectsSeq int
	Notes       string
}
