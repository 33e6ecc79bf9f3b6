package queries

import (
	"context"
	"database/sql"
	"errors"

	"cannacommerce/internal/core/domain/model/custody"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustodyChainQueryHandler retrieves a batch's custody ledger from the
// database. The current holder is derived the same way the domain does it:
// the latest non-correction event's receiver, or the origin holder when the
// ledger has no transfers yet.
type GetCustodyChainQueryHandler struct {
	db *gorm.DB
}

// NewGetCustodyChainQueryHandler creates a handler for custody ledger queries.
func NewGetCustodyChainQueryHandler(db *gorm.DB) GetCustodyChainQueryHandler {
	return GetCustodyChainQueryHandler{db: db}
}

// Handle executes the query to retrieve one batch's full custody history.
// Returns errs.ErrObjectNotFound when the batch has no ledger.
func (h GetCustodyChainQueryHandler) Handle(
	ctx context.Context,
	query GetCustodyChainQuery,
) (GetCustodyChainQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustodyChainQueryResponse{}, err
	}

	var origin string
	err := h.db.WithContext(ctx).Raw(`
		SELECT origin_holder
		FROM custody_chains
		WHERE batch_number = ?
	`, query.BatchNumber()).Row().Scan(&origin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCustodyChainQueryResponse{},
				errs.NewObjectNotFoundError("custodyChain", query.BatchNumber())
		}
		return GetCustodyChainQueryResponse{}, err
	}

	originHolder, err := kernel.NewGLN(origin)
	if err != nil {
		return GetCustodyChainQueryResponse{}, err
	}

	resp := GetCustodyChainQueryResponse{
		BatchNumber:   query.BatchNumber(),
		OriginHolder:  originHolder,
		CurrentHolder: originHolder,
		Events:        make([]CustodyEventResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			seq,
			timestamp,
			from_holder,
			to_holder,
			event_type,
			corrects_seq,
			notes
		FROM custody_events
		WHERE batch_number = ?
		ORDER BY seq
	`, query.BatchNumber()).Rows()
	if err != nil {
		return GetCustodyChainQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var event CustodyEventResponse
		var fromHolder sql.NullString
		var toHolder string
		var eventType int

		err = rows.Scan(
			&event.Seq,
			&event.Timestamp,
			&fromHolder,
			&toHolder,
			&eventType,
			&event.CorrectsSeq,
			&event.Notes,
		)
		if err != nil {
			return GetCustodyChainQueryResponse{}, err
		}

		if fromHolder.Valid {
			gln, glnErr := kernel.NewGLN(fromHolder.String)
			if glnErr != nil {
				return GetCustodyChainQueryResponse{}, glnErr
			}
			event.FromHolder = &gln
		}

		receiver, glnErr := kernel.NewGLN(toHolder)
		if glnErr != nil {
			return GetCustodyChainQueryResponse{}, glnErr
		}
		event.ToHolder = receiver
		event.EventType = custody.EventType(eventType)
		event.Timestamp = event.Timestamp.UTC()

		if event.EventType != custody.EventCorrection {
			resp.CurrentHolder = receiver
		}

		resp.Events = append(resp.Events, event)
	}

	if err = rows.Err(); err != nil {
		return GetCustodyChainQueryResponse{}, err
	}

	return resp, nil
}
