package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cannacommerce/internal/core/application/usecases/commands"
	"cannacommerce/internal/core/domain/model/custody"
	"cannacommerce/internal/core/domain/model/inventory"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/core/domain/model/order"
	"cannacommerce/internal/core/domain/services"
	"cannacommerce/internal/generated/servers"
	"cannacommerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCommandError(t *testing.T) {
	location, err := kernel.NewGLN("0698420391022")
	require.NoError(t, err)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name: "consistency violations map to 422",
			err: &commands.ConsistencyViolationsError{
				PONumber:   "PO-2026-0042",
				Violations: []error{services.ErrUnmatchedLine},
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "orphan document maps to 404",
			err:        fmt.Errorf("acknowledgment ACK-0001: %w", services.ErrOrphanDocument),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing aggregate maps to 404",
			err:        errs.NewObjectNotFoundError("poNumber", "PO-2026-0099"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid lifecycle transition maps to 409",
			err:        fmt.Errorf("deliver PO-2026-0042: %w", order.ErrInvalidTransition),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "terminal state maps to 409",
			err:        fmt.Errorf("cancel PO-2026-0042: %w", order.ErrTerminalState),
			wantStatus: http.StatusConflict,
		},
		{
			name: "insufficient stock maps to 409",
			err: &inventory.InsufficientStockError{
				SKU: "SKU-OGK-35", Location: location, Requested: 10, Available: 4,
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "custody gap maps to 409",
			err: &custody.CustodyGapError{
				BatchNumber: "BATCH-2026-001", Expected: location,
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "non-monotonic custody timestamp maps to 409",
			err: &custody.NonMonotonicTimeError{
				BatchNumber: "BATCH-2026-001",
				Latest:      time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC),
				Attempted:   time.Date(2026, time.March, 4, 11, 0, 0, 0, time.UTC),
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "destroyed batch rejection maps to 400",
			err: errs.NewValueIsInvalidErrorWithCause("eventType",
				errors.New("batch BATCH-2026-001 was destroyed at seq 2, cannot append transfer")),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "out-of-range value maps to 400",
			err:        errs.NewValueIsOutOfRangeError("units", 0, 1, 1000000),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing required value maps to 400",
			err:        errs.NewValueIsRequiredError("sku"),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newTestContext(t)

			require.NoError(t, commandError(ctx, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.Equal(t, tt.err.Error(), body.Message)
		})
	}

	t.Run("unclassified failures map to 500 without leaking detail", func(t *testing.T) {
		ctx, rec := newTestContext(t)

		require.NoError(t, commandError(ctx, errors.New("pq: connection refused")))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "Failed to process request", body.Message)
	})
}
