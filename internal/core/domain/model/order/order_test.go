package order_test

import (
	"testing"
	"time"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/core/domain/model/order"
	"cannacommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraftOrder(t *testing.T) *order.Order {
	t.Helper()
	buyer, err := kernel.NewGLN("0698420391022")
	require.NoError(t, err)
	seller, err := kernel.NewGLN("1234567890128")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "PO-2025-0001", buyer, seller, 100)
	require.NoError(t, err)
	return o
}

func submittedAt() time.Time {
	return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
}

func TestNewOrder(t *testing.T) {
	t.Run("should start in draft with pending fulfillment", func(t *testing.T) {
		o := newDraftOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Draft, o.Status())
		assert.Equal(t, order.FulfillmentPending, o.Fulfillment())
		assert.Equal(t, 100, o.OrderedUnits())
		assert.Zero(t, o.ShippedUnits())
		assert.Nil(t, o.SubmittedAt())
	})

	t.Run("should require a positive ordered quantity", func(t *testing.T) {
		buyer, err := kernel.NewGLN("0698420391022")
		require.NoError(t, err)
		seller, err := kernel.NewGLN("1234567890128")
		require.NoError(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), "PO-2025-0001", buyer, seller, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("full happy path", func(t *testing.T) {
		o := newDraftOrder(t)

		require.NoError(t, o.Submit(submittedAt()))
		require.NotNil(t, o.SubmittedAt())
		require.NoError(t, o.Acknowledge("ACK-551", false))
		require.NoError(t, o.RecordShipment("ASN-9001", 100))
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, order.FulfillmentComplete, o.Fulfillment())

		require.NoError(t, o.Deliver("POD-17"))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("partial shipments accumulate before completing", func(t *testing.T) {
		o := newDraftOrder(t)
		require.NoError(t, o.Submit(submittedAt()))
		require.NoError(t, o.Acknowledge("ACK-551", false))

		require.NoError(t, o.RecordShipment("ASN-9001", 60))
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, order.FulfillmentPartial, o.Fulfillment())
		assert.Equal(t, 60, o.ShippedUnits())

		require.NoError(t, o.RecordShipment("ASN-9002", 40))
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, order.FulfillmentComplete, o.Fulfillment())
		assert.Equal(t, 100, o.ShippedUnits())
	})

	t.Run("shipment against a draft order is rejected unchanged", func(t *testing.T) {
		o := newDraftOrder(t)

		err := o.RecordShipment("ASN-9001", 100)

		var invalid *order.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, order.Draft, invalid.From)
		assert.Equal(t, order.Shipped, invalid.To)
		assert.Equal(t, "ASN-9001", invalid.DocumentRef)

		assert.Equal(t, order.Draft, o.Status())
		assert.Zero(t, o.ShippedUnits())
	})

	t.Run("acknowledgment cannot arrive before submission", func(t *testing.T) {
		o := newDraftOrder(t)

		err := o.Acknowledge("ACK-551", false)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Draft, o.Status())
	})

	t.Run("rejected acknowledgment cancels the order", func(t *testing.T) {
		o := newDraftOrder(t)
		require.NoError(t, o.Submit(submittedAt()))

		require.NoError(t, o.Acknowledge("ACK-551", true))
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, order.FulfillmentCancelled, o.Fulfillment())
	})
}

func TestOrder_TerminalStates(t *testing.T) {
	t.Run("delivered accepts no further documents", func(t *testing.T) {
		o := newDraftOrder(t)
		require.NoError(t, o.Submit(submittedAt()))
		require.NoError(t, o.Acknowledge("ACK-551", false))
		require.NoError(t, o.RecordShipment("ASN-9001", 100))
		require.NoError(t, o.Deliver("POD-17"))

		err := o.RecordShipment("ASN-9002", 1)
		var terminal *order.TerminalStateError
		require.ErrorAs(t, err, &terminal)
		assert.Equal(t, order.Delivered, terminal.State)

		require.ErrorIs(t, o.Cancel("CANCEL-1"), order.ErrTerminalState)
	})

	t.Run("cancelled accepts no further documents", func(t *testing.T) {
		o := newDraftOrder(t)
		require.NoError(t, o.Cancel("CANCEL-1"))

		require.ErrorIs(t, o.Submit(submittedAt()), order.ErrTerminalState)
		require.ErrorIs(t, o.Cancel("CANCEL-2"), order.ErrTerminalState)
	})

	t.Run("cancellation is legal from every non-terminal state", func(t *testing.T) {
		stages := []func(t *testing.T) *order.Order{
			func(t *testing.T) *order.Order { return newDraftOrder(t) },
			func(t *testing.T) *order.Order {
				o := newDraftOrder(t)
				require.NoError(t, o.Submit(submittedAt()))
				return o
			},
			func(t *testing.T) *order.Order {
				o := newDraftOrder(t)
				require.NoError(t, o.Submit(submittedAt()))
				require.NoError(t, o.Acknowledge("ACK-551", false))
				return o
			},
			func(t *testing.T) *order.Order {
				o := newDraftOrder(t)
				require.NoError(t, o.Submit(submittedAt()))
				require.NoError(t, o.Acknowledge("ACK-551", false))
				require.NoError(t, o.RecordShipment("ASN-9001", 10))
				return o
			},
		}

		for _, build := range stages {
			o := build(t)
			require.NoError(t, o.Cancel("CANCEL-1"))
			assert.Equal(t, order.Cancelled, o.Status())
			assert.Equal(t, order.FulfillmentCancelled, o.Fulfillment())
		}
	})
}

func TestOrder_StatusTable(t *testing.T) {
	t.Run("no skipping forward", func(t *testing.T) {
		assert.False(t, order.Draft.CanTransitionTo(order.Shipped))
		assert.False(t, order.Submitted.CanTransitionTo(order.Shipped))
		assert.False(t, order.Draft.CanTransitionTo(order.Acknowledged))
	})

	t.Run("no moving backward", func(t *testing.T) {
		assert.False(t, order.Shipped.CanTransitionTo(order.Processing))
		assert.False(t, order.Acknowledged.CanTransitionTo(order.Submitted))
	})

	t.Run("cancellation stays open until delivery", func(t *testing.T) {
		assert.True(t, order.Shipped.CanTransitionTo(order.Cancelled))
		assert.True(t, order.Shipped.CanTransitionTo(order.Delivered))
		assert.False(t, order.Delivered.CanTransitionTo(order.Cancelled))
	})
}

func TestRestoreOrder(t *testing.T) {
	buyer, err := kernel.NewGLN("0698420391022")
	require.NoError(t, err)
	seller, err := kernel.NewGLN("1234567890128")
	require.NoError(t, err)
	at := submittedAt()

	t.Run("should restore persisted state", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "PO-2025-0001", buyer, seller,
			order.Processing, order.FulfillmentPartial, 100, 60, &at)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, 60, o.ShippedUnits())
		require.NotNil(t, o.SubmittedAt())
	})

	t.Run("should reject unknown stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "PO-2025-0001", buyer, seller,
			order.StatusUnknown, order.FulfillmentPending, 100, 0, nil)
		require.Error(t, err)
	})
}
