package document_test

import (
	"testing"
	"time"

	"cannacommerce/internal/core/domain/model/document"
	"cannacommerce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderSet(t *testing.T) *document.Set {
	t.Helper()
	po, err := document.NewPurchaseOrder(kernel.NewUUID(), "PO-2025-0001",
		mustGLN(t, "0698420391022"), mustGLN(t, "1234567890128"), orderLines(t),
		mustMoney(t, "995.00"), mustMoney(t, "79.60"), mustMoney(t, "1074.60"),
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	set, err := document.NewSet(po)
	require.NoError(t, err)
	return set
}

func shipLine(t *testing.T, lineNumber int, sku string, qty int, unitPrice string) document.Line {
	t.Helper()
	price := mustMoney(t, unitPrice)
	total, err := price.MulInt(qty)
	require.NoError(t, err)
	line, err := document.NewLine(lineNumber, sku, "", qty, price, total)
	require.NoError(t, err)
	return line
}

func shipNoticeFor(t *testing.T, asnNumber, poNumber string, lines ...document.Line) *document.ShipNotice {
	t.Helper()
	asn, err := document.NewShipNotice(kernel.NewUUID(), asnNumber, poNumber, lines,
		time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return asn
}

func TestSet_Attach(t *testing.T) {
	t.Run("should attach documents correlated by po number", func(t *testing.T) {
		set := newOrderSet(t)

		ack, err := document.NewAcknowledgment(kernel.NewUUID(), "ACK-551", "PO-2025-0001",
			document.AckAccepted, orderLines(t),
			time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.NoError(t, set.AttachAcknowledgment(ack))

		asn := shipNoticeFor(t, "ASN-9001", "PO-2025-0001",
			shipLine(t, 1, "SKU-OGK-35", 100, "7.50"),
			shipLine(t, 2, "SKU-GUM-10", 20, "12.25"))
		require.NoError(t, set.AttachShipNotice(asn))

		inv, err := document.NewInvoice(kernel.NewUUID(), "INV-88120", "PO-2025-0001",
			orderLines(t),
			mustMoney(t, "995.00"), mustMoney(t, "79.60"), mustMoney(t, "1074.60"),
			time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.NoError(t, set.AttachInvoice(inv))

		assert.Len(t, set.Acknowledgments(), 1)
		assert.Len(t, set.ShipNotices(), 1)
		assert.Len(t, set.Invoices(), 1)
	})

	t.Run("should reject documents referencing another po", func(t *testing.T) {
		set := newOrderSet(t)

		asn := shipNoticeFor(t, "ASN-9001", "PO-2025-0999",
			shipLine(t, 1, "SKU-OGK-35", 10, "7.50"))

		require.Error(t, set.AttachShipNotice(asn))
		assert.Empty(t, set.ShipNotices())
	})
}

func TestSet_CumulativeShipped(t *testing.T) {
	t.Run("sums shipments across notices per line", func(t *testing.T) {
		set := newOrderSet(t)

		require.NoError(t, set.AttachShipNotice(shipNoticeFor(t, "ASN-9001", "PO-2025-0001",
			shipLine(t, 1, "SKU-OGK-35", 60, "7.50"))))
		require.NoError(t, set.AttachShipNotice(shipNoticeFor(t, "ASN-9002", "PO-2025-0001",
			shipLine(t, 1, "SKU-OGK-35", 40, "7.50"),
			shipLine(t, 2, "SKU-GUM-10", 20, "12.25"))))

		poLines := set.PurchaseOrder().Lines()
		assert.Equal(t, 100, set.CumulativeShipped(poLines[0]))
		assert.Equal(t, 20, set.CumulativeShipped(poLines[1]))
		assert.True(t, set.IsFullyShipped())
		assert.True(t, set.HasAnyShipment())
	})

	t.Run("matches renumbered notice lines by product", func(t *testing.T) {
		set := newOrderSet(t)

		// The notice numbers its only line 7, but it ships the PO's line 1 SKU.
		require.NoError(t, set.AttachShipNotice(shipNoticeFor(t, "ASN-9001", "PO-2025-0001",
			shipLine(t, 7, "SKU-OGK-35", 60, "7.50"))))

		poLines := set.PurchaseOrder().Lines()
		assert.Equal(t, 60, set.CumulativeShipped(poLines[0]))
		assert.Equal(t, 0, set.CumulativeShipped(poLines[1]))
		assert.False(t, set.IsFullyShipped())
	})

	t.Run("no shipments means nothing shipped", func(t *testing.T) {
		set := newOrderSet(t)

		assert.False(t, set.HasAnyShipment())
		assert.False(t, set.IsFullyShipped())
		for _, line := range set.PurchaseOrder().Lines() {
			assert.Zero(t, set.CumulativeShipped(line))
		}
	})
}
