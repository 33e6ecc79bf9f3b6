package services_test

import (
	"testing"
	"time"

	"cannacommerce/internal/core/domain/model/document"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(amount, "USD")
	require.NoError(t, err)
	return m
}

func mustGLN(t *testing.T, raw string) kernel.GLN {
	t.Helper()
	gln, err := kernel.NewGLN(raw)
	require.NoError(t, err)
	return gln
}

func poLine(t *testing.T, lineNumber int, sku string, qty int, unitPrice string) document.Line {
	t.Helper()
	price := mustMoney(t, unitPrice)
	total, err := price.MulInt(qty)
	require.NoError(t, err)
	line, err := document.NewLine(lineNumber, sku, "", qty, price, total)
	require.NoError(t, err)
	return line
}

func purchaseOrder(t *testing.T, lines ...document.Line) *document.PurchaseOrder {
	t.Helper()
	subtotal, err := kernel.Zero("USD")
	require.NoError(t, err)
	for _, line := range lines {
		subtotal, err = subtotal.Add(line.LineTotal())
		require.NoError(t, err)
	}

	po, err := document.NewPurchaseOrder(kernel.NewUUID(), "PO-2025-0001",
		mustGLN(t, "0698420391022"), mustGLN(t, "1234567890128"), lines,
		subtotal, mustMoney(t, "0.00"), subtotal,
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return po
}

func shipNotice(t *testing.T, asnNumber, poNumber string, lines ...document.Line) *document.ShipNotice {
	t.Helper()
	asn, err := document.NewShipNotice(kernel.NewUUID(), asnNumber, poNumber, lines,
		time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return asn
}

func TestDocumentLinker_Link(t *testing.T) {
	linker := services.NewDocumentLinker()

	t.Run("consistent set links without violations", func(t *testing.T) {
		po := purchaseOrder(t, poLine(t, 1, "SKU-OGK-35", 100, "7.50"))

		ack, err := document.NewAcknowledgment(kernel.NewUUID(), "ACK-551", "PO-2025-0001",
			document.AckAccepted, []document.Line{poLine(t, 1, "SKU-OGK-35", 100, "7.50")},
			time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		asn := shipNotice(t, "ASN-9001", "PO-2025-0001", poLine(t, 1, "SKU-OGK-35", 100, "7.50"))

		set, violations := linker.Link(po,
			[]*document.Acknowledgment{ack}, []*document.ShipNotice{asn}, nil)

		require.NotNil(t, set)
		assert.Empty(t, violations)
		assert.Len(t, set.Acknowledgments(), 1)
		assert.Len(t, set.ShipNotices(), 1)
		assert.True(t, set.IsFullyShipped())
	})

	t.Run("orphan document is reported and kept out of the set", func(t *testing.T) {
		po := purchaseOrder(t, poLine(t, 1, "SKU-OGK-35", 100, "7.50"))
		asn := shipNotice(t, "ASN-9001", "PO-2025-0999", poLine(t, 1, "SKU-OGK-35", 10, "7.50"))

		set, violations := linker.Link(po, nil, []*document.ShipNotice{asn}, nil)

		require.Len(t, violations, 1)
		var orphan *services.OrphanDocumentError
		require.ErrorAs(t, violations[0], &orphan)
		assert.Equal(t, "ASN-9001", orphan.DocumentRef)
		assert.Equal(t, "PO-2025-0999", orphan.PONumber)
		assert.Empty(t, set.ShipNotices())
	})

	t.Run("unmatched line is reported but the document still attaches", func(t *testing.T) {
		po := purchaseOrder(t, poLine(t, 1, "SKU-OGK-35", 100, "7.50"))
		asn := shipNotice(t, "ASN-9001", "PO-2025-0001",
			poLine(t, 1, "SKU-OGK-35", 50, "7.50"),
			poLine(t, 2, "SKU-NOT-ORDERED", 5, "3.00"))

		set, violations := linker.Link(po, nil, []*document.ShipNotice{asn}, nil)

		require.Len(t, violations, 1)
		var unmatched *services.UnmatchedLineError
		require.ErrorAs(t, violations[0], &unmatched)
		assert.Equal(t, 2, unmatched.LineNumber)
		assert.Equal(t, "SKU-NOT-ORDERED", unmatched.SKU)
		assert.Len(t, set.ShipNotices(), 1)
	})

	t.Run("renumbered lines match by product reference", func(t *testing.T) {
		po := purchaseOrder(t, poLine(t, 1, "SKU-OGK-35", 100, "7.50"))
		asn := shipNotice(t, "ASN-9001", "PO-2025-0001", poLine(t, 7, "SKU-OGK-35", 100, "7.50"))

		_, violations := linker.Link(po, nil, []*document.ShipNotice{asn}, nil)

		assert.Empty(t, violations)
	})

	t.Run("collects every violation instead of stopping at the first", func(t *testing.T) {
		po := purchaseOrder(t, poLine(t, 1, "SKU-OGK-35", 100, "7.50"))

		orphan := shipNotice(t, "ASN-9001", "PO-2025-0999", poLine(t, 1, "SKU-OGK-35", 10, "7.50"))
		unmatched := shipNotice(t, "ASN-9002", "PO-2025-0001", poLine(t, 2, "SKU-NOT-ORDERED", 5, "3.00"))

		_, violations := linker.Link(po, nil, []*document.ShipNotice{orphan, unmatched}, nil)

		require.Len(t, violations, 2)
		assert.ErrorIs(t, violations[0], services.ErrOrphanDocument)
		assert.ErrorIs(t, violations[1], services.ErrUnmatchedLine)
	})
}

func TestDocumentLinker_OverShipment(t *testing.T) {
	linker := services.NewDocumentLinker()

	t.Run("second notice crossing the ordered quantity is reported", func(t *testing.T) {
		po := purchaseOrder(t, poLine(t, 1, "SKU-OGK-35", 100, "7.50"))

		asn1 := shipNotice(t, "ASN-9001", "PO-2025-0001", poLine(t, 1, "SKU-OGK-35", 60, "7.50"))
		asn2 := shipNotice(t, "ASN-9002", "PO-2025-0001", poLine(t, 1, "SKU-OGK-35", 50, "7.50"))

		set, violations := linker.Link(po, nil, []*document.ShipNotice{asn1, asn2}, nil)

		require.Len(t, violations, 1)
		var over *services.OverShipmentError
		require.ErrorAs(t, violations[0], &over)
		assert.Equal(t, "ASN-9002", over.DocumentRef)
		assert.Equal(t, 1, over.LineNumber)
		assert.Equal(t, 100, over.Ordered)
		assert.Equal(t, 110, over.Shipped)

		// Over-shipment is reported, not fatal: both notices stay attached.
		assert.Len(t, set.ShipNotices(), 2)
	})

	t.Run("over-ship exception suppresses the violation", func(t *testing.T) {
		flagged := poLine(t, 1, "SKU-OGK-35", 100, "7.50").WithOverShipAllowed()
		po := purchaseOrder(t, flagged)

		asn1 := shipNotice(t, "ASN-9001", "PO-2025-0001", poLine(t, 1, "SKU-OGK-35", 60, "7.50"))
		asn2 := shipNotice(t, "ASN-9002", "PO-2025-0001", poLine(t, 1, "SKU-OGK-35", 50, "7.50"))

		_, violations := linker.Link(po, nil, []*document.ShipNotice{asn1, asn2}, nil)

		assert.Empty(t, violations)
	})

	t.Run("shipment exactly at the ordered quantity passes", func(t *testing.T) {
		po := purchaseOrder(t, poLine(t, 1, "SKU-OGK-35", 100, "7.50"))

		asn1 := shipNotice(t, "ASN-9001", "PO-2025-0001", poLine(t, 1, "SKU-OGK-35", 60, "7.50"))
		asn2 := shipNotice(t, "ASN-9002", "PO-2025-0001", poLine(t, 1, "SKU-OGK-35", 40, "7.50"))

		_, violations := linker.Link(po, nil, []*document.ShipNotice{asn1, asn2}, nil)

		assert.Empty(t, violations)
	})
}
