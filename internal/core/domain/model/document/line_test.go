package document_test

import (
	"testing"

	"cannacommerce/internal/core/domain/model/document"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/core/domain/model/product"
	"cannacommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(amount, "USD")
	require.NoError(t, err)
	return m
}

func TestNewLine(t *testing.T) {
	t.Run("should create reconciled line", func(t *testing.T) {
		line, err := document.NewLine(1, "SKU-OGK-35", "OG Kush 3.5g", 5,
			mustMoney(t, "7.50"), mustMoney(t, "37.50"))

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.Equal(t, 1, line.LineNumber())
		assert.Equal(t, 5, line.Quantity())
		assert.Equal(t, product.Each, line.Unit())
		assert.False(t, line.OverShipAllowed())
	})

	t.Run("should accept total within half a minor unit", func(t *testing.T) {
		// 5 * 7.499 = 37.495, which rounds to the supplied 37.50
		_, err := document.NewLine(1, "SKU-OGK-35", "OG Kush 3.5g", 5,
			mustMoney(t, "7.499"), mustMoney(t, "37.50"))

		require.NoError(t, err)
	})

	t.Run("should reject total off by more than half a minor unit", func(t *testing.T) {
		// 5 * 7.499 = 37.495; 37.51 is 0.015 away
		_, err := document.NewLine(1, "SKU-OGK-35", "OG Kush 3.5g", 5,
			mustMoney(t, "7.499"), mustMoney(t, "37.51"))

		require.ErrorIs(t, err, document.ErrArithmeticMismatch)

		var mismatch *document.ArithmeticMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 1, mismatch.LineNumber)
		assert.Equal(t, "lineTotal", mismatch.Field)
	})

	t.Run("should reject invalid fields", func(t *testing.T) {
		price := mustMoney(t, "7.50")
		total := mustMoney(t, "37.50")

		_, err := document.NewLine(0, "SKU-OGK-35", "", 5, price, total)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = document.NewLine(1, "", "", 5, price, total)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = document.NewLine(1, "SKU-OGK-35", "", -1, price, total)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative unit price", func(t *testing.T) {
		negative, err := kernel.MoneyFromString("-7.50", "USD")
		require.NoError(t, err)

		_, err = document.NewLine(1, "SKU-OGK-35", "", 5, negative, mustMoney(t, "-37.50"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should allow zero quantity with zero total", func(t *testing.T) {
		line, err := document.NewLine(2, "SKU-OGK-35", "", 0,
			mustMoney(t, "7.50"), mustMoney(t, "0.00"))

		require.NoError(t, err)
		assert.Equal(t, 0, line.Quantity())
	})

	t.Run("should reject zero-value line on validation", func(t *testing.T) {
		var line document.Line
		require.ErrorIs(t, line.Validate(), document.ErrLineIsNotConstructed)
	})
}

func TestLine_With(t *testing.T) {
	newLine := func(t *testing.T) document.Line {
		line, err := document.NewLine(1, "SKU-OGK-35", "OG Kush 3.5g", 5,
			mustMoney(t, "7.50"), mustMoney(t, "37.50"))
		require.NoError(t, err)
		return line
	}

	t.Run("WithGTIN returns modified copy", func(t *testing.T) {
		line := newLine(t)
		gtin, err := kernel.NewGTIN("00012345000010")
		require.NoError(t, err)

		withGTIN, err := line.WithGTIN(gtin)
		require.NoError(t, err)

		require.NotNil(t, withGTIN.GTIN())
		assert.Nil(t, line.GTIN())
	})

	t.Run("WithUnit rejects unknown unit", func(t *testing.T) {
		line := newLine(t)
		_, err := line.WithUnit(product.UnitUnknown)
		require.Error(t, err)
	})

	t.Run("WithOverShipAllowed flags the copy only", func(t *testing.T) {
		line := newLine(t)
		flagged := line.WithOverShipAllowed()

		assert.True(t, flagged.OverShipAllowed())
		assert.False(t, line.OverShipAllowed())
	})

	t.Run("WithBatchNumber carries the batch", func(t *testing.T) {
		line := newLine(t).WithBatchNumber("BATCH-2025-0042")
		assert.Equal(t, "BATCH-2025-0042", line.BatchNumber())
	})
}

func TestLine_MatchesProduct(t *testing.T) {
	gtinA, err := kernel.NewGTIN("00012345000010")
	require.NoError(t, err)
	gtinB, err := kernel.NewGTIN("10614141000019")
	require.NoError(t, err)

	t.Run("matches by GTIN when both carry one", func(t *testing.T) {
		a, err := document.NewLine(1, "SKU-A", "", 1, mustMoney(t, "1.00"), mustMoney(t, "1.00"))
		require.NoError(t, err)
		a, err = a.WithGTIN(gtinA)
		require.NoError(t, err)

		b, err := document.NewLine(7, "SKU-B", "", 1, mustMoney(t, "1.00"), mustMoney(t, "1.00"))
		require.NoError(t, err)
		b, err = b.WithGTIN(gtinA)
		require.NoError(t, err)

		assert.True(t, a.MatchesProduct(b))

		c, err := b.WithGTIN(gtinB)
		require.NoError(t, err)
		assert.False(t, a.MatchesProduct(c))
	})

	t.Run("falls back to SKU when GTIN is absent", func(t *testing.T) {
		a, err := document.NewLine(1, "SKU-A", "", 1, mustMoney(t, "1.00"), mustMoney(t, "1.00"))
		require.NoError(t, err)
		b, err := document.NewLine(2, "SKU-A", "", 1, mustMoney(t, "1.00"), mustMoney(t, "1.00"))
		require.NoError(t, err)

		assert.True(t, a.MatchesProduct(b))
	})
}
