package commands_test

import (
	"testing"
	"time"

	"cannacommerce/internal/core/application/usecases/commands"
	"cannacommerce/internal/core/domain/model/inventory"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixtureItem(t *testing.T, sku string, location kernel.GLN, onHand int) *inventory.Item {
	t.Helper()
	item, err := inventory.RestoreItem(kernel.NewUUID(), sku, location, onHand, 0, 0, 0)
	require.NoError(t, err)
	return item
}

func TestNewTransferStockCommand(t *testing.T) {
	occurredAt := time.Date(2025, 3, 20, 11, 0, 0, 0, time.UTC)

	t.Run("should create command", func(t *testing.T) {
		cmd, err := commands.NewTransferStockCommand("SKU-OGK-35",
			mustGLN(t, "0698420391022"), mustGLN(t, "1234567890128"), 25, "BATCH-2025-0042", occurredAt)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 25, cmd.Quantity())
		assert.Equal(t, "BATCH-2025-0042", cmd.BatchNumber())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := commands.NewTransferStockCommand("SKU-OGK-35",
			mustGLN(t, "0698420391022"), mustGLN(t, "1234567890128"), 0, "", occurredAt)
		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("should reject empty sku", func(t *testing.T) {
		_, err := commands.NewTransferStockCommand("",
			mustGLN(t, "0698420391022"), mustGLN(t, "1234567890128"), 25, "", occurredAt)
		require.ErrorIs(t, err, commands.ErrSKUIsRequired)
	})
}

func TestTransferStockCommandHandler_Handle(t *testing.T) {
	occurredAt := time.Date(2025, 3, 20, 11, 0, 0, 0, time.UTC)

	t.Run("moves stock between locations and records the movement", func(t *testing.T) {
		ctx := t.Context()
		from := mustGLN(t, "0698420391022")
		to := mustGLN(t, "1234567890128")
		source := fixtureItem(t, "SKU-OGK-35", from, 80)

		cmd, err := commands.NewTransferStockCommand("SKU-OGK-35", from, to, 25, "BATCH-2025-0042", occurredAt)
		require.NoError(t, err)

		repo := new(MockInventoryRepository)
		uow := new(MockInventoryUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("InventoryRepository").Return(repo).Once()
		repo.On("GetItem", mock.Anything, "SKU-OGK-35", from).Return(source, nil).Once()
		repo.On("GetItem", mock.Anything, "SKU-OGK-35", to).
			Return(nil, errs.NewObjectNotFoundError("sku", "SKU-OGK-35")).Once()
		repo.On("AddItem", mock.Anything, mock.AnythingOfType("*inventory.Item")).Return(nil).Once()
		repo.On("AddMovement", mock.Anything, mock.AnythingOfType("inventory.StockMovement")).Return(nil).Once()
		repo.On("UpdateItem", mock.Anything, mock.AnythingOfType("*inventory.Item")).Return(nil).Twice()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockInventoryUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewTransferStockCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, 55, source.OnHand())

		destination := repo.Calls[2].Arguments.Get(1).(*inventory.Item)
		assert.Equal(t, 25, destination.OnHand())
		assert.True(t, destination.Location().IsEqual(to))

		movement := repo.Calls[3].Arguments.Get(1).(inventory.StockMovement)
		assert.Equal(t, inventory.Transfer, movement.Type())
		assert.Equal(t, "BATCH-2025-0042", movement.BatchNumber())

		repo.AssertExpectations(t)
	})

	t.Run("insufficient source stock rejects the transfer", func(t *testing.T) {
		ctx := t.Context()
		from := mustGLN(t, "0698420391022")
		to := mustGLN(t, "1234567890128")
		source := fixtureItem(t, "SKU-OGK-35", from, 10)
		destination := fixtureItem(t, "SKU-OGK-35", to, 0)

		cmd, err := commands.NewTransferStockCommand("SKU-OGK-35", from, to, 25, "", occurredAt)
		require.NoError(t, err)

		repo := new(MockInventoryRepository)
		uow := new(MockInventoryUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("InventoryRepository").Return(repo).Once()
		repo.On("GetItem", mock.Anything, "SKU-OGK-35", from).Return(source, nil).Once()
		repo.On("GetItem", mock.Anything, "SKU-OGK-35", to).Return(destination, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockInventoryUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewTransferStockCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		var insufficient *inventory.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 25, insufficient.Requested)
		assert.Equal(t, 10, insufficient.Available)

		assert.Equal(t, 10, source.OnHand())
		assert.Zero(t, destination.OnHand())
		repo.AssertNotCalled(t, "AddMovement", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("missing source position surfaces not found", func(t *testing.T) {
		ctx := t.Context()
		from := mustGLN(t, "0698420391022")
		to := mustGLN(t, "1234567890128")

		cmd, err := commands.NewTransferStockCommand("SKU-OGK-35", from, to, 5, "", occurredAt)
		require.NoError(t, err)

		repo := new(MockInventoryRepository)
		uow := new(MockInventoryUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("InventoryRepository").Return(repo).Once()
		repo.On("GetItem", mock.Anything, "SKU-OGK-35", from).
			Return(nil, errs.NewObjectNotFoundError("sku", "SKU-OGK-35")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockInventoryUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewTransferStockCommandHandler(factory)
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything)
	})
}
