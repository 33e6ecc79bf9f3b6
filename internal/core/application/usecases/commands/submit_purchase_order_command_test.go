package commands_test

import (
	"errors"
	"testing"
	"time"

	"cannacommerce/internal/core/application/usecases/commands"
	"cannacommerce/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitPurchaseOrderCommand(t *testing.T) {
	t.Run("should wrap a valid purchase order", func(t *testing.T) {
		po := fixturePO(t, fixtureLine(t, 1, "SKU-OGK-35", 100, "7.50", ""))

		cmd, err := commands.NewSubmitPurchaseOrderCommand(po)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Same(t, po, cmd.PurchaseOrder())
	})

	t.Run("should reject nil purchase order", func(t *testing.T) {
		_, err := commands.NewSubmitPurchaseOrderCommand(nil)
		require.Error(t, err)
	})

	t.Run("zero-value command fails validation", func(t *testing.T) {
		var cmd commands.SubmitPurchaseOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrSubmitPurchaseOrderCommandIsNotConstructed)
	})
}

func TestSubmitPurchaseOrderCommandHandler_Handle(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC) }

	t.Run("stores the document and opens the lifecycle as submitted", func(t *testing.T) {
		ctx := t.Context()
		po := fixturePO(t, fixtureLine(t, 1, "SKU-OGK-35", 100, "7.50", ""))
		cmd, err := commands.NewSubmitPurchaseOrderCommand(po)
		require.NoError(t, err)

		docRepo := new(MockDocumentRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockOrderDocumentUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("DocumentRepository").Return(docRepo).Once(),
			docRepo.On("AddPurchaseOrder", mock.Anything, po).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockOrderDocumentUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewSubmitPurchaseOrderCommandHandler(factory, now)
		require.NoError(t, h.Handle(ctx, cmd))

		added := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
		assert.Equal(t, order.Submitted, added.Status())
		assert.Equal(t, po.PONumber(), added.PONumber())
		assert.Equal(t, 100, added.OrderedUnits())
		require.NotNil(t, added.SubmittedAt())
		assert.Equal(t, now(), *added.SubmittedAt())

		docRepo.AssertExpectations(t)
		orderRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
		factory.AssertExpectations(t)
	})

	t.Run("rolls back when the document cannot be stored", func(t *testing.T) {
		ctx := t.Context()
		po := fixturePO(t, fixtureLine(t, 1, "SKU-OGK-35", 100, "7.50", ""))
		cmd, err := commands.NewSubmitPurchaseOrderCommand(po)
		require.NoError(t, err)

		storeErr := errors.New("duplicate po number")
		docRepo := new(MockDocumentRepository)
		uow := new(MockOrderDocumentUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DocumentRepository").Return(docRepo).Once()
		docRepo.On("AddPurchaseOrder", mock.Anything, po).Return(storeErr).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockOrderDocumentUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewSubmitPurchaseOrderCommandHandler(factory, now)
		require.ErrorIs(t, h.Handle(ctx, cmd), storeErr)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("unconstructed command is rejected before any transaction", func(t *testing.T) {
		factory := new(MockOrderDocumentUoWFactory)
		h := commands.NewSubmitPurchaseOrderCommandHandler(factory, now)

		err := h.Handle(t.Context(), commands.SubmitPurchaseOrderCommand{})
		require.Error(t, err)
		factory.AssertNotCalled(t, "Create")
	})
}
