package commands_test

import (
	"testing"
	"time"

	"cannacommerce/internal/core/application/usecases/commands"
	"cannacommerce/internal/core/domain/model/custody"
	"cannacommerce/internal/core/domain/model/document"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/core/domain/model/order"
	"cannacommerce/internal/core/domain/services"
	"cannacommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixtureASN(t *testing.T, asnNumber, poNumber string, lines ...document.Line) *document.ShipNotice {
	t.Helper()
	asn, err := document.NewShipNotice(kernel.NewUUID(), asnNumber, poNumber, lines,
		time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return asn
}

func TestSubmitShipNoticeCommandHandler_Handle(t *testing.T) {
	t.Run("full shipment moves the order to shipped and appends custody", func(t *testing.T) {
		ctx := t.Context()
		po := fixturePO(t, fixtureLine(t, 1, "SKU-OGK-35", 100, "7.50", ""))
		asn := fixtureASN(t, "ASN-9001", po.PONumber(),
			fixtureLine(t, 1, "SKU-OGK-35", 100, "7.50", "BATCH-2025-0042"))
		aggregate := fixtureOrder(t, po, order.Acknowledged)

		cmd, err := commands.NewSubmitShipNoticeCommand(asn)
		require.NoError(t, err)

		docRepo := new(MockDocumentRepository)
		orderRepo := new(MockOrderRepository)
		custodyRepo := new(MockCustodyRepository)
		uow := new(MockShipmentUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DocumentRepository").Return(docRepo)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("CustodyRepository").Return(custodyRepo)
		docRepo.On("GetSet", mock.Anything, po.PONumber()).Return(fixtureSet(t, po), nil).Once()
		orderRepo.On("GetByPONumber", mock.Anything, po.PONumber()).Return(aggregate, nil).Once()
		custodyRepo.On("GetChain", mock.Anything, "BATCH-2025-0042").
			Return(nil, errs.NewObjectNotFoundError("batchNumber", "BATCH-2025-0042")).Once()
		custodyRepo.On("AddChain", mock.Anything, mock.AnythingOfType("*custody.Chain")).Return(nil).Once()
		custodyRepo.On("AppendEvent", mock.Anything, "BATCH-2025-0042",
			mock.AnythingOfType("custody.Event")).Return(nil).Once()
		docRepo.On("AddShipNotice", mock.Anything, asn).Return(nil).Once()
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockShipmentUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewSubmitShipNoticeCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, order.Shipped, aggregate.Status())
		assert.Equal(t, order.FulfillmentComplete, aggregate.Fulfillment())

		appended := custodyRepo.Calls[2].Arguments.Get(2).(custody.Event)
		assert.Equal(t, 1, appended.Seq())
		assert.Equal(t, custody.EventTransfer, appended.Type())
		assert.True(t, appended.ToHolder().IsEqual(po.BuyerGLN()))

		custodyRepo.AssertExpectations(t)
	})

	t.Run("partial shipment keeps the order processing", func(t *testing.T) {
		ctx := t.Context()
		po := fixturePO(t, fixtureLine(t, 1, "SKU-OGK-35", 100, "7.50", ""))
		asn := fixtureASN(t, "ASN-9001", po.PONumber(),
			fixtureLine(t, 1, "SKU-OGK-35", 60, "7.50", ""))
		aggregate := fixtureOrder(t, po, order.Acknowledged)

		cmd, err := commands.NewSubmitShipNoticeCommand(asn)
		require.NoError(t, err)

		docRepo := new(MockDocumentRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockShipmentUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DocumentRepository").Return(docRepo)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("CustodyRepository").Return(new(MockCustodyRepository))
		docRepo.On("GetSet", mock.Anything, po.PONumber()).Return(fixtureSet(t, po), nil).Once()
		orderRepo.On("GetByPONumber", mock.Anything, po.PONumber()).Return(aggregate, nil).Once()
		docRepo.On("AddShipNotice", mock.Anything, asn).Return(nil).Once()
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockShipmentUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewSubmitShipNoticeCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, order.Processing, aggregate.Status())
		assert.Equal(t, order.FulfillmentPartial, aggregate.Fulfillment())
		assert.Equal(t, 60, aggregate.ShippedUnits())
	})

	t.Run("over-shipment across notices is rejected", func(t *testing.T) {
		ctx := t.Context()
		po := fixturePO(t, fixtureLine(t, 1, "SKU-OGK-35", 100, "7.50", ""))
		set := fixtureSet(t, po)
		require.NoError(t, set.AttachShipNotice(fixtureASN(t, "ASN-9001", po.PONumber(),
			fixtureLine(t, 1, "SKU-OGK-35", 60, "7.50", ""))))

		second := fixtureASN(t, "ASN-9002", po.PONumber(),
			fixtureLine(t, 1, "SKU-OGK-35", 50, "7.50", ""))
		cmd, err := commands.NewSubmitShipNoticeCommand(second)
		require.NoError(t, err)

		docRepo := new(MockDocumentRepository)
		uow := new(MockShipmentUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DocumentRepository").Return(docRepo).Once()
		docRepo.On("GetSet", mock.Anything, po.PONumber()).Return(set, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockShipmentUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewSubmitShipNoticeCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrConsistencyViolations)
		require.ErrorIs(t, err, services.ErrOverShipment)
		docRepo.AssertNotCalled(t, "AddShipNotice", mock.Anything, mock.Anything)
	})

	t.Run("shipment against a draft order fails the transition", func(t *testing.T) {
		ctx := t.Context()
		po := fixturePO(t, fixtureLine(t, 1, "SKU-OGK-35", 100, "7.50", ""))
		asn := fixtureASN(t, "ASN-9001", po.PONumber(),
			fixtureLine(t, 1, "SKU-OGK-35", 100, "7.50", ""))
		aggregate := fixtureOrder(t, po, order.Draft)

		cmd, err := commands.NewSubmitShipNoticeCommand(asn)
		require.NoError(t, err)

		docRepo := new(MockDocumentRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockShipmentUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DocumentRepository").Return(docRepo).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		docRepo.On("GetSet", mock.Anything, po.PONumber()).Return(fixtureSet(t, po), nil).Once()
		orderRepo.On("GetByPONumber", mock.Anything, po.PONumber()).Return(aggregate, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockShipmentUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewSubmitShipNoticeCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Draft, aggregate.Status())
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
