package cmd

import (
	"time"

	"cannacommerce/internal/adapters/out/postgres"
	"cannacommerce/internal/core/application/usecases/commands"
	"cannacommerce/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateSubmitPurchaseOrderCommandHandler() commands.SubmitPurchaseOrderCommandHandler {
	var f commands.OrderDocumentUoWFactory = FuncOrderDocumentUoWFactory(func() commands.OrderDocumentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitPurchaseOrderCommandHandler(f, time.Now)
}

func (c *CompositionRoot) CreateSubmitAcknowledgmentCommandHandler() commands.SubmitAcknowledgmentCommandHandler {
	var f commands.OrderDocumentUoWFactory = FuncOrderDocumentUoWFactory(func() commands.OrderDocumentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitAcknowledgmentCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitShipNoticeCommandHandler() commands.SubmitShipNoticeCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitShipNoticeCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitInvoiceCommandHandler() commands.SubmitInvoiceCommandHandler {
	var f commands.OrderDocumentUoWFactory = FuncOrderDocumentUoWFactory(func() commands.OrderDocumentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderDocumentUoWFactory = FuncOrderDocumentUoWFactory(func() commands.OrderDocumentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateTransferStockCommandHandler() commands.TransferStockCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransferStockCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordCustodyTransferCommandHandler() commands.RecordCustodyTransferCommandHandler {
	var f commands.CustodyUoWFactory = FuncCustodyUoWFactory(func() commands.CustodyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordCustodyTransferCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetItemsBelowReorderPointQueryHandler() queries.GetItemsBelowReorderPointQueryHandler {
	return queries.NewGetItemsBelowReorderPointQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustodyChainQueryHandler() queries.GetCustodyChainQueryHandler {
	return queries.NewGetCustodyChainQueryHandler(c.gormDB)
}

type FuncOrderDocumentUoWFactory func() commands.OrderDocumentUoW

func (f FuncOrderDocumentUoWFactory) Create() commands.OrderDocumentUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncCustodyUoWFactory func() commands.CustodyUoW

func (f FuncCustodyUoWFactory) Create() commands.CustodyUoW {
	return f()
}
