package commands_test

import (
	"context"
	"testing"
	"time"

	"cannacommerce/internal/core/application/usecases/commands"
	"cannacommerce/internal/core/domain/model/custody"
	"cannacommerce/internal/core/domain/model/document"
	"cannacommerce/internal/core/domain/model/inventory"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/core/domain/model/order"
	"cannacommerce/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByPONumber(ctx context.Context, poNumber string) (*order.Order, error) {
	args := m.Called(ctx, poNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllOpen(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) AddPurchaseOrder(ctx context.Context, po *document.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockDocumentRepository) AddAcknowledgment(ctx context.Context, ack *document.Acknowledgment) error {
	args := m.Called(ctx, ack)
	return args.Error(0)
}

func (m *MockDocumentRepository) AddShipNotice(ctx context.Context, asn *document.ShipNotice) error {
	args := m.Called(ctx, asn)
	return args.Error(0)
}

func (m *MockDocumentRepository) AddInvoice(ctx context.Context, inv *document.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockDocumentRepository) GetSet(ctx context.Context, poNumber string) (*document.Set, error) {
	args := m.Called(ctx, poNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Set), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) AddItem(ctx context.Context, item *inventory.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) UpdateItem(ctx context.Context, item *inventory.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) GetItem(ctx context.Context, sku string, location kernel.GLN) (*inventory.Item, error) {
	args := m.Called(ctx, sku, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

func (m *MockInventoryRepository) AddMovement(ctx context.Context, movement inventory.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockInventoryRepository) GetMovements(ctx context.Context, sku string, location kernel.GLN) ([]inventory.StockMovement, error) {
	args := m.Called(ctx, sku, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.StockMovement), args.Error(1)
}

type MockCustodyRepository struct{ mock.Mock }

func (m *MockCustodyRepository) AddChain(ctx context.Context, chain *custody.Chain) error {
	args := m.Called(ctx, chain)
	return args.Error(0)
}

func (m *MockCustodyRepository) AppendEvent(ctx context.Context, batchNumber string, event custody.Event) error {
	args := m.Called(ctx, batchNumber, event)
	return args.Error(0)
}

func (m *MockCustodyRepository) GetChain(ctx context.Context, batchNumber string) (*custody.Chain, error) {
	args := m.Called(ctx, batchNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*custody.Chain), args.Error(1)
}

// txMock provides the shared Begin/Commit/Rollback trio for the UoW mocks.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderDocumentUoW struct{ txMock }

func (m *MockOrderDocumentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderDocumentUoW) DocumentRepository() ports.DocumentRepository {
	args := m.Called()
	return args.Get(0).(ports.DocumentRepository)
}

type MockOrderDocumentUoWFactory struct{ mock.Mock }

func (m *MockOrderDocumentUoWFactory) Create() commands.OrderDocumentUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderDocumentUoW)
}

type MockShipmentUoW struct{ MockOrderDocumentUoW }

func (m *MockShipmentUoW) CustodyRepository() ports.CustodyRepository {
	args := m.Called()
	return args.Get(0).(ports.CustodyRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockDeliveryUoW struct{ MockOrderDocumentUoW }

func (m *MockDeliveryUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockInventoryUoW struct{ txMock }

func (m *MockInventoryUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

type MockCustodyUoW struct{ txMock }

func (m *MockCustodyUoW) CustodyRepository() ports.CustodyRepository {
	args := m.Called()
	return args.Get(0).(ports.CustodyRepository)
}

type MockCustodyUoWFactory struct{ mock.Mock }

func (m *MockCustodyUoWFactory) Create() commands.CustodyUoW {
	args := m.Called()
	return args.Get(0).(commands.CustodyUoW)
}

// Shared fixtures.

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

func fixtureLine(t *testing.T, lineNumber int, sku string, qty int, unitPrice, batch string) document.Line {
	t.Helper()
	price := mustMoney(t, unitPrice)
	total, err := price.MulInt(qty)
	require.NoError(t, err)
	line, err := document.NewLine(lineNumber, sku, "", qty, price, total)
	require.NoError(t, err)
	if batch != "" {
		line = line.WithBatchNumber(batch)
	}
	return line
}

func fixturePO(t *testing.T, lines ...document.Line) *document.PurchaseOrder {
	t.Helper()
	subtotal, err := kernel.Zero("USD")
	require.NoError(t, err)
	for _, line := range lines {
		subtotal, err = subtotal.Add(line.LineTotal())
		require.NoError(t, err)
	}

	po, err := document.NewPurchaseOrder(kernel.NewUUID(), "PO-2025-0001",
		mustGLN(t, "0698420391022"), mustGLN(t, "1234567890128"), lines,
		subtotal, mustMoney(t, "0.00"), subtotal, fixtureOrderDate())
	require.NoError(t, err)
	return po
}

func fixtureSet(t *testing.T, po *document.PurchaseOrder) *document.Set {
	t.Helper()
	set, err := document.NewSet(po)
	require.NoError(t, err)
	return set
}

func fixtureOrderDate() time.Time {
	return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
}

func fixtureOrder(t *testing.T, po *document.PurchaseOrder, status order.Status) *order.Order {
	t.Helper()
	orderedUnits := 0
	for _, line := range po.Lines() {
		orderedUnits += line.Quantity()
	}

	o, err := order.NewOrder(kernel.NewUUID(), po.PONumber(), po.BuyerGLN(), po.SellerGLN(), orderedUnits)
	require.NoError(t, err)

	switch status {
	case order.Submitted:
		require.NoError(t, o.Submit(fixtureOrderDate()))
	case order.Acknowledged:
		require.NoError(t, o.Submit(fixtureOrderDate()))
		require.NoError(t, o.Acknowledge("ACK-551", false))
	case order.Shipped:
		require.NoError(t, o.Submit(fixtureOrderDate()))
		require.NoError(t, o.Acknowledge("ACK-551", false))
		require.NoError(t, o.RecordShipment("ASN-9001", orderedUnits))
	case order.Draft:
	default:
		t.Fatalf("unsupported fixture status %s", status)
	}
	return o
}
