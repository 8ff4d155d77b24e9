package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/U-Yash/Eyewear-Product-Management/internal/application/dto"
	"github.com/U-Yash/Eyewear-Product-Management/internal/application/ledger"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/entity"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional (snapshot + rollback)
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products map[string]*entity.Product
	txns     []*entity.StockTransaction
}

func newMemStore(products ...*entity.Product) *memStore {
	s := &memStore{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *memStore) clone() *memStore {
	c := &memStore{
		products: make(map[string]*entity.Product, len(s.products)),
		txns:     append([]*entity.StockTransaction(nil), s.txns...),
	}
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	return c
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	if existing, ok := r.s.products[p.ID]; ok {
		stock := existing.StockCount
		cp := *p
		cp.StockCount = stock
		r.s.products[p.ID] = &cp
	}
	return nil
}

func (r *memProductRepo) UpdateStock(productID string, stockCount int64) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.StockCount = stockCount
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

type memTxnRepo struct{ s *memStore }

func (r *memTxnRepo) Create(t *entity.StockTransaction) error {
	cp := *t
	r.s.txns = append(r.s.txns, &cp)
	return nil
}

func (r *memTxnRepo) GetByID(id string) (*entity.StockTransaction, error) {
	for _, t := range r.s.txns {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memTxnRepo) List(limit, offset int) ([]*entity.StockTransaction, error) {
	return append([]*entity.StockTransaction(nil), r.s.txns...), nil
}

func (r *memTxnRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockTransaction, error) {
	var out []*entity.StockTransaction
	for _, t := range r.s.txns {
		if t.ProductID == productID {
			out = append(out, t)
		}
	}
	return out, nil
}

// memTxRunner aplica fn sobre el store; si fn falla restaura el snapshot,
// imitando el commit-or-rollback de la transacción real.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	txnRepo repository.StockTransactionRepository,
) error) error {
	snapshot := r.s.clone()
	if err := fn(&memProductRepo{r.s}, &memTxnRepo{r.s}); err != nil {
		*r.s = *snapshot
		return err
	}
	return nil
}

func testProduct(id string, stock int64) *entity.Product {
	return &entity.Product{
		ID:         id,
		SKU:        "SKU-" + id,
		Name:       "Gafas " + id,
		Price:      decimal.NewFromInt(10),
		StockCount: stock,
		IsActive:   true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Increase
// ──────────────────────────────────────────────────────────────────────────────

func TestIncrease_SumaStockYRegistraIN(t *testing.T) {
	store := newMemStore(testProduct("p1", 5))
	l := ledger.NewStockLedger(&memTxRunner{store})

	result, err := l.Increase(context.Background(), ledger.MovementInput{
		ProductID: "p1", Quantity: 7, Reason: "compra a proveedor", UserID: "u1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(12), result.NewStock)
	assert.Equal(t, int64(12), store.products["p1"].StockCount)

	require.Len(t, store.txns, 1)
	txn := store.txns[0]
	assert.Equal(t, entity.TransactionTypeIN, txn.Type)
	assert.Equal(t, int64(7), txn.Quantity)
	assert.Equal(t, int64(5), txn.PreviousStock)
	assert.Equal(t, int64(12), txn.NewStock)
	assert.Equal(t, "compra a proveedor", txn.Reason)
	assert.Equal(t, "u1", txn.CreatedBy)
}

func TestIncrease_CantidadInvalida(t *testing.T) {
	store := newMemStore(testProduct("p1", 5))
	l := ledger.NewStockLedger(&memTxRunner{store})

	for _, qty := range []int64{0, -3} {
		_, err := l.Increase(context.Background(), ledger.MovementInput{ProductID: "p1", Quantity: qty})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, store.txns, "una entrada inválida no debe registrar asientos")
}

func TestIncrease_ProductoInexistente(t *testing.T) {
	store := newMemStore()
	l := ledger.NewStockLedger(&memTxRunner{store})

	_, err := l.Increase(context.Background(), ledger.MovementInput{ProductID: "nope", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Decrease
// ──────────────────────────────────────────────────────────────────────────────

func TestDecrease_RestaStock(t *testing.T) {
	store := newMemStore(testProduct("p1", 10))
	l := ledger.NewStockLedger(&memTxRunner{store})

	result, err := l.Decrease(context.Background(), ledger.MovementInput{
		ProductID: "p1", Quantity: 4, Reason: "venta mostrador",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), result.NewStock)
	assert.Equal(t, entity.TransactionTypeOUT, result.Transaction.Type)
}

// Si la cantidad supera el disponible el stock queda en cero: no falla y el
// asiento registra la cantidad solicitada, no la efectiva.
func TestDecrease_ClampEnCero(t *testing.T) {
	store := newMemStore(testProduct("p1", 3))
	l := ledger.NewStockLedger(&memTxRunner{store})

	result, err := l.Decrease(context.Background(), ledger.MovementInput{
		ProductID: "p1", Quantity: 10, Reason: "merma",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.NewStock)
	assert.Equal(t, int64(0), store.products["p1"].StockCount)

	require.Len(t, store.txns, 1)
	assert.Equal(t, int64(10), store.txns[0].Quantity, "el asiento lleva la cantidad solicitada")
	assert.Equal(t, int64(3), store.txns[0].PreviousStock)
	assert.Equal(t, int64(0), store.txns[0].NewStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Adjust
// ──────────────────────────────────────────────────────────────────────────────

// Conteo físico: el sistema dice 5 pero hay 2 → Adjust(2) fija el stock y
// registra |2-5| = 3 como cantidad del asiento.
func TestAdjust_ConteoFisicoHaciaAbajo(t *testing.T) {
	store := newMemStore(testProduct("p1", 5))
	l := ledger.NewStockLedger(&memTxRunner{store})

	result, err := l.Adjust(context.Background(), ledger.MovementInput{
		ProductID: "p1", Quantity: 2, Reason: "conteo físico",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.NewStock)
	require.Len(t, store.txns, 1)
	txn := store.txns[0]
	assert.Equal(t, entity.TransactionTypeADJUSTMENT, txn.Type)
	assert.Equal(t, int64(3), txn.Quantity)
	assert.Equal(t, int64(5), txn.PreviousStock)
	assert.Equal(t, int64(2), txn.NewStock)
}

func TestAdjust_HaciaArribaYCero(t *testing.T) {
	store := newMemStore(testProduct("p1", 5))
	l := ledger.NewStockLedger(&memTxRunner{store})

	result, err := l.Adjust(context.Background(), ledger.MovementInput{ProductID: "p1", Quantity: 9})
	require.NoError(t, err)
	assert.Equal(t, int64(9), result.NewStock)
	assert.Equal(t, int64(4), result.Transaction.Quantity)

	result, err = l.Adjust(context.Background(), ledger.MovementInput{ProductID: "p1", Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.NewStock)

	_, err = l.Adjust(context.Background(), ledger.MovementInput{ProductID: "p1", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// DebitForAllocation
// ──────────────────────────────────────────────────────────────────────────────

func TestDebitForAllocation_DescuentaConRazonFija(t *testing.T) {
	store := newMemStore(testProduct("p1", 5))
	l := ledger.NewStockLedger(&memTxRunner{store})

	result, err := l.DebitForAllocation(context.Background(), "p1", 3, "u1", "Ana Admin")
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.NewStock)
	require.Len(t, store.txns, 1)
	txn := store.txns[0]
	assert.Equal(t, entity.TransactionTypeOUT, txn.Type)
	assert.Equal(t, "Admin stock allocation", txn.Reason)
	assert.Equal(t, "Ana Admin", txn.Reference)
	assert.Equal(t, int64(5), txn.PreviousStock)
	assert.Equal(t, int64(2), txn.NewStock)
}

// A diferencia de Decrease, el débito de asignación rechaza cuando no hay
// stock suficiente, sin tocar producto ni libro.
func TestDebitForAllocation_RechazaStockInsuficiente(t *testing.T) {
	store := newMemStore(testProduct("p1", 2))
	l := ledger.NewStockLedger(&memTxRunner{store})

	_, err := l.DebitForAllocation(context.Background(), "p1", 5, "u1", "Ana Admin")
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Gafas p1", insufficient.ProductName)
	assert.Equal(t, int64(2), insufficient.Available)
	assert.Equal(t, int64(5), insufficient.Requested)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(2), store.products["p1"].StockCount, "el stock no debe cambiar")
	assert.Empty(t, store.txns, "no debe registrarse asiento alguno")
}

func TestDebitForAllocation_ProductoInexistente(t *testing.T) {
	store := newMemStore()
	l := ledger.NewStockLedger(&memTxRunner{store})

	_, err := l.DebitForAllocation(context.Background(), "nope", 1, "u1", "Ana Admin")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// Débito exacto del stock disponible: permitido, deja el stock en cero.
func TestDebitForAllocation_StockExacto(t *testing.T) {
	store := newMemStore(testProduct("p1", 4))
	l := ledger.NewStockLedger(&memTxRunner{store})

	result, err := l.DebitForAllocation(context.Background(), "p1", 4, "u1", "Ana Admin")
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.NewStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Histórico
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_ListaPorProducto(t *testing.T) {
	store := newMemStore(testProduct("p1", 5), testProduct("p2", 5))
	l := ledger.NewStockLedger(&memTxRunner{store})

	_, err := l.Increase(context.Background(), ledger.MovementInput{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)
	_, err = l.Increase(context.Background(), ledger.MovementInput{ProductID: "p2", Quantity: 1})
	require.NoError(t, err)

	history := ledger.NewHistoryUseCase(&memTxnRepo{store})
	txns, err := history.ListTransactions(context.Background(), "p1", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "p1", txns[0].ProductID)

	all, err := history.ListTransactions(context.Background(), "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
