package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/entity"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

const txnColumns = `id, product_id, type, quantity, previous_stock, new_stock, reason, reference, notes, created_by, created_at`

// StockTransactionRepo implementación append-only del libro de transacciones
// sobre PostgreSQL (usable con pool o tx). No hay UPDATE ni DELETE.
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar pool o tx.
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

// Create agrega un asiento al libro.
func (r *StockTransactionRepo) Create(txn *entity.StockTransaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_transactions (` + txnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		txn.ID, txn.ProductID, txn.Type, txn.Quantity, txn.PreviousStock, txn.NewStock,
		txn.Reason, nullIfEmpty(txn.Reference), nullIfEmpty(txn.Notes),
		nullIfEmpty(txn.CreatedBy), txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID.
func (r *StockTransactionRepo) GetByID(id string) (*entity.StockTransaction, error) {
	query := `SELECT ` + txnColumns + ` FROM stock_transactions WHERE id = $1`
	var t entity.StockTransaction
	var reference, notes, createdBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ProductID, &t.Type, &t.Quantity, &t.PreviousStock, &t.NewStock,
		&t.Reason, &reference, &notes, &createdBy, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock transaction: %w", err)
	}
	t.Reference = deref(reference)
	t.Notes = deref(notes)
	t.CreatedBy = deref(createdBy)
	return &t, nil
}

// List lista asientos con paginación, los más recientes primero.
func (r *StockTransactionRepo) List(limit, offset int) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + txnColumns + ` FROM stock_transactions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByProduct lista los asientos de un producto.
func (r *StockTransactionRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + txnColumns + ` FROM stock_transactions WHERE product_id = $3 ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset, productID)
}

func (r *StockTransactionRepo) list(query string, limit, offset int, extra ...any) ([]*entity.StockTransaction, error) {
	args := append([]any{limit, offset}, extra...)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		var reference, notes, createdBy *string
		if err := rows.Scan(&t.ID, &t.ProductID, &t.Type, &t.Quantity, &t.PreviousStock, &t.NewStock,
			&t.Reason, &reference, &notes, &createdBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		t.Reference = deref(reference)
		t.Notes = deref(notes)
		t.CreatedBy = deref(createdBy)
		list = append(list, &t)
	}
	return list, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}
