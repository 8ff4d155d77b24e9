package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/U-Yash/Eyewear-Product-Management/internal/domain"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/entity"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

const billColumns = `id, bill_number, admin_id, subtotal, tax, discount, total, status, due_date, notes, created_by, created_at, updated_at`

// BillRepo implementación del puerto BillRepository sobre PostgreSQL
// (usable con pool o tx).
type BillRepo struct {
	q Querier
}

// NewBillRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// Create persiste el encabezado de la factura. Una violación del constraint
// único de bill_number se reporta como ErrDuplicate para que el caller
// reintente con otro consecutivo.
func (r *BillRepo) Create(bill *entity.Bill) error {
	query := `
		INSERT INTO bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		bill.ID, bill.BillNumber, bill.AdminID, bill.Subtotal, bill.Tax, bill.Discount,
		bill.Total, bill.Status, bill.DueDate, nullIfEmpty(bill.Notes),
		nullIfEmpty(bill.CreatedBy), bill.CreatedAt, bill.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de factura.
func (r *BillRepo) CreateItem(item *entity.BillItem) error {
	query := `
		INSERT INTO bill_items (id, bill_id, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.BillID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert bill item: %w", err)
	}
	return nil
}

// GetByID obtiene el encabezado de una factura (sin líneas).
func (r *BillRepo) GetByID(id string) (*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE id = $1`
	b, err := scanBill(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return b, nil
}

// GetItemsByBillID obtiene las líneas de una factura.
func (r *BillRepo) GetItemsByBillID(billID string) ([]entity.BillItem, error) {
	query := `
		SELECT id, bill_id, product_id, quantity, unit_price, total_price
		FROM bill_items WHERE bill_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, billID)
	if err != nil {
		return nil, fmt.Errorf("list bill items: %w", err)
	}
	defer rows.Close()
	var items []entity.BillItem
	for rows.Next() {
		var it entity.BillItem
		if err := rows.Scan(&it.ID, &it.BillID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan bill item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// List lista encabezados de factura con paginación, los más recientes primero.
func (r *BillRepo) List(limit, offset int) ([]*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// CountAll cuenta todas las facturas. Alimenta el consecutivo del número de
// factura; se invoca dentro de la misma transacción que el INSERT.
func (r *BillRepo) CountAll() (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM bills`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count bills: %w", err)
	}
	return count, nil
}

// UpdateStatus cambia el estado de la factura. Si el ID no existe retorna
// ErrNotFound.
func (r *BillRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE bills SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update bill status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBill(row pgx.Row) (*entity.Bill, error) {
	var b entity.Bill
	var notes, createdBy *string
	err := row.Scan(
		&b.ID, &b.BillNumber, &b.AdminID, &b.Subtotal, &b.Tax, &b.Discount,
		&b.Total, &b.Status, &b.DueDate, &notes, &createdBy, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Notes = deref(notes)
	b.CreatedBy = deref(createdBy)
	return &b, nil
}
