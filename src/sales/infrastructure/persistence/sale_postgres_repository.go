package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/entity"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/port"
	domainCriteria "github.com/roothery/abi-gth-omnia-developer-evaluation/src/shared/domain/criteria"
	sqlCriteria "github.com/roothery/abi-gth-omnia-developer-evaluation/src/shared/infrastructure/criteria"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL
type SalePostgresRepository struct {
	db        *sql.DB
	converter *sqlCriteria.SQLCriteriaConverter
}

// NewSalePostgresRepository crea una nueva instancia del repositorio
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{
		db:        db,
		converter: sqlCriteria.NewSQLCriteriaConverter(),
	}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// Create persiste la venta con sus items de forma atómica
func (r *SalePostgresRepository) Create(ctx context.Context, sale *entity.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	querySale := `
		INSERT INTO sales (
			id, sale_number, sale_date, customer, branch, is_cancelled, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	_, err = tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.SaleNumber,
		sale.SaleDate,
		sale.Customer,
		sale.Branch,
		sale.IsCancelled,
		sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrSaleNumberExists
		}
		return fmt.Errorf("error creating sale: %w", err)
	}

	if err = insertItems(ctx, tx, sale); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func insertItems(ctx context.Context, tx *sql.Tx, sale *entity.Sale) error {
	queryItem := `
		INSERT INTO sale_items (
			id, sale_id, product, quantity, unit_price, discount, is_cancelled, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW()
		)
	`

	for _, item := range sale.Items {
		_, err := tx.ExecContext(ctx, queryItem,
			item.ID,
			item.SaleID,
			item.Product,
			item.Quantity,
			item.UnitPrice,
			item.Discount,
			item.IsCancelled,
		)
		if err != nil {
			return fmt.Errorf("error creating sale_item for product %s: %w", item.Product, err)
		}
	}

	return nil
}

const saleColumns = `
	SELECT id, sale_number, sale_date, customer, branch, is_cancelled, created_at
	FROM sales
`

func (r *SalePostgresRepository) scanSale(row *sql.Row) (*entity.Sale, error) {
	sale := &entity.Sale{}
	err := row.Scan(
		&sale.ID,
		&sale.SaleNumber,
		&sale.SaleDate,
		&sale.Customer,
		&sale.Branch,
		&sale.IsCancelled,
		&sale.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrSaleNotFound
		}
		return nil, fmt.Errorf("error scanning sale: %w", err)
	}
	return sale, nil
}

// GetByID retorna la venta con sus items o ErrSaleNotFound
func (r *SalePostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	row := r.db.QueryRowContext(ctx, saleColumns+`WHERE id = $1`, id)

	sale, err := r.scanSale(row)
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// GetBySaleNumber retorna la venta con sus items o ErrSaleNotFound
func (r *SalePostgresRepository) GetBySaleNumber(ctx context.Context, saleNumber string) (*entity.Sale, error) {
	row := r.db.QueryRowContext(ctx, saleColumns+`WHERE sale_number = $1`, saleNumber)

	sale, err := r.scanSale(row)
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func buildCriteria(filters port.ListFilters) domainCriteria.Criteria {
	f := domainCriteria.NewFilters()

	if filters.SaleNumber != "" {
		f.Add(domainCriteria.NewFilter("sale_number", domainCriteria.OpILike, filters.SaleNumber))
	}
	if filters.IsCancelled != nil {
		f.Add(domainCriteria.NewFilter("is_cancelled", domainCriteria.OpEqual, *filters.IsCancelled))
	}
	if filters.Branch != nil {
		f.Add(domainCriteria.NewFilter("branch", domainCriteria.OpEqual, string(*filters.Branch)))
	}
	if filters.Customer != nil {
		f.Add(domainCriteria.NewFilter("customer", domainCriteria.OpEqual, string(*filters.Customer)))
	}
	if filters.StartDate != nil {
		f.Add(domainCriteria.NewFilter("sale_date", domainCriteria.OpGreaterThanOrEqual, *filters.StartDate))
	}
	if filters.EndDate != nil {
		f.Add(domainCriteria.NewFilter("sale_date", domainCriteria.OpLessThanOrEqual, *filters.EndDate))
	}

	sortBy := filters.SortBy
	if !port.SortableField(sortBy) {
		sortBy = "created_at"
	}
	orderType := domainCriteria.ASC
	if filters.IsDesc {
		orderType = domainCriteria.DESC
	}

	c := domainCriteria.NewCriteria(f, domainCriteria.NewOrder(sortBy, orderType), nil, nil)
	return c.WithPage(filters.Page, filters.PageSize)
}

// List retorna la página filtrada y el total de registros que cumplen el filtro
func (r *SalePostgresRepository) List(ctx context.Context, filters port.ListFilters) (*port.SalePage, error) {
	criteria := buildCriteria(filters)

	countQuery, countParams := r.converter.ToCountSQL(`SELECT COUNT(*) FROM sales`, criteria)

	var totalCount int
	if err := r.db.QueryRowContext(ctx, countQuery, countParams...).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("error counting sales: %w", err)
	}

	query, params := r.converter.ToSelectSQL(saleColumns, criteria)

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		sale := &entity.Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.SaleNumber,
			&sale.SaleDate,
			&sale.Customer,
			&sale.Branch,
			&sale.IsCancelled,
			&sale.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, sale)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	for _, sale := range sales {
		if err := r.loadItems(ctx, sale); err != nil {
			return nil, err
		}
	}

	return &port.SalePage{
		Items:      sales,
		Page:       filters.Page,
		PageSize:   filters.PageSize,
		TotalCount: totalCount,
	}, nil
}

func (r *SalePostgresRepository) loadItems(ctx context.Context, sale *entity.Sale) error {
	queryItems := `
		SELECT id, sale_id, product, quantity, unit_price, discount, is_cancelled
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, queryItems, sale.ID)
	if err != nil {
		return fmt.Errorf("error querying sale_items: %w", err)
	}
	defer rows.Close()

	var items []entity.SaleItem
	for rows.Next() {
		item := entity.SaleItem{}
		err := rows.Scan(
			&item.ID,
			&item.SaleID,
			&item.Product,
			&item.Quantity,
			&item.UnitPrice,
			&item.Discount,
			&item.IsCancelled,
		)
		if err != nil {
			return fmt.Errorf("error scanning sale_item: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating sale_items: %w", err)
	}

	sale.Items = items
	return nil
}

// Update reescribe la venta y reemplaza sus items en una transacción
func (r *SalePostgresRepository) Update(ctx context.Context, sale *entity.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	querySale := `
		UPDATE sales
		SET sale_number = $2, sale_date = $3, customer = $4, branch = $5, is_cancelled = $6
		WHERE id = $1
	`

	result, err := tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.SaleNumber,
		sale.SaleDate,
		sale.Customer,
		sale.Branch,
		sale.IsCancelled,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrSaleNumberExists
		}
		return fmt.Errorf("error updating sale: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update result: %w", err)
	}
	if affected == 0 {
		return entity.ErrSaleNotFound
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, sale.ID); err != nil {
		return fmt.Errorf("error clearing sale_items: %w", err)
	}

	if err = insertItems(ctx, tx, sale); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// Delete elimina la venta y sus items; retorna false si no existía
func (r *SalePostgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, id); err != nil {
		return false, fmt.Errorf("error deleting sale_items: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting sale: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading delete result: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("error committing transaction: %w", err)
	}

	return affected > 0, nil
}

// GetItemByID retorna el item o ErrSaleItemNotFound
func (r *SalePostgresRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product, quantity, unit_price, discount, is_cancelled
		FROM sale_items
		WHERE id = $1
	`

	item := &entity.SaleItem{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.SaleID,
		&item.Product,
		&item.Quantity,
		&item.UnitPrice,
		&item.Discount,
		&item.IsCancelled,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrSaleItemNotFound
		}
		return nil, fmt.Errorf("error scanning sale_item: %w", err)
	}

	return item, nil
}

// UpdateItem reescribe un item puntual
func (r *SalePostgresRepository) UpdateItem(ctx context.Context, item *entity.SaleItem) error {
	query := `
		UPDATE sale_items
		SET product = $2, quantity = $3, unit_price = $4, discount = $5, is_cancelled = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Product,
		item.Quantity,
		item.UnitPrice,
		item.Discount,
		item.IsCancelled,
	)
	if err != nil {
		return fmt.Errorf("error updating sale_item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update result: %w", err)
	}
	if affected == 0 {
		return entity.ErrSaleItemNotFound
	}

	return nil
}

// DeleteItem elimina un item puntual; retorna false si no existía
func (r *SalePostgresRepository) DeleteItem(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sale_items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting sale_item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading delete result: %w", err)
	}

	return affected > 0, nil
}
