package pgdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const productColumns = `id, created_at, name, description, price, "setType", colors, "imageURLs"`

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// buildListQuery собирает SQL выборки по фильтрам. Поиск — регистронезависимая
// подстрока по имени; ценовые границы включительны; выборка по категориям
// пропускается целиком, когда запрошено полное перечисление. Цветовой фильтр
// сюда не входит — он применяется после запроса, в памяти.
func buildListQuery(filters *usecase.ProductFilters) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if filters != nil {
		if search := strings.TrimSpace(filters.Search); search != "" {
			args = append(args, "%"+search+"%")
			conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
		}

		if len(filters.SetTypes) > 0 && !coversAllSetTypes(filters.SetTypes) {
			setTypes := make([]string, 0, len(filters.SetTypes))
			for _, setType := range filters.SetTypes {
				setTypes = append(setTypes, string(setType))
			}
			args = append(args, setTypes)
			conditions = append(conditions, fmt.Sprintf(`"setType" = ANY($%d)`, len(args)))
		}

		if filters.MinPrice != nil {
			args = append(args, *filters.MinPrice)
			conditions = append(conditions, fmt.Sprintf("price >= $%d", len(args)))
		}

		if filters.MaxPrice != nil {
			args = append(args, *filters.MaxPrice)
			conditions = append(conditions, fmt.Sprintf("price <= $%d", len(args)))
		}
	}

	query := "SELECT " + productColumns + " FROM products"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	return query, args
}

// coversAllSetTypes сообщает, содержит ли запрошенный набор полное
// перечисление категорий. В этом случае фильтр эквивалентен его отсутствию.
func coversAllSetTypes(requested []domain.SetType) bool {
	for _, setType := range domain.AllSetTypes() {
		found := false
		for _, r := range requested {
			if r == setType {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// List возвращает товары по фильтрам, новые первыми.
func (p *ProductRepo) List(ctx context.Context, filters *usecase.ProductFilters) ([]*domain.Product, error) {
	query, args := buildListQuery(filters)

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.ProductModel
	for rows.Next() {
		var model converter.ProductModel
		if err := scanProduct(rows, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	products := p.conv.ToArrEntity(models)
	if products == nil {
		products = []*domain.Product{}
	}

	return products, nil
}

// GetByID возвращает товар по идентификатору; (nil, nil) при отсутствии записи.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE id = $1"

	var model converter.ProductModel
	row := p.pool.QueryRow(ctx, query, id)
	if err := scanProduct(row, &model); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Prices возвращает значения колонки price всех товаров, включая NULL.
func (p *ProductRepo) Prices(ctx context.Context) ([]*float64, error) {
	rows, err := p.pool.Query(ctx, "SELECT price FROM products")
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var prices []*float64
	for rows.Next() {
		var price *float64
		if err := rows.Scan(&price); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		prices = append(prices, price)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return prices, nil
}

// AllColors возвращает нормализованные списки цветов всех товаров.
// Товары без цветов дают nil-элемент.
func (p *ProductRepo) AllColors(ctx context.Context) ([][]string, error) {
	rows, err := p.pool.Query(ctx, "SELECT colors FROM products")
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var colorLists [][]string
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		colorLists = append(colorLists, converter.NormalizeStringList(raw))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return colorLists, nil
}

// Create сохраняет товар; id и created_at назначает БД. Пустые списки
// colors/"imageURLs" сохраняются как NULL силами конвертера.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (name, description, price, "setType", colors, "imageURLs")
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + productColumns + `;
	`

	in := p.conv.ToModel(product)

	var model converter.ProductModel
	row := tx.QueryRow(ctx, query,
		in.Name, in.Description, in.Price, in.SetType, in.Colors, in.ImageURLs,
	)
	if err := scanProduct(row, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Update меняет только переданные поля. Явно пустой список сохраняется как
// NULL. Возвращает ошибку pgx.ErrNoRows, если товара с таким id нет.
func (p *ProductRepo) Update(ctx context.Context, id int64, req *usecase.UpdateProductReq) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var (
		assignments []string
		args        []any
	)

	if req.Name != nil {
		args = append(args, *req.Name)
		assignments = append(assignments, fmt.Sprintf("name = $%d", len(args)))
	}
	if req.Description != nil {
		args = append(args, *req.Description)
		assignments = append(assignments, fmt.Sprintf("description = $%d", len(args)))
	}
	if req.Price != nil {
		args = append(args, *req.Price)
		assignments = append(assignments, fmt.Sprintf("price = $%d", len(args)))
	}
	if req.SetType != nil {
		args = append(args, string(*req.SetType))
		assignments = append(assignments, fmt.Sprintf(`"setType" = $%d`, len(args)))
	}
	if req.Colors != nil {
		args = append(args, converter.MarshalStringList(*req.Colors))
		assignments = append(assignments, fmt.Sprintf("colors = $%d", len(args)))
	}
	if req.ImageURLs != nil {
		args = append(args, converter.MarshalStringList(*req.ImageURLs))
		assignments = append(assignments, fmt.Sprintf(`"imageURLs" = $%d`, len(args)))
	}

	if len(assignments) == 0 {
		return p.getByIDTx(ctx, tx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = $%d RETURNING %s;",
		strings.Join(assignments, ", "), len(args), productColumns,
	)

	var model converter.ProductModel
	row := tx.QueryRow(ctx, query, args...)
	if err := scanProduct(row, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Delete удаляет строку товара. Возвращает false без ошибки, если строки не было.
func (p *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	result, err := tx.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (p *ProductRepo) getByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*domain.Product, error) {
	var model converter.ProductModel
	row := tx.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	if err := scanProduct(row, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func scanProduct(row pgx.Row, model *converter.ProductModel) error {
	return row.Scan(
		&model.ID, &model.CreatedAt, &model.Name, &model.Description,
		&model.Price, &model.SetType, &model.Colors, &model.ImageURLs,
	)
}
