package menu_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"PosBridge/internal/domain/menu"
	"PosBridge/pkg/postgres"
)

// PgMenuRepo serves the read-only menu browse queries.
type PgMenuRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgMenuRepo(pg *postgres.Postgres) *PgMenuRepo {
	return &PgMenuRepo{db: pg.Pool, builder: pg.Builder}
}

func (r *PgMenuRepo) GetCategory(ctx context.Context, id int64) (*menu.Category, error) {
	sql, args, err := r.selectCategories().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build category query: %w", err)
	}

	var c menu.Category
	row := r.db.QueryRow(ctx, sql, args...)
	err = row.Scan(&c.ID, &c.Name, &c.ParentID, &c.Sequence, &c.HasImage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query category: %w", err)
	}

	return &c, nil
}

func (r *PgMenuRepo) ListCategories(ctx context.Context, configID int64, parentID *int64) ([]menu.Category, error) {
	query := r.selectCategories().
		Where(squirrel.Eq{"config_id": configID}).
		OrderBy("sequence", "id")
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where(squirrel.Eq{"parent_id": *parentID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build categories query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []menu.Category
	for rows.Next() {
		var c menu.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID, &c.Sequence, &c.HasImage); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}

func (r *PgMenuRepo) ListProducts(ctx context.Context, categoryID int64) ([]menu.Product, error) {
	sql, args, err := r.builder.
		Select("id", "name", "list_price", "price_incl", "category_id", "description", "has_image").
		From("pos_products").
		Where(squirrel.Eq{"category_id": categoryID, "available_in_pos": true, "active": true}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build products query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []menu.Product
	for rows.Next() {
		var p menu.Product
		var description *string
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.PriceIncl, &p.CategoryID, &description, &p.HasImage); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		if description != nil {
			p.Description = *description
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *PgMenuRepo) ListLanguages(ctx context.Context) ([]menu.Language, error) {
	sql, args, err := r.builder.
		Select("code", "name", "flag_url").
		From("languages").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build languages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query languages: %w", err)
	}
	defer rows.Close()

	var languages []menu.Language
	for rows.Next() {
		var l menu.Language
		var flagURL *string
		if err := rows.Scan(&l.Code, &l.Name, &flagURL); err != nil {
			return nil, fmt.Errorf("scan language row: %w", err)
		}
		if flagURL != nil {
			l.FlagURL = *flagURL
		}
		languages = append(languages, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate language rows: %w", err)
	}

	return languages, nil
}

func (r *PgMenuRepo) HasChildren(ctx context.Context, categoryID int64) (bool, error) {
	sql, args, err := r.builder.
		Select("1").
		From("pos_categories").
		Where(squirrel.Eq{"parent_id": categoryID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build children query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("query children: %w", err)
	}

	return true, nil
}

func (r *PgMenuRepo) selectCategories() squirrel.SelectBuilder {
	return r.builder.
		Select("id", "name", "parent_id", "sequence", "has_image").
		From("pos_categories")
}
