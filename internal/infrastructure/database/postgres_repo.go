package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	"tscat/internal/ports/output"
)

var _ output.CatalogRepository = (*PostgresRepository)(nil)

// PostgresRepository stores catalogs in PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// Save replaces the stored catalog for c.Language() in one transaction.
func (r *PostgresRepository) Save(ctx context.Context, c *entities.Catalog) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM catalogs WHERE language = $1`, c.Language()); err != nil {
		return fmt.Errorf("delete catalog %s: %w", c.Language(), err)
	}

	var catalogID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO catalogs (language, version, source_language) VALUES ($1, $2, $3) RETURNING id`,
		c.Language(), c.Version(), c.SourceLanguage(),
	).Scan(&catalogID)
	if err != nil {
		return fmt.Errorf("insert catalog %s: %w", c.Language(), err)
	}

	var messages [][]any
	for pos, cx := range c.Contexts() {
		var contextID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO catalog_contexts (catalog_id, name, position) VALUES ($1, $2, $3) RETURNING id`,
			catalogID, cx.Name(), pos,
		).Scan(&contextID)
		if err != nil {
			return fmt.Errorf("insert context %s: %w", cx.Name(), err)
		}
		for i, e := range cx.Entries() {
			messages = append(messages, []any{contextID, i, e.Source, e.Comment, e.Translation, string(e.Status)})
		}
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"catalog_messages"},
		[]string{"context_id", "position", "source", "comment", "translation", "status"},
		pgx.CopyFromRows(messages),
	)
	if err != nil {
		return fmt.Errorf("copy messages: %w", err)
	}
	return tx.Commit(ctx)
}

func (r *PostgresRepository) FindByLanguage(ctx context.Context, language string) (*entities.Catalog, error) {
	var c catalogRow
	err := r.pool.QueryRow(ctx,
		`SELECT id, language, version, source_language FROM catalogs WHERE language = $1`, language,
	).Scan(&c.ID, &c.Language, &c.Version, &c.SourceLanguage)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, language)
	}
	if err != nil {
		return nil, fmt.Errorf("find catalog %s: %w", language, err)
	}

	rows, err := r.pool.Query(ctx, fmt.Sprintf(selectMessages, "$1"), c.ID)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var out []messageRow
	for rows.Next() {
		var (
			name                              string
			source, comment, translation, sts pgtype.Text
		)
		if err := rows.Scan(&name, &source, &comment, &translation, &sts); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		out = append(out, messageRow{
			Context:     name,
			Source:      pgtypeTextToPtr(source),
			Comment:     pgtypeTextToString(comment),
			Translation: pgtypeTextToString(translation),
			Status:      pgtypeTextToString(sts),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rowsToCatalog(c, out), nil
}

func (r *PostgresRepository) ListLanguages(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT language FROM catalogs ORDER BY language`)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (r *PostgresRepository) Delete(ctx context.Context, language string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM catalogs WHERE language = $1`, language)
	if err != nil {
		return fmt.Errorf("delete catalog %s: %w", language, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, language)
	}
	return nil
}
