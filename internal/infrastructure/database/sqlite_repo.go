package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	"tscat/internal/ports/output"
)

var _ output.CatalogRepository = (*SQLiteRepository)(nil)

// SQLiteRepository stores catalogs in a local SQLite file.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Close() error { return r.db.Close() }

// Save replaces the stored catalog for c.Language() in one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, c *entities.Catalog) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := deleteCatalog(ctx, tx, c.Language()); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO catalogs (language, version, source_language) VALUES (?, ?, ?)`,
		c.Language(), c.Version(), c.SourceLanguage(),
	)
	if err != nil {
		return fmt.Errorf("insert catalog %s: %w", c.Language(), err)
	}
	catalogID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	insertMessage, err := tx.PrepareContext(ctx,
		`INSERT INTO catalog_messages (context_id, position, source, comment, translation, status) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare message insert: %w", err)
	}
	defer insertMessage.Close()

	for pos, cx := range c.Contexts() {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO catalog_contexts (catalog_id, name, position) VALUES (?, ?, ?)`,
			catalogID, cx.Name(), pos,
		)
		if err != nil {
			return fmt.Errorf("insert context %s: %w", cx.Name(), err)
		}
		contextID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for i, e := range cx.Entries() {
			if _, err := insertMessage.ExecContext(ctx, contextID, i, e.Source, e.Comment, e.Translation, string(e.Status)); err != nil {
				return fmt.Errorf("insert message %q: %w", e.Source, err)
			}
		}
	}
	return tx.Commit()
}

// deleteCatalog removes a catalog and its rows, returning how many catalogs were deleted.
func deleteCatalog(ctx context.Context, tx *sql.Tx, language string) (int64, error) {
	_, err := tx.ExecContext(ctx, `
DELETE FROM catalog_messages WHERE context_id IN (
    SELECT c.id FROM catalog_contexts c JOIN catalogs k ON k.id = c.catalog_id WHERE k.language = ?)`, language)
	if err != nil {
		return 0, fmt.Errorf("delete messages %s: %w", language, err)
	}
	_, err = tx.ExecContext(ctx, `
DELETE FROM catalog_contexts WHERE catalog_id IN (SELECT id FROM catalogs WHERE language = ?)`, language)
	if err != nil {
		return 0, fmt.Errorf("delete contexts %s: %w", language, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM catalogs WHERE language = ?`, language)
	if err != nil {
		return 0, fmt.Errorf("delete catalog %s: %w", language, err)
	}
	return res.RowsAffected()
}

func (r *SQLiteRepository) FindByLanguage(ctx context.Context, language string) (*entities.Catalog, error) {
	var c catalogRow
	err := r.db.QueryRowContext(ctx,
		`SELECT id, language, version, source_language FROM catalogs WHERE language = ?`, language,
	).Scan(&c.ID, &c.Language, &c.Version, &c.SourceLanguage)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, language)
	}
	if err != nil {
		return nil, fmt.Errorf("find catalog %s: %w", language, err)
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(selectMessages, "?"), c.ID)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var out []messageRow
	for rows.Next() {
		var (
			name                              string
			source, comment, translation, sts sql.NullString
		)
		if err := rows.Scan(&name, &source, &comment, &translation, &sts); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		out = append(out, messageRow{
			Context:     name,
			Source:      nullStringToPtr(source),
			Comment:     comment.String,
			Translation: translation.String,
			Status:      sts.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rowsToCatalog(c, out), nil
}

func (r *SQLiteRepository) ListLanguages(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT language FROM catalogs ORDER BY language`)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()

	var langs []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, err
		}
		langs = append(langs, l)
	}
	return langs, rows.Err()
}

func (r *SQLiteRepository) Delete(ctx context.Context, language string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	n, err := deleteCatalog(ctx, tx, language)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, language)
	}
	return tx.Commit()
}
