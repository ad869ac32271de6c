package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/kwhite/itemstore/internal/store"
	"github.com/kwhite/itemstore/pkg/models"
)

// ItemFilter controls which items are returned by List. An empty
// TitleSearch matches everything; a non-empty one matches titles containing
// it as a case-insensitive substring.
type ItemFilter struct {
	TitleSearch string
}

// ItemRepository provides CRUD access to items. Every operation is a single
// round trip; mutating operations commit exactly one transaction before
// returning. Store failures propagate wrapped but otherwise untranslated.
type ItemRepository interface {
	// Get returns a single item by ID, or ErrNotFound.
	Get(ctx context.Context, id int64) (*models.Item, error)

	// List returns a filtered, paginated page of items. The result's Total
	// counts all filter matches regardless of pagination.
	List(ctx context.Context, filter ItemFilter, opts ListOptions) (*ListResult[models.Item], error)

	// Create inserts a new item from the draft and returns the persisted
	// row, including the store-assigned ID and timestamps.
	Create(ctx context.Context, draft models.ItemDraft) (*models.Item, error)

	// Update applies the set fields of the patch to an existing item and
	// returns the refreshed row. Returns ErrNotFound without writing when
	// the item does not exist.
	Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.Item, error)

	// Delete removes an item and returns it as it was immediately before
	// deletion. Returns ErrNotFound without writing when the item does not
	// exist.
	Delete(ctx context.Context, id int64) (*models.Item, error)
}

// Compile-time interface guard.
var _ ItemRepository = (*SQLiteItemRepository)(nil)

// SQLiteItemRepository implements ItemRepository using SQLite.
type SQLiteItemRepository struct {
	store *store.SQLiteStore
	db    *sql.DB
}

// NewSQLiteItemRepository creates an ItemRepository and bootstraps the
// items table.
func NewSQLiteItemRepository(ctx context.Context, st *store.SQLiteStore) (*SQLiteItemRepository, error) {
	if err := st.Migrate(ctx, "items", itemMigrations); err != nil {
		return nil, fmt.Errorf("items migrations: %w", err)
	}
	return &SQLiteItemRepository{store: st, db: st.DB()}, nil
}

// itemColumns is the shared column list for item queries.
const itemColumns = `id, title, description, completed, created_at, updated_at`

func (r *SQLiteItemRepository) Get(ctx context.Context, id int64) (*models.Item, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	it, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return it, nil
}

func (r *SQLiteItemRepository) List(ctx context.Context, filter ItemFilter, opts ListOptions) (*ListResult[models.Item], error) {
	opts = normalizeListOptions(opts)

	// Validate sortBy against allowed columns. Default is id ascending so
	// page boundaries are deterministic.
	sortCol := "id"
	allowedSorts := map[string]string{
		"id":         "id",
		"title":      "title",
		"created_at": "created_at",
	}
	if opts.SortBy != "" {
		if col, ok := allowedSorts[opts.SortBy]; ok {
			sortCol = col
		}
	}

	// Build WHERE clause with parameterized placeholders.
	where := "1=1"
	var args []any

	if filter.TitleSearch != "" {
		// SQLite LIKE is case-insensitive for ASCII.
		where += " AND title LIKE ?"
		args = append(args, "%"+filter.TitleSearch+"%")
	}

	// Count total matching rows before pagination.
	var total int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM items WHERE "+where, args...,
	).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}

	queryArgs := make([]any, 0, len(args)+2)
	queryArgs = append(queryArgs, args...)
	queryArgs = append(queryArgs, opts.Limit, opts.Offset)

	orderDir := "ASC"
	if opts.SortOrder == "desc" {
		orderDir = "DESC"
	}

	query := fmt.Sprintf(
		"SELECT %s FROM items WHERE %s ORDER BY %s %s LIMIT ? OFFSET ?",
		itemColumns, where, sortCol, orderDir,
	)

	rows, err := r.db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	if items == nil {
		items = []models.Item{}
	}

	return &ListResult[models.Item]{Items: items, Total: total}, nil
}

func (r *SQLiteItemRepository) Create(ctx context.Context, draft models.ItemDraft) (*models.Item, error) {
	var created *models.Item
	err := r.store.Tx(ctx, func(tx *sql.Tx) error {
		now := time.Now().UTC()
		res, err := tx.ExecContext(ctx, `
			INSERT INTO items (title, description, completed, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)`,
			draft.Title, draft.Description, draft.Completed, now, now,
		)
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("item insert id: %w", err)
		}

		// Reload so the caller sees the durable row, not the pre-write draft.
		created, err = getItemTx(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *SQLiteItemRepository) Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.Item, error) {
	var updated *models.Item
	err := r.store.Tx(ctx, func(tx *sql.Tx) error {
		if patch.IsZero() {
			// Nothing to apply; return the current row unchanged.
			var err error
			updated, err = getItemTx(ctx, tx, id)
			return err
		}

		set := make([]string, 0, 4)
		args := make([]any, 0, 5)
		if patch.Title != nil {
			set = append(set, "title = ?")
			args = append(args, *patch.Title)
		}
		if patch.Description != nil {
			set = append(set, "description = ?")
			args = append(args, *patch.Description)
		}
		if patch.Completed != nil {
			set = append(set, "completed = ?")
			args = append(args, *patch.Completed)
		}
		set = append(set, "updated_at = ?")
		args = append(args, time.Now().UTC(), id)

		//nolint:gosec // set contains fixed column assignments with placeholders only
		res, err := tx.ExecContext(ctx,
			"UPDATE items SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return fmt.Errorf("update item %d: %w", id, err)
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return ErrNotFound
		}

		updated, err = getItemTx(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *SQLiteItemRepository) Delete(ctx context.Context, id int64) (*models.Item, error) {
	var deleted *models.Item
	err := r.store.Tx(ctx, func(tx *sql.Tx) error {
		var err error
		deleted, err = getItemTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete item %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// getItemTx loads a single item inside an open transaction.
func getItemTx(ctx context.Context, tx *sql.Tx, id int64) (*models.Item, error) {
	row := tx.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	it, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reload item %d: %w", id, err)
	}
	return it, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var it models.Item
	err := row.Scan(
		&it.ID, &it.Title, &it.Description, &it.Completed,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// itemMigrations defines the database schema for items. AUTOINCREMENT keeps
// deleted identifiers from being reused.
var itemMigrations = []store.Migration{
	{
		Version:     1,
		Description: "create items table",
		Up: func(tx *sql.Tx) error {
			stmts := []string{
				`CREATE TABLE items (
					id          INTEGER PRIMARY KEY AUTOINCREMENT,
					title       TEXT NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					completed   INTEGER NOT NULL DEFAULT 0,
					created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
					updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_items_title ON items(title)`,
			}
			for _, stmt := range stmts {
				if _, err := tx.Exec(stmt); err != nil {
					return err
				}
			}
			return nil
		},
	},
}
