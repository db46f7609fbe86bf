package postgres

import (
	"bransfer_gateway/internal/domain/entities"
	"bransfer_gateway/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id             TEXT PRIMARY KEY,
		order_key      TEXT NOT NULL,
		status         TEXT NOT NULL,
		total          NUMERIC(12, 2) NOT NULL,
		currency       TEXT NOT NULL,
		payment_method TEXT NOT NULL,
		cart_id        TEXT NOT NULL DEFAULT '',
		transaction_id TEXT NOT NULL DEFAULT '',
		paid_at        TIMESTAMPTZ,
		meta           JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_notes (
		id         UUID PRIMARY KEY,
		order_id   TEXT NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
		content    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS order_notes_order_id_idx ON order_notes (order_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS carts (
		id         TEXT PRIMARY KEY,
		items      JSONB NOT NULL DEFAULT '[]'::jsonb,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate creates the order, note and cart tables when missing.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

type OrderStore struct {
	db *pgxpool.Pool
}

var _ interfaces.IOrderStore = (*OrderStore)(nil)

func NewOrderStore(db *pgxpool.Pool) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if o.Meta == nil {
		o.Meta = map[string]string{}
	}
	query := `
		INSERT INTO orders (id, order_key, status, total, currency, payment_method, cart_id, meta, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING
	`
	tag, err := s.db.Exec(ctx, query,
		o.ID, o.Key, string(o.Status), o.Total, o.Currency, o.PaymentMethod, o.CartID, o.Meta, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.Order{}, interfaces.ErrDuplicateOrder
	}
	return o, nil
}

func (s *OrderStore) Get(ctx context.Context, id string) (entities.Order, error) {
	query := `
		SELECT id, order_key, status, total::float8, currency, payment_method, cart_id,
		       transaction_id, paid_at, meta, created_at, updated_at
		FROM orders
		WHERE id = $1
	`
	var (
		o      entities.Order
		status string
	)
	err := s.db.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Key, &status, &o.Total, &o.Currency, &o.PaymentMethod, &o.CartID,
		&o.TransactionID, &o.PaidAt, &o.Meta, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Order{}, nil
		}
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	o.Status = entities.OrderStatus(status)
	if o.Meta == nil {
		o.Meta = map[string]string{}
	}

	rows, err := s.db.Query(ctx, `SELECT id::text, content, created_at FROM order_notes WHERE order_id = $1 ORDER BY created_at, id`, id)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to list order notes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var n entities.OrderNote
		if err := rows.Scan(&n.ID, &n.Content, &n.CreatedAt); err != nil {
			return entities.Order{}, err
		}
		o.Notes = append(o.Notes, n)
	}
	return o, rows.Err()
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, note string) error {
	return s.SetStatusAndMeta(ctx, id, status, nil, note)
}

// SetStatusAndMeta updates status and meta and inserts the note in one transaction.
func (s *OrderStore) SetStatusAndMeta(ctx context.Context, id string, status entities.OrderStatus, meta map[string]string, note string) error {
	if meta == nil {
		meta = map[string]string{}
	}
	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE orders SET status = $2, meta = meta || $3::jsonb, updated_at = now() WHERE id = $1`, id, string(status), meta)
		if err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return interfaces.ErrUnknownOrder
		}
		if note == "" {
			return nil
		}
		return insertNote(ctx, tx, id, note)
	})
}

func (s *OrderStore) SetMeta(ctx context.Context, id string, meta map[string]string) error {
	if len(meta) == 0 {
		return nil
	}
	tag, err := s.db.Exec(ctx, `UPDATE orders SET meta = meta || $2::jsonb, updated_at = now() WHERE id = $1`, id, meta)
	if err != nil {
		return fmt.Errorf("failed to set order meta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrUnknownOrder
	}
	return nil
}

func (s *OrderStore) GetMeta(ctx context.Context, id string, key string) (string, error) {
	var v string
	err := s.db.QueryRow(ctx, `SELECT COALESCE(meta ->> $2, '') FROM orders WHERE id = $1`, id, key).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get order meta: %w", err)
	}
	return v, nil
}

func (s *OrderStore) AddNote(ctx context.Context, id string, note string) error {
	return insertNote(ctx, s.db, id, note)
}

func (s *OrderStore) PaymentComplete(ctx context.Context, id string, transactionID string) error {
	query := `
		UPDATE orders
		SET status = $2, transaction_id = $3, paid_at = now(), updated_at = now()
		WHERE id = $1 AND status NOT IN ($2, $4)
	`
	tag, err := s.db.Exec(ctx, query, id, string(entities.OrderStatusProcessing), transactionID, string(entities.OrderStatusCompleted))
	if err != nil {
		return fmt.Errorf("failed to complete order payment: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check order: %w", err)
	}
	if !exists {
		return interfaces.ErrUnknownOrder
	}
	return nil
}

type noteWriter interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func insertNote(ctx context.Context, db noteWriter, orderID, content string) error {
	query := `
		INSERT INTO order_notes (id, order_id, content, created_at)
		SELECT $1::uuid, $2::text, $3::text, $4::timestamptz
		WHERE EXISTS (SELECT 1 FROM orders WHERE id = $2)
	`
	tag, err := db.Exec(ctx, query, uuid.NewString(), orderID, content, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to add order note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrUnknownOrder
	}
	return nil
}

type CartStore struct {
	db *pgxpool.Pool
}

var _ interfaces.ICartStore = (*CartStore)(nil)

func NewCartStore(db *pgxpool.Pool) *CartStore {
	return &CartStore{db: db}
}

// Empty removes every line from the cart. A missing cart is already empty.
func (s *CartStore) Empty(ctx context.Context, cartID string) error {
	if _, err := s.db.Exec(ctx, `UPDATE carts SET items = '[]'::jsonb, updated_at = now() WHERE id = $1`, cartID); err != nil {
		return fmt.Errorf("failed to empty cart: %w", err)
	}
	return nil
}
