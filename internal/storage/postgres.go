package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/and161185/canteen/internal/errs"
	"github.com/and161185/canteen/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresStorage struct {
	db *pgxpool.Pool
}

func (store *PostgresStorage) initSchema(ctx context.Context) error {
	const initSchemaQuery = `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		login TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		balance NUMERIC NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS menu_items (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		price NUMERIC NOT NULL,
		available BOOLEAN NOT NULL DEFAULT TRUE
	);
	CREATE TABLE IF NOT EXISTS recurring_orders (
		id UUID PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id),
		item_id UUID NOT NULL,
		item_name TEXT NOT NULL,
		unit_price NUMERIC NOT NULL,
		quantity INT NOT NULL,
		fire_time TEXT NOT NULL,
		rule TEXT NOT NULL,
		custom_days TEXT[] NOT NULL DEFAULT '{}',
		status TEXT NOT NULL DEFAULT 'active',
		last_executed_date TEXT,
		last_executed_at TIMESTAMPTZ,
		last_failure_at TIMESTAMPTZ,
		last_failure_reason TEXT,
		success_count INT NOT NULL DEFAULT 0,
		failure_count INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ DEFAULT NOW(),
		updated_at TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_recurring_due
		ON recurring_orders (status, fire_time);
	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id),
		item_id UUID NOT NULL,
		item_name TEXT NOT NULL,
		unit_price NUMERIC NOT NULL,
		quantity INT NOT NULL,
		total NUMERIC NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		payment_mode TEXT NOT NULL,
		recurring_order_id UUID,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS wallet_ledger (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id),
		order_id UUID NOT NULL,
		amount NUMERIC NOT NULL,
		description TEXT NOT NULL,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS notifications (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id),
		order_id UUID NOT NULL,
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS execution_attempts (
		id SERIAL PRIMARY KEY,
		recurring_order_id UUID NOT NULL,
		user_id INT NOT NULL,
		outcome TEXT NOT NULL,
		order_id UUID,
		failure_reason TEXT,
		amount NUMERIC,
		executed_at TIMESTAMPTZ DEFAULT NOW()
	);`

	_, err := store.db.Exec(ctx, initSchemaQuery)
	return err
}

func NewPostgresStorage(ctx context.Context, databaseURI string) (*PostgresStorage, error) {
	db, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, err
	}

	storage := &PostgresStorage{db: db}

	if err := storage.Ping(ctx); err != nil {
		return nil, err
	}

	if err := storage.initSchema(ctx); err != nil {
		return nil, err
	}

	return storage, nil
}

func (store *PostgresStorage) Ping(ctx context.Context) error {
	return store.db.Ping(ctx)
}

func (store *PostgresStorage) CreateUser(ctx context.Context, login, name, passwordHash string) error {
	const insertUserQuery = `INSERT INTO users (login, name, password_hash) VALUES ($1, $2, $3)`

	_, err := store.db.Exec(ctx, insertUserQuery, login, name, passwordHash)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			// 23505 — unique constraint violation
			return errs.ErrLoginAlreadyExists
		}
		return err
	}

	return nil
}

func (s *PostgresStorage) GetUserByLogin(ctx context.Context, login string) (model.User, string, error) {
	const query = `SELECT id, login, name, password_hash FROM users WHERE login = $1`

	var user model.User
	var hash string

	err := s.db.QueryRow(ctx, query, login).Scan(&user.ID, &user.Login, &user.Name, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, "", errs.ErrUserNotFound
		}
		return model.User{}, "", fmt.Errorf("get user by login: %w", err)
	}

	return user, hash, nil
}

func (s *PostgresStorage) GetUserByID(ctx context.Context, id int) (model.User, error) {
	const query = `SELECT id, login, name FROM users WHERE id = $1`

	var user model.User

	err := s.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Login, &user.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (s *PostgresStorage) GetUserBalance(ctx context.Context, userID int) (model.Balance, error) {
	const query = `SELECT balance FROM users WHERE id = $1`

	var balance decimal.Decimal
	err := s.db.QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Balance{}, errs.ErrUserNotFound
		}
		return model.Balance{}, fmt.Errorf("get balance: %w", err)
	}

	return model.Balance{Current: balance}, nil
}

func (s *PostgresStorage) ListMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	const query = `SELECT id, name, price, available FROM menu_items ORDER BY name`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Available); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return items, nil
}

func (s *PostgresStorage) GetMenuItem(ctx context.Context, id uuid.UUID) (model.MenuItem, error) {
	const query = `SELECT id, name, price, available FROM menu_items WHERE id = $1`

	var item model.MenuItem
	err := s.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Price, &item.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.MenuItem{}, errs.ErrMenuItemNotFound
		}
		return model.MenuItem{}, fmt.Errorf("get menu item: %w", err)
	}

	return item, nil
}

func (s *PostgresStorage) GetUserOrders(ctx context.Context, userID int) ([]model.Order, error) {
	const query = `
		SELECT id, user_id, item_id, item_name, unit_price, quantity, total,
		       status, payment_mode, recurring_order_id, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get user orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		err := rows.Scan(&o.ID, &o.UserID, &o.ItemID, &o.ItemName, &o.UnitPrice,
			&o.Quantity, &o.Total, &o.Status, &o.PaymentMode, &o.RecurringOrderID, &o.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}

	return orders, nil
}

func (s *PostgresStorage) GetWalletLedger(ctx context.Context, userID int) ([]model.WalletEntry, error) {
	const query = `
		SELECT id, order_id, amount, description, created_at
		FROM wallet_ledger
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get wallet ledger: %w", err)
	}
	defer rows.Close()

	var list []model.WalletEntry
	for rows.Next() {
		var e model.WalletEntry
		if err := rows.Scan(&e.ID, &e.OrderID, &e.Amount, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return list, nil
}

func (s *PostgresStorage) GetUserNotifications(ctx context.Context, userID int) ([]model.Notification, error) {
	const query = `
		SELECT id, order_id, message, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get notifications: %w", err)
	}
	defer rows.Close()

	var list []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.OrderID, &n.Message, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return list, nil
}
