package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/and161185/canteen/internal/errs"
	"github.com/and161185/canteen/internal/localtime"
	"github.com/and161185/canteen/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const recurringOrderColumns = `
	id, user_id, item_id, item_name, unit_price, quantity, fire_time, rule,
	custom_days, status, last_executed_date, last_executed_at, last_failure_at,
	last_failure_reason, success_count, failure_count, created_at, updated_at`

func scanRecurringOrder(row pgx.Row) (model.RecurringOrder, error) {
	var ro model.RecurringOrder
	err := row.Scan(&ro.ID, &ro.UserID, &ro.ItemID, &ro.ItemName, &ro.UnitPrice,
		&ro.Quantity, &ro.FireTime, &ro.Rule, &ro.CustomDays, &ro.Status,
		&ro.LastExecutedDate, &ro.LastExecutedAt, &ro.LastFailureAt,
		&ro.LastFailureReason, &ro.SuccessCount, &ro.FailureCount,
		&ro.CreatedAt, &ro.UpdatedAt)
	return ro, err
}

func (s *PostgresStorage) CreateRecurringOrder(ctx context.Context, ro model.RecurringOrder) error {
	const query = `
		INSERT INTO recurring_orders
			(id, user_id, item_id, item_name, unit_price, quantity, fire_time, rule, custom_days, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	if ro.CustomDays == nil {
		ro.CustomDays = []string{}
	}

	_, err := s.db.Exec(ctx, query, ro.ID, ro.UserID, ro.ItemID, ro.ItemName,
		ro.UnitPrice, ro.Quantity, ro.FireTime, ro.Rule, ro.CustomDays, ro.Status)
	if err != nil {
		return fmt.Errorf("insert recurring order: %w", err)
	}

	return nil
}

func (s *PostgresStorage) GetRecurringOrder(ctx context.Context, id uuid.UUID) (model.RecurringOrder, error) {
	query := `SELECT ` + recurringOrderColumns + ` FROM recurring_orders WHERE id = $1`

	ro, err := scanRecurringOrder(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RecurringOrder{}, errs.ErrRecurringOrderNotFound
		}
		return model.RecurringOrder{}, fmt.Errorf("get recurring order: %w", err)
	}

	return ro, nil
}

func (s *PostgresStorage) ListRecurringOrders(ctx context.Context, userID int) ([]model.RecurringOrder, error) {
	query := `SELECT ` + recurringOrderColumns + ` FROM recurring_orders WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list recurring orders: %w", err)
	}
	defer rows.Close()

	var list []model.RecurringOrder
	for rows.Next() {
		ro, err := scanRecurringOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recurring order: %w", err)
		}
		list = append(list, ro)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return list, nil
}

func (s *PostgresStorage) UpdateRecurringOrder(ctx context.Context, ro model.RecurringOrder) error {
	const query = `
		UPDATE recurring_orders
		SET item_id = $1, item_name = $2, unit_price = $3, quantity = $4,
		    fire_time = $5, rule = $6, custom_days = $7, updated_at = NOW()
		WHERE id = $8
	`

	if ro.CustomDays == nil {
		ro.CustomDays = []string{}
	}

	tag, err := s.db.Exec(ctx, query, ro.ItemID, ro.ItemName, ro.UnitPrice,
		ro.Quantity, ro.FireTime, ro.Rule, ro.CustomDays, ro.ID)
	if err != nil {
		return fmt.Errorf("update recurring order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrRecurringOrderNotFound
	}

	return nil
}

func (s *PostgresStorage) SetRecurringOrderStatus(ctx context.Context, id uuid.UUID, status model.RecurringOrderStatus) error {
	const query = `UPDATE recurring_orders SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := s.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("set recurring order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrRecurringOrderNotFound
	}

	return nil
}

func (s *PostgresStorage) DeleteRecurringOrder(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM recurring_orders WHERE id = $1`

	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete recurring order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrRecurringOrderNotFound
	}

	return nil
}

func (s *PostgresStorage) DueRecurringOrders(ctx context.Context, fireTime string) ([]model.RecurringOrder, error) {
	query := `SELECT ` + recurringOrderColumns + ` FROM recurring_orders WHERE status = 'active' AND fire_time = $1`

	rows, err := s.db.Query(ctx, query, fireTime)
	if err != nil {
		return nil, fmt.Errorf("query due recurring orders: %w", err)
	}
	defer rows.Close()

	var list []model.RecurringOrder
	for rows.Next() {
		ro, err := scanRecurringOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recurring order: %w", err)
		}
		list = append(list, ro)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return list, nil
}

// ExecuteRecurringOrder materializes one recurring order inside a single
// transaction. The recurring order row and the owner's user row are locked
// for the duration, so an overlapping pass for the same minute either sees
// the updated date stamp (ErrAlreadyExecutedToday) or waits on the lock.
// Both the success branch and the insufficient-balance branch commit; only
// a missing user or an infrastructure error aborts.
func (s *PostgresStorage) ExecuteRecurringOrder(ctx context.Context, ro model.RecurringOrder, stamp localtime.Stamp) (model.ExecutionResult, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return model.ExecutionResult{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	const lockRecurringQuery = `
		SELECT last_executed_date, unit_price, quantity, item_id, item_name
		FROM recurring_orders WHERE id = $1 FOR UPDATE`

	var lastDate *string
	var unitPrice decimal.Decimal
	var quantity int
	var itemID uuid.UUID
	var itemName string
	err = tx.QueryRow(ctx, lockRecurringQuery, ro.ID).
		Scan(&lastDate, &unitPrice, &quantity, &itemID, &itemName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ExecutionResult{}, errs.ErrRecurringOrderNotFound
		}
		return model.ExecutionResult{}, fmt.Errorf("lock recurring order: %w", err)
	}

	if lastDate != nil && *lastDate == stamp.Date {
		return model.ExecutionResult{}, errs.ErrAlreadyExecutedToday
	}

	const lockUserQuery = `SELECT balance, name FROM users WHERE id = $1 FOR UPDATE`

	var balance decimal.Decimal
	var userName string
	err = tx.QueryRow(ctx, lockUserQuery, ro.UserID).Scan(&balance, &userName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ExecutionResult{}, errs.ErrUserNotFound
		}
		return model.ExecutionResult{}, fmt.Errorf("lock user: %w", err)
	}

	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	now := time.Now().In(localtime.Zone)

	if balance.LessThan(total) {
		reason := fmt.Sprintf("Insufficient balance: ₹%s < ₹%s", balance, total)

		const insertAttemptQuery = `
			INSERT INTO execution_attempts (recurring_order_id, user_id, outcome, failure_reason, executed_at)
			VALUES ($1, $2, $3, $4, $5)`
		if _, err := tx.Exec(ctx, insertAttemptQuery, ro.ID, ro.UserID, model.ExecutionFailure, reason, now); err != nil {
			return model.ExecutionResult{}, fmt.Errorf("insert failed attempt: %w", err)
		}

		// Stamping the date here silences this recurring order for the rest
		// of the calendar day even if the wallet is topped up later.
		const markFailureQuery = `
			UPDATE recurring_orders
			SET last_executed_date = $1, last_executed_at = $2,
			    last_failure_at = $2, last_failure_reason = $3,
			    failure_count = failure_count + 1, updated_at = $2
			WHERE id = $4`
		if _, err := tx.Exec(ctx, markFailureQuery, stamp.Date, now, reason, ro.ID); err != nil {
			return model.ExecutionResult{}, fmt.Errorf("mark failure: %w", err)
		}

		if err := tx.Commit(ctx); err != nil {
			return model.ExecutionResult{}, fmt.Errorf("commit: %w", err)
		}

		return model.ExecutionResult{Outcome: model.ExecutionFailure, Reason: reason}, nil
	}

	orderID := uuid.New()

	const debitQuery = `UPDATE users SET balance = balance - $1 WHERE id = $2`
	if _, err := tx.Exec(ctx, debitQuery, total, ro.UserID); err != nil {
		return model.ExecutionResult{}, fmt.Errorf("debit wallet: %w", err)
	}

	const insertOrderQuery = `
		INSERT INTO orders (id, user_id, item_id, item_name, unit_price, quantity,
		                    total, status, payment_mode, recurring_order_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'wallet', $9, $10)`
	if _, err := tx.Exec(ctx, insertOrderQuery, orderID, ro.UserID, itemID, itemName,
		unitPrice, quantity, total, model.OrderPending, ro.ID, now); err != nil {
		return model.ExecutionResult{}, fmt.Errorf("insert order: %w", err)
	}

	const insertLedgerQuery = `
		INSERT INTO wallet_ledger (user_id, order_id, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	description := fmt.Sprintf("Auto order: %d x %s", quantity, itemName)
	if _, err := tx.Exec(ctx, insertLedgerQuery, ro.UserID, orderID, total, description, now); err != nil {
		return model.ExecutionResult{}, fmt.Errorf("insert ledger entry: %w", err)
	}

	const insertNotificationQuery = `
		INSERT INTO notifications (user_id, order_id, message, created_at)
		VALUES ($1, $2, $3, $4)`
	message := fmt.Sprintf("Your auto order for %d x %s has been placed (₹%s)", quantity, itemName, total)
	if _, err := tx.Exec(ctx, insertNotificationQuery, ro.UserID, orderID, message, now); err != nil {
		return model.ExecutionResult{}, fmt.Errorf("insert notification: %w", err)
	}

	const insertAttemptQuery = `
		INSERT INTO execution_attempts (recurring_order_id, user_id, outcome, order_id, amount, executed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.Exec(ctx, insertAttemptQuery, ro.ID, ro.UserID, model.ExecutionSuccess, orderID, total, now); err != nil {
		return model.ExecutionResult{}, fmt.Errorf("insert attempt: %w", err)
	}

	const markSuccessQuery = `
		UPDATE recurring_orders
		SET last_executed_date = $1, last_executed_at = $2,
		    success_count = success_count + 1, updated_at = $2
		WHERE id = $3`
	if _, err := tx.Exec(ctx, markSuccessQuery, stamp.Date, now, ro.ID); err != nil {
		return model.ExecutionResult{}, fmt.Errorf("mark success: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.ExecutionResult{}, fmt.Errorf("commit: %w", err)
	}

	return model.ExecutionResult{
		Outcome: model.ExecutionSuccess,
		OrderID: &orderID,
		Amount:  total,
	}, nil
}
