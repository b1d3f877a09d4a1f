package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type RecurrenceRule string

const (
	RuleDaily    RecurrenceRule = "daily"
	RuleWeekdays RecurrenceRule = "weekdays"
	RuleCustom   RecurrenceRule = "custom"
)

type RecurringOrderStatus string

const (
	RecurringActive RecurringOrderStatus = "active"
	RecurringPaused RecurringOrderStatus = "paused"
)

type ExecutionOutcome string

const (
	ExecutionSuccess ExecutionOutcome = "success"
	ExecutionFailure ExecutionOutcome = "failure"
)

type User struct {
	ID    int    `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
}

type Balance struct {
	Current decimal.Decimal `json:"current"`
}

type MenuItem struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

// RecurringOrder is a user's standing instruction to auto-place the same
// order on a schedule. ItemName and UnitPrice are snapshotted from the menu
// at creation/update time; later catalog price changes do not affect it.
type RecurringOrder struct {
	ID                uuid.UUID            `json:"id"`
	UserID            int                  `json:"user_id"`
	ItemID            uuid.UUID            `json:"item_id"`
	ItemName          string               `json:"item_name"`
	UnitPrice         decimal.Decimal      `json:"unit_price"`
	Quantity          int                  `json:"quantity"`
	FireTime          string               `json:"fire_time"` // HH:MM, local
	Rule              RecurrenceRule       `json:"rule"`
	CustomDays        []string             `json:"custom_days,omitempty"`
	Status            RecurringOrderStatus `json:"status"`
	LastExecutedDate  *string              `json:"last_executed_date,omitempty"` // YYYY-MM-DD
	LastExecutedAt    *time.Time           `json:"last_executed_at,omitempty"`
	LastFailureAt     *time.Time           `json:"last_failure_at,omitempty"`
	LastFailureReason *string              `json:"last_failure_reason,omitempty"`
	SuccessCount      int                  `json:"success_count"`
	FailureCount      int                  `json:"failure_count"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

func (ro RecurringOrder) Total() decimal.Decimal {
	return ro.UnitPrice.Mul(decimal.NewFromInt(int64(ro.Quantity)))
}

type Order struct {
	ID               uuid.UUID       `json:"id"`
	UserID           int             `json:"user_id"`
	ItemID           uuid.UUID       `json:"item_id"`
	ItemName         string          `json:"item_name"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Quantity         int             `json:"quantity"`
	Total            decimal.Decimal `json:"total"`
	Status           OrderStatus     `json:"status"`
	PaymentMode      string          `json:"payment_mode"`
	RecurringOrderID *uuid.UUID      `json:"recurring_order_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

type WalletEntry struct {
	ID          int             `json:"id"`
	OrderID     uuid.UUID       `json:"order_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Notification struct {
	ID        int       `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ExecutionResult is what one materialization attempt produced. On the
// failure outcome the transaction still commits (attempt row + tracking
// fields); Reason carries the human-readable cause.
type ExecutionResult struct {
	Outcome ExecutionOutcome
	OrderID *uuid.UUID
	Amount  decimal.Decimal
	Reason  string
}
