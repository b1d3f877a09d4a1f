package autoorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/and161185/canteen/internal/errs"
	"github.com/and161185/canteen/internal/localtime"
	"github.com/and161185/canteen/internal/model"
	"go.uber.org/zap"
)

type Store interface {
	// DueRecurringOrders returns all active recurring orders whose fire time
	// equals the given local "HH:MM" exactly.
	DueRecurringOrders(ctx context.Context, fireTime string) ([]model.RecurringOrder, error)

	// ExecuteRecurringOrder materializes one recurring order in a single
	// atomic transaction: debit + order + ledger + notification + attempt on
	// the success branch, or a committed failed-attempt artifact when the
	// balance is insufficient. Returns errs.ErrAlreadyExecutedToday if the
	// order's date stamp already equals stamp.Date, errs.ErrUserNotFound if
	// the owner record is missing.
	ExecuteRecurringOrder(ctx context.Context, ro model.RecurringOrder, stamp localtime.Stamp) (model.ExecutionResult, error)
}

// Summary is the result of one batch pass. Processed = Succeeded + Failed;
// Skipped counts candidates whose rule does not fire today or that already
// ran today.
type Summary struct {
	Success    bool     `json:"success"`
	Time       string   `json:"time"`
	Day        string   `json:"day"`
	Date       string   `json:"date"`
	Candidates int      `json:"candidates"`
	Skipped    int      `json:"skipped"`
	Processed  int      `json:"processed"`
	Succeeded  int      `json:"succeeded"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors"`
}

type Engine struct {
	store  Store
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewEngine(store Store, logger *zap.SugaredLogger) *Engine {
	return &Engine{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Run performs one batch pass for the current local minute.
func (e *Engine) Run(ctx context.Context) (Summary, error) {
	return e.run(ctx, localtime.Resolve(e.now()))
}

// RunAt performs one batch pass pretending the local wall time is fireTime.
// Weekday and calendar date still come from the real clock.
func (e *Engine) RunAt(ctx context.Context, fireTime string) (Summary, error) {
	stamp := localtime.Resolve(e.now())
	stamp.Time = fireTime
	return e.run(ctx, stamp)
}

func (e *Engine) run(ctx context.Context, stamp localtime.Stamp) (Summary, error) {
	summary := Summary{
		Time:   stamp.Time,
		Day:    stamp.Weekday.String(),
		Date:   stamp.Date,
		Errors: []string{},
	}

	candidates, err := e.store.DueRecurringOrders(ctx, stamp.Time)
	if err != nil {
		return summary, fmt.Errorf("query due recurring orders: %w", err)
	}
	summary.Candidates = len(candidates)

	outcomes := make([]outcome, 0, len(candidates))
	for _, ro := range candidates {
		outcomes = append(outcomes, e.processOne(ctx, ro, stamp))
	}

	for _, out := range outcomes {
		switch out.kind {
		case outcomeSkipped:
			summary.Skipped++
		case outcomeSucceeded:
			summary.Processed++
			summary.Succeeded++
		case outcomeFailed:
			summary.Processed++
			summary.Failed++
			summary.Errors = append(summary.Errors, out.err)
		}
	}

	summary.Success = true
	e.logger.Infow("auto-order batch pass",
		"time", summary.Time,
		"date", summary.Date,
		"candidates", summary.Candidates,
		"skipped", summary.Skipped,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
	)

	return summary, nil
}

type outcomeKind int

const (
	outcomeSkipped outcomeKind = iota
	outcomeSucceeded
	outcomeFailed
)

type outcome struct {
	kind outcomeKind
	err  string
}

// processOne decides and executes a single candidate. All failures stay
// local to the item; the batch keeps going.
func (e *Engine) processOne(ctx context.Context, ro model.RecurringOrder, stamp localtime.Stamp) outcome {
	if !FiresOn(ro, stamp.Weekday) {
		return outcome{kind: outcomeSkipped}
	}

	if ro.LastExecutedDate != nil && *ro.LastExecutedDate == stamp.Date {
		return outcome{kind: outcomeSkipped}
	}

	result, err := e.store.ExecuteRecurringOrder(ctx, ro, stamp)
	if err != nil {
		// Lost the race against a concurrent pass: someone else executed it.
		if errors.Is(err, errs.ErrAlreadyExecutedToday) {
			return outcome{kind: outcomeSkipped}
		}
		e.logger.Errorw("recurring order execution failed",
			"recurring_order_id", ro.ID, "user_id", ro.UserID, "error", err)
		return outcome{kind: outcomeFailed, err: fmt.Sprintf("%s: %v", ro.ID, err)}
	}

	if result.Outcome == model.ExecutionFailure {
		e.logger.Warnw("recurring order not materialized",
			"recurring_order_id", ro.ID, "user_id", ro.UserID, "reason", result.Reason)
		return outcome{kind: outcomeFailed, err: fmt.Sprintf("%s: %s", ro.ID, result.Reason)}
	}

	e.logger.Infow("recurring order materialized",
		"recurring_order_id", ro.ID, "user_id", ro.UserID,
		"order_id", result.OrderID, "amount", result.Amount)
	return outcome{kind: outcomeSucceeded}
}
