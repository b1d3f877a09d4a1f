package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/and161185/canteen/internal/errs"
	"github.com/and161185/canteen/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateRecurringOrderHandler(t *testing.T) {
	srv, mock, _ := setup(t)

	itemID := uuid.New()
	mock.EXPECT().
		GetMenuItem(gomock.Any(), itemID).
		Return(model.MenuItem{ID: itemID, Name: "Masala Dosa", Price: decimal.NewFromInt(50), Available: true}, nil)

	mock.EXPECT().
		CreateRecurringOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ro model.RecurringOrder) error {
			if ro.UserID != 1 {
				t.Errorf("expected owner 1, got %d", ro.UserID)
			}
			if ro.ItemName != "Masala Dosa" || !ro.UnitPrice.Equal(decimal.NewFromInt(50)) {
				t.Errorf("expected price snapshot, got %s %s", ro.ItemName, ro.UnitPrice)
			}
			if ro.Status != model.RecurringActive {
				t.Errorf("expected active status, got %s", ro.Status)
			}
			if ro.CustomDays == nil {
				t.Error("non-custom rule must persist an empty day set, not NULL")
			}
			return nil
		})

	payload := `{"item_id":"` + itemID.String() + `","quantity":2,"fire_time":"08:00","rule":"daily"}`
	req := newAuthenticatedRequest("POST", "/api/user/recurring-orders", payload)
	w := httptest.NewRecorder()

	srv.CreateRecurringOrderHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var created model.RecurringOrder
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.FireTime != "08:00" || created.Rule != model.RuleDaily {
		t.Errorf("unexpected created record: %+v", created)
	}
}

func TestCreateRecurringOrderHandlerRejectsEmptyCustomDays(t *testing.T) {
	srv, _, _ := setup(t)

	payload := `{"item_id":"` + uuid.NewString() + `","quantity":1,"fire_time":"08:00","rule":"custom","custom_days":[]}`
	req := newAuthenticatedRequest("POST", "/api/user/recurring-orders", payload)
	w := httptest.NewRecorder()

	srv.CreateRecurringOrderHandler(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
}

func TestCreateRecurringOrderHandlerRejectsBadWeekdayToken(t *testing.T) {
	srv, _, _ := setup(t)

	payload := `{"item_id":"` + uuid.NewString() + `","quantity":1,"fire_time":"08:00","rule":"custom","custom_days":["Funday"]}`
	req := newAuthenticatedRequest("POST", "/api/user/recurring-orders", payload)
	w := httptest.NewRecorder()

	srv.CreateRecurringOrderHandler(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
}

func TestCreateRecurringOrderHandlerRejectsBadFireTime(t *testing.T) {
	srv, _, _ := setup(t)

	payload := `{"item_id":"` + uuid.NewString() + `","quantity":1,"fire_time":"8am","rule":"daily"}`
	req := newAuthenticatedRequest("POST", "/api/user/recurring-orders", payload)
	w := httptest.NewRecorder()

	srv.CreateRecurringOrderHandler(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
}

func TestListRecurringOrdersHandler(t *testing.T) {
	srv, mock, _ := setup(t)

	mock.EXPECT().
		ListRecurringOrders(gomock.Any(), 1).
		Return([]model.RecurringOrder{{ID: uuid.New(), UserID: 1}}, nil)

	req := newAuthenticatedRequest("GET", "/api/user/recurring-orders", "")
	w := httptest.NewRecorder()

	srv.ListRecurringOrdersHandler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestUpdateRecurringOrderHandlerRejectsForeignRecord(t *testing.T) {
	srv, mock, _ := setup(t)

	id := uuid.New()
	mock.EXPECT().
		GetRecurringOrder(gomock.Any(), id).
		Return(model.RecurringOrder{ID: id, UserID: 2}, nil)

	req := newAuthenticatedRequest("PUT", "/api/user/recurring-orders/"+id.String(), `{"quantity":3}`)
	req = withURLParam(req, "id", id.String())
	w := httptest.NewRecorder()

	srv.UpdateRecurringOrderHandler(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for foreign record, got %d", w.Code)
	}
}

func TestUpdateRecurringOrderHandler(t *testing.T) {
	srv, mock, _ := setup(t)

	id := uuid.New()
	existing := model.RecurringOrder{
		ID:        id,
		UserID:    1,
		ItemName:  "Masala Dosa",
		UnitPrice: decimal.NewFromInt(50),
		Quantity:  1,
		FireTime:  "08:00",
		Rule:      model.RuleDaily,
		Status:    model.RecurringActive,
	}
	mock.EXPECT().
		GetRecurringOrder(gomock.Any(), id).
		Return(existing, nil)

	mock.EXPECT().
		UpdateRecurringOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ro model.RecurringOrder) error {
			if ro.Quantity != 3 {
				t.Errorf("expected quantity 3, got %d", ro.Quantity)
			}
			if ro.FireTime != "12:30" {
				t.Errorf("expected fire time 12:30, got %s", ro.FireTime)
			}
			return nil
		})

	req := newAuthenticatedRequest("PUT", "/api/user/recurring-orders/"+id.String(), `{"quantity":3,"fire_time":"12:30"}`)
	req = withURLParam(req, "id", id.String())
	w := httptest.NewRecorder()

	srv.UpdateRecurringOrderHandler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestUpdateRecurringOrderHandlerClearsCustomDays(t *testing.T) {
	srv, mock, _ := setup(t)

	id := uuid.New()
	existing := model.RecurringOrder{
		ID:         id,
		UserID:     1,
		ItemName:   "Masala Dosa",
		UnitPrice:  decimal.NewFromInt(50),
		Quantity:   1,
		FireTime:   "08:00",
		Rule:       model.RuleCustom,
		CustomDays: []string{"Mon", "Wed"},
		Status:     model.RecurringActive,
	}
	mock.EXPECT().
		GetRecurringOrder(gomock.Any(), id).
		Return(existing, nil)

	mock.EXPECT().
		UpdateRecurringOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ro model.RecurringOrder) error {
			if ro.Rule != model.RuleDaily {
				t.Errorf("expected daily rule, got %s", ro.Rule)
			}
			if ro.CustomDays == nil {
				t.Error("switching off custom must persist an empty day set, not NULL")
			}
			if len(ro.CustomDays) != 0 {
				t.Errorf("expected cleared day set, got %v", ro.CustomDays)
			}
			return nil
		})

	req := newAuthenticatedRequest("PUT", "/api/user/recurring-orders/"+id.String(), `{"rule":"daily"}`)
	req = withURLParam(req, "id", id.String())
	w := httptest.NewRecorder()

	srv.UpdateRecurringOrderHandler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestPauseRecurringOrderHandler(t *testing.T) {
	srv, mock, _ := setup(t)

	id := uuid.New()
	mock.EXPECT().
		GetRecurringOrder(gomock.Any(), id).
		Return(model.RecurringOrder{ID: id, UserID: 1, Status: model.RecurringActive}, nil)
	mock.EXPECT().
		SetRecurringOrderStatus(gomock.Any(), id, model.RecurringPaused).
		Return(nil)

	req := newAuthenticatedRequest("POST", "/api/user/recurring-orders/"+id.String()+"/pause", "")
	req = withURLParam(req, "id", id.String())
	w := httptest.NewRecorder()

	srv.PauseRecurringOrderHandler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestDeleteRecurringOrderHandler(t *testing.T) {
	srv, mock, _ := setup(t)

	id := uuid.New()
	mock.EXPECT().
		GetRecurringOrder(gomock.Any(), id).
		Return(model.RecurringOrder{ID: id, UserID: 1}, nil)
	mock.EXPECT().
		DeleteRecurringOrder(gomock.Any(), id).
		Return(nil)

	req := newAuthenticatedRequest("DELETE", "/api/user/recurring-orders/"+id.String(), "")
	req = withURLParam(req, "id", id.String())
	w := httptest.NewRecorder()

	srv.DeleteRecurringOrderHandler(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
}

func TestDeleteRecurringOrderHandlerNotFound(t *testing.T) {
	srv, mock, _ := setup(t)

	id := uuid.New()
	mock.EXPECT().
		GetRecurringOrder(gomock.Any(), id).
		Return(model.RecurringOrder{}, errs.ErrRecurringOrderNotFound)

	req := newAuthenticatedRequest("DELETE", "/api/user/recurring-orders/"+id.String(), "")
	req = withURLParam(req, "id", id.String())
	w := httptest.NewRecorder()

	srv.DeleteRecurringOrderHandler(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
