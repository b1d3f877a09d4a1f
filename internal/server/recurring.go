package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/and161185/canteen/internal/errs"
	"github.com/and161185/canteen/internal/middleware"
	"github.com/and161185/canteen/internal/model"
	"github.com/and161185/canteen/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("firetime", func(fl validator.FieldLevel) bool {
		return utils.IsValidFireTime(fl.Field().String())
	})
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		return utils.IsValidWeekdayToken(fl.Field().String())
	})
	return v
}

func (s *Server) CreateRecurringOrderHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(middleware.UserContextKey).(model.User)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req model.CreateRecurringOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if err := s.validate.Struct(req); err != nil {
		http.Error(w, "invalid input: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusUnprocessableEntity)
		return
	}

	item, err := s.storage.GetMenuItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, errs.ErrMenuItemNotFound) {
			http.Error(w, "menu item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	rule := model.RecurrenceRule(req.Rule)
	customDays := req.CustomDays
	if rule != model.RuleCustom {
		// empty array, not nil: the custom_days column is NOT NULL
		customDays = []string{}
	}

	ro := model.RecurringOrder{
		ID:         uuid.New(),
		UserID:     user.ID,
		ItemID:     item.ID,
		ItemName:   item.Name,
		UnitPrice:  item.Price, // price snapshot, not a live reference
		Quantity:   req.Quantity,
		FireTime:   req.FireTime,
		Rule:       rule,
		CustomDays: customDays,
		Status:     model.RecurringActive,
	}

	if err := s.storage.CreateRecurringOrder(r.Context(), ro); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ro); err != nil {
		s.deps.Logger.Errorf("encode recurring order: %v", err)
	}
}

func (s *Server) ListRecurringOrdersHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(middleware.UserContextKey).(model.User)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := s.storage.ListRecurringOrders(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if len(list) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(list); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}

// loadOwnedRecurringOrder fetches the record from the URL id and enforces
// ownership. A foreign record reports not-found so ids stay unguessable.
func (s *Server) loadOwnedRecurringOrder(w http.ResponseWriter, r *http.Request) (model.RecurringOrder, bool) {
	user, ok := r.Context().Value(middleware.UserContextKey).(model.User)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return model.RecurringOrder{}, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return model.RecurringOrder{}, false
	}

	ro, err := s.storage.GetRecurringOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRecurringOrderNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return model.RecurringOrder{}, false
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return model.RecurringOrder{}, false
	}

	if ro.UserID != user.ID {
		http.Error(w, "not found", http.StatusNotFound)
		return model.RecurringOrder{}, false
	}

	return ro, true
}

func (s *Server) UpdateRecurringOrderHandler(w http.ResponseWriter, r *http.Request) {
	ro, ok := s.loadOwnedRecurringOrder(w, r)
	if !ok {
		return
	}

	var req model.UpdateRecurringOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if err := s.validate.Struct(req); err != nil {
		http.Error(w, "invalid input: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if req.ItemID != nil {
		itemID, err := uuid.Parse(*req.ItemID)
		if err != nil {
			http.Error(w, "invalid item id", http.StatusUnprocessableEntity)
			return
		}
		item, err := s.storage.GetMenuItem(r.Context(), itemID)
		if err != nil {
			if errors.Is(err, errs.ErrMenuItemNotFound) {
				http.Error(w, "menu item not found", http.StatusNotFound)
				return
			}
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		// re-snapshot on item change
		ro.ItemID = item.ID
		ro.ItemName = item.Name
		ro.UnitPrice = item.Price
	}

	if req.Quantity != nil {
		ro.Quantity = *req.Quantity
	}
	if req.FireTime != nil {
		ro.FireTime = *req.FireTime
	}
	if req.Rule != nil {
		ro.Rule = model.RecurrenceRule(*req.Rule)
	}
	if req.CustomDays != nil {
		ro.CustomDays = req.CustomDays
	}

	if ro.Rule != model.RuleCustom {
		ro.CustomDays = []string{}
	} else if len(ro.CustomDays) == 0 {
		http.Error(w, "custom rule requires custom_days", http.StatusUnprocessableEntity)
		return
	}

	if err := s.storage.UpdateRecurringOrder(r.Context(), ro); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ro); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}

func (s *Server) PauseRecurringOrderHandler(w http.ResponseWriter, r *http.Request) {
	s.setRecurringOrderStatus(w, r, model.RecurringPaused)
}

func (s *Server) ResumeRecurringOrderHandler(w http.ResponseWriter, r *http.Request) {
	s.setRecurringOrderStatus(w, r, model.RecurringActive)
}

func (s *Server) setRecurringOrderStatus(w http.ResponseWriter, r *http.Request, status model.RecurringOrderStatus) {
	ro, ok := s.loadOwnedRecurringOrder(w, r)
	if !ok {
		return
	}

	if err := s.storage.SetRecurringOrderStatus(r.Context(), ro.ID, status); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) DeleteRecurringOrderHandler(w http.ResponseWriter, r *http.Request) {
	ro, ok := s.loadOwnedRecurringOrder(w, r)
	if !ok {
		return
	}

	if err := s.storage.DeleteRecurringOrder(r.Context(), ro.ID); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
