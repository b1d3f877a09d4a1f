package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/and161185/canteen/internal/autoorder"
	"github.com/and161185/canteen/internal/config"
	"github.com/and161185/canteen/internal/deps"
	"github.com/and161185/canteen/internal/errs"
	"github.com/and161185/canteen/internal/middleware"
	"github.com/and161185/canteen/internal/model"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Storage interface {
	CreateUser(ctx context.Context, login, name, passwordHash string) error
	GetUserByLogin(ctx context.Context, login string) (model.User, string, error)
	GetUserByID(ctx context.Context, id int) (model.User, error)
	GetUserBalance(ctx context.Context, userID int) (model.Balance, error)

	ListMenuItems(ctx context.Context) ([]model.MenuItem, error)
	GetMenuItem(ctx context.Context, id uuid.UUID) (model.MenuItem, error)

	GetUserOrders(ctx context.Context, userID int) ([]model.Order, error)
	GetUserNotifications(ctx context.Context, userID int) ([]model.Notification, error)
	GetWalletLedger(ctx context.Context, userID int) ([]model.WalletEntry, error)

	CreateRecurringOrder(ctx context.Context, ro model.RecurringOrder) error
	GetRecurringOrder(ctx context.Context, id uuid.UUID) (model.RecurringOrder, error)
	ListRecurringOrders(ctx context.Context, userID int) ([]model.RecurringOrder, error)
	UpdateRecurringOrder(ctx context.Context, ro model.RecurringOrder) error
	SetRecurringOrderStatus(ctx context.Context, id uuid.UUID, status model.RecurringOrderStatus) error
	DeleteRecurringOrder(ctx context.Context, id uuid.UUID) error
}

// BatchRunner is the auto-order engine as seen by the on-demand trigger.
type BatchRunner interface {
	Run(ctx context.Context) (autoorder.Summary, error)
	RunAt(ctx context.Context, fireTime string) (autoorder.Summary, error)
}

type Server struct {
	storage  Storage
	runner   BatchRunner
	config   *config.Config
	deps     *deps.Deps
	validate *validator.Validate
}

func NewServer(storage Storage, runner BatchRunner, config *config.Config, deps *deps.Deps) *Server {
	return &Server{
		storage:  storage,
		runner:   runner,
		config:   config,
		deps:     deps,
		validate: newValidator(),
	}
}

func (srv *Server) buildRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.LogMiddleware(srv.deps.Logger))
	router.Use(middleware.DecompressMiddleware)
	router.Use(middleware.CompressMiddleware(srv.deps.Logger))

	router.Post("/api/user/register", srv.RegisterHandler)
	router.Post("/api/user/login", srv.LoginHandler)
	router.Get("/api/menu", srv.GetMenuHandler)

	// shared-secret auth, see triggerAuthorized
	router.Get("/api/admin/auto-orders/run", srv.RunAutoOrdersHandler)

	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(srv.storage, srv.deps.TokenManager))

		r.Get("/api/user/balance", srv.GetBalanceHandler)
		r.Get("/api/user/orders", srv.GetOrdersHandler)
		r.Get("/api/user/notifications", srv.GetNotificationsHandler)
		r.Get("/api/user/wallet/ledger", srv.GetWalletLedgerHandler)

		r.Post("/api/user/recurring-orders", srv.CreateRecurringOrderHandler)
		r.Get("/api/user/recurring-orders", srv.ListRecurringOrdersHandler)
		r.Put("/api/user/recurring-orders/{id}", srv.UpdateRecurringOrderHandler)
		r.Post("/api/user/recurring-orders/{id}/pause", srv.PauseRecurringOrderHandler)
		r.Post("/api/user/recurring-orders/{id}/resume", srv.ResumeRecurringOrderHandler)
		r.Delete("/api/user/recurring-orders/{id}", srv.DeleteRecurringOrderHandler)
	})

	return router
}

func (srv *Server) Run(ctx context.Context) error {
	router := srv.buildRouter()

	server := &http.Server{
		Addr:    srv.config.RunAddress,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			srv.deps.Logger.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if creds.Login == "" || creds.Password == "" {
		http.Error(w, "login and password required", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "hash error", http.StatusInternalServerError)
		return
	}

	err = s.storage.CreateUser(r.Context(), creds.Login, creds.Name, string(hash))
	if err != nil {
		if errors.Is(err, errs.ErrLoginAlreadyExists) {
			http.Error(w, "login taken", http.StatusConflict)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	user, _, err := s.storage.GetUserByLogin(r.Context(), creds.Login)
	if err != nil {
		http.Error(w, "failed to fetch user", http.StatusInternalServerError)
		return
	}

	token, err := s.deps.TokenManager.GenerateToken(user.ID)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if creds.Login == "" || creds.Password == "" {
		http.Error(w, "login and password required", http.StatusBadRequest)
		return
	}

	user, hash, err := s.storage.GetUserByLogin(r.Context(), creds.Login)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := s.deps.TokenManager.GenerateToken(user.ID)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) GetMenuHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.storage.ListMenuItems(r.Context())
	if err != nil {
		http.Error(w, "failed to get menu", http.StatusInternalServerError)
		return
	}

	if len(items) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(items); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}

func (s *Server) GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(middleware.UserContextKey).(model.User)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	balance, err := s.storage.GetUserBalance(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "failed to get balance", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(balance); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}

func (s *Server) GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(middleware.UserContextKey).(model.User)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orders, err := s.storage.GetUserOrders(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "failed to get orders", http.StatusInternalServerError)
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(orders); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}

func (s *Server) GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(middleware.UserContextKey).(model.User)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	notifications, err := s.storage.GetUserNotifications(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if len(notifications) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(notifications); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}

func (s *Server) GetWalletLedgerHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(middleware.UserContextKey).(model.User)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := s.storage.GetWalletLedger(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if len(entries) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}
