package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	cartsvc "github.com/storelinehq/storeline-backend/internal/cart"
	"github.com/storelinehq/storeline-backend/internal/lookups"
	"github.com/storelinehq/storeline-backend/pkg/config"
	"github.com/storelinehq/storeline-backend/pkg/logger"
	pkgtypes "github.com/storelinehq/storeline-backend/pkg/types"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubCartService struct{}

func (stubCartService) CreateCart(ctx context.Context, userID *uuid.UUID) (cartsvc.CartDTO, error) {
	return cartsvc.CartDTO{ID: uuid.New(), UserID: userID}, nil
}

func (stubCartService) GetCart(ctx context.Context, cartID uuid.UUID) (cartsvc.CartDTO, error) {
	return cartsvc.CartDTO{ID: cartID}, nil
}

func (stubCartService) AddItem(ctx context.Context, cartID, batchID uuid.UUID, quantity int) (cartsvc.CartItemDTO, error) {
	return cartsvc.CartItemDTO{ID: uuid.New(), CartID: cartID, BatchID: batchID, Quantity: quantity}, nil
}

func (stubCartService) UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (cartsvc.CartItemDTO, error) {
	return cartsvc.CartItemDTO{ID: itemID, Quantity: quantity}, nil
}

func (stubCartService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	return nil
}

func (stubCartService) DeleteCart(ctx context.Context, cartID uuid.UUID) error {
	return nil
}

type stubLookupService struct{}

func (stubLookupService) Create(ctx context.Context, kind lookups.Kind, name string) (lookups.LookupDTO, error) {
	return lookups.LookupDTO{ID: uuid.New(), Name: name}, nil
}

func (stubLookupService) List(ctx context.Context, kind lookups.Kind) ([]lookups.LookupDTO, error) {
	return []lookups.LookupDTO{{ID: uuid.New(), Name: "Pending"}}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "8080"},
	}
}

func newTestRouter() http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		testConfig(),
		logg,
		stubPinger{},
		nil,
		nil,
		nil,
		stubCartService{},
		stubLookupService{},
	)
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if env := resp.Header().Get("X-Storeline-Env"); env != "test" {
		t.Fatalf("expected env header, got %q", env)
	}
}

func TestHealthReadyWithHealthyDeps(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestCartCreateReturnsCreated(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/carts", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}

	var body pkgtypes.SuccessEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if body.Data == nil {
		t.Fatal("expected cart payload")
	}
}

func TestCartFetchRejectsMalformedID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/carts/not-a-uuid", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartAddItemRejectsBadJSON(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/carts/"+uuid.NewString()+"/items", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartAddItemRejectsZeroQuantity(t *testing.T) {
	router := newTestRouter()

	body := `{"batch_id":"` + uuid.NewString() + `","quantity":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/carts/"+uuid.NewString()+"/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartItemRemoveReturnsNoContent(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart-items/"+uuid.NewString(), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", resp.Code)
	}
}

func TestLookupListRejectsUnknownKind(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lookups/colors", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestLookupListKnownKind(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lookups/order_statuses", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestLookupCreateOnAdminRoute(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/lookups/payment_types", strings.NewReader(`{"name":"Gift Card"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
