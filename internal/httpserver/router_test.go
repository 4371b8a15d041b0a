package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"cema-admin/internal/blob"
	"cema-admin/internal/directory"
	"cema-admin/internal/domain"
	"cema-admin/internal/render"
	"cema-admin/internal/service/calculator"
	"cema-admin/internal/service/chat"
	"cema-admin/internal/service/offering"
	"cema-admin/internal/service/portfolio"
	"cema-admin/internal/service/quiz"
	"cema-admin/internal/service/users"
	"cema-admin/internal/state"
	"cema-admin/internal/store"
)

type stubDirectory struct {
	err error
}

func (s *stubDirectory) Create(context.Context, directory.CreateRequest) error { return s.err }
func (s *stubDirectory) Update(context.Context, int64, directory.UpdateRequest) error {
	return s.err
}
func (s *stubDirectory) PatchRole(context.Context, int64, string) error { return s.err }
func (s *stubDirectory) Delete(context.Context, int64) error            { return s.err }

func testRouter(t *testing.T) (*gin.Engine, *state.Tree) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	adapter := store.NewMemory()
	tree := state.Load(context.Background(), adapter, nil, nil)
	logger := log.New(io.Discard, "", 0)

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	deps := Deps{
		Tree:       tree,
		Store:      adapter,
		Portfolios: portfolio.New(tree, adapter, nil, logger),
		Offerings:  offering.New(tree, adapter, nil, logger),
		Quiz:       quiz.New(tree, adapter, nil, logger),
		Chat:       chat.New(tree, nil),
		Users:      users.New(tree, &stubDirectory{}, nil, logger),
		Calculator: calculator.New(tree, adapter, logger),
		Renderer:   renderer,
		Blobs:      blob.NewMemory(),
	}
	router, err := buildRouter(logger, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router, tree
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router, _ := testRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestReadyz(t *testing.T) {
	router, _ := testRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/readyz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := testRouter(t)
	doJSON(t, router, http.MethodGet, "/healthz", nil)
	rec := doJSON(t, router, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "admin_http_requests_total") {
		t.Fatal("expected request counter in metrics exposition")
	}
}

func TestCreatePortfolio(t *testing.T) {
	router, _ := testRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/admin/portfolios", map[string]any{
		"title":         "Villa Bali",
		"category":      "Residential",
		"imageUrl":      "https://example.com/villa.jpg",
		"description":   "Tropical villa",
		"completedDate": "2025-06-01",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var item domain.PortfolioItem
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if item.ID != 2 || !item.IsActive {
		t.Fatalf("unexpected item %+v", item)
	}
}

func TestCreatePortfolio_MissingFields(t *testing.T) {
	router, _ := testRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/admin/portfolios", map[string]any{"title": "only"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestUpdatePortfolio_UnknownIDIsNoContent(t *testing.T) {
	router, _ := testRouter(t)
	rec := doJSON(t, router, http.MethodPut, "/admin/portfolios/99", map[string]any{"title": "X"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 for silent no-op, got %d", rec.Code)
	}
}

func TestDeletePortfolio_RequiresConfirm(t *testing.T) {
	router, tree := testRouter(t)

	rec := doJSON(t, router, http.MethodDelete, "/admin/portfolios/1", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409 without confirm, got %d", rec.Code)
	}
	if len(tree.Snapshot().Portfolios) != 1 {
		t.Fatal("declined delete must not mutate")
	}

	rec = doJSON(t, router, http.MethodDelete, "/admin/portfolios/1?confirm=true", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 after confirm, got %d", rec.Code)
	}
	if len(tree.Snapshot().Portfolios) != 0 {
		t.Fatal("expected item removed")
	}
}

func TestUploadPortfolioImage(t *testing.T) {
	router, tree := testRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "villa.jpg")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write([]byte("jpeg-bytes")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/portfolios/1/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	url := tree.Snapshot().Portfolios[0].ImageURL
	if !strings.HasPrefix(url, "/uploads/portfolio/1") {
		t.Fatalf("expected stored image url, got %q", url)
	}

	get := doJSON(t, router, http.MethodGet, url, nil)
	if get.Code != http.StatusOK || get.Body.String() != "jpeg-bytes" {
		t.Fatalf("serving uploaded image failed: %d %q", get.Code, get.Body.String())
	}
}

func TestToggleUserRole_RemoteFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	adapter := store.NewMemory()
	tree := state.Load(context.Background(), adapter, nil, nil)
	logger := log.New(io.Discard, "", 0)
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	deps := Deps{
		Tree:       tree,
		Store:      adapter,
		Portfolios: portfolio.New(tree, adapter, nil, logger),
		Offerings:  offering.New(tree, adapter, nil, logger),
		Quiz:       quiz.New(tree, adapter, nil, logger),
		Chat:       chat.New(tree, nil),
		Users:      users.New(tree, &stubDirectory{err: domain.ErrRemoteUnavailable}, nil, logger),
		Calculator: calculator.New(tree, adapter, logger),
		Renderer:   renderer,
		Blobs:      blob.NewMemory(),
	}
	router, err := buildRouter(logger, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	rec := doJSON(t, router, http.MethodPost, "/admin/users/1/toggle-role?confirm=true", nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", rec.Code)
	}
	if tree.Snapshot().Users[0].Role != domain.RoleAdmin {
		t.Fatal("role must be unchanged after remote failure")
	}
}

func TestQuizResultPublicEndpoint(t *testing.T) {
	router, tree := testRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/quiz/results", map[string]any{
		"userName":    "Sari",
		"userEmail":   "sari@example.com",
		"resultTitle": "Minimalis Modern",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(tree.Snapshot().QuizResults) != 1 {
		t.Fatal("expected result appended")
	}
}

func TestPanelRendering(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/admin/panels/portfolio", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Modern Minimalist House") {
		t.Fatal("expected default portfolio item in markup")
	}

	rec = doJSON(t, router, http.MethodGet, "/admin/panels/settings", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown tab, got %d", rec.Code)
	}
}

func TestSelectTab(t *testing.T) {
	router, tree := testRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/admin/tabs/users", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if tree.Snapshot().ActiveTab != "users" {
		t.Fatalf("expected active tab users, got %q", tree.Snapshot().ActiveTab)
	}
}

func TestCalculatorUpdate(t *testing.T) {
	router, tree := testRouter(t)
	rec := doJSON(t, router, http.MethodPut, "/admin/calculator", map[string]any{
		"basePrice":                3000000,
		"serviceMultipliers":       map[string]float64{"interior": 1},
		"materialMultipliers":      map[string]float64{"standard": 1},
		"roomMultiplierPercentage": 10,
		"baseRoomCount":            3,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if tree.Snapshot().Calculator.BasePrice != 3000000 {
		t.Fatal("expected settings applied")
	}
}
