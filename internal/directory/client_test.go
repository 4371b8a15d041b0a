package directory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cema-admin/internal/domain"
)

func TestList_MapsCapsAndRelabels(t *testing.T) {
	var users []string
	for i := 1; i <= 15; i++ {
		users = append(users, fmt.Sprintf(`{"id":%d,"firstName":"User","lastName":"Nr%d","email":"u%d@x.com"}`, i, i, i))
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/users" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		fmt.Fprintf(w, `{"users":[%s]}`, strings.Join(users, ","))
	}))
	defer srv.Close()

	got, err := New(srv.URL, nil).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("expected cap of 10 users, got %d", len(got))
	}
	if got[0].Role != domain.RoleAdmin {
		t.Fatalf("first record must be relabeled admin, got %q", got[0].Role)
	}
	for _, u := range got[1:] {
		if u.Role != domain.RoleClient {
			t.Fatalf("expected client role, got %+v", u)
		}
	}
	if got[0].Name != "User Nr1" || got[0].Email != "u1@x.com" {
		t.Fatalf("unexpected mapping %+v", got[0])
	}
}

func TestList_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := New(srv.URL, nil).List(context.Background()); !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Fatalf("expected ErrRemoteUnavailable, got %v", err)
	}
}

func TestWriteCalls_UseDocumentedRoutes(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		fmt.Fprint(w, `{"id":1}`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	ctx := context.Background()
	if err := c.Create(ctx, CreateRequest{FirstName: "Sari", Email: "sari@x.com", Role: "client"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := c.Update(ctx, 3, UpdateRequest{FirstName: "Sari", Email: "sari@x.com"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := c.PatchRole(ctx, 3, "admin"); err != nil {
		t.Fatalf("patch role: %v", err)
	}
	if err := c.Delete(ctx, 3); err != nil {
		t.Fatalf("delete: %v", err)
	}

	want := []call{
		{http.MethodPost, "/users/add"},
		{http.MethodPut, "/users/3"},
		{http.MethodPatch, "/users/3"},
		{http.MethodDelete, "/users/3"},
	}
	if len(calls) != len(want) {
		t.Fatalf("expected %d calls, got %d", len(want), len(calls))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("call %d: expected %+v, got %+v", i, want[i], calls[i])
		}
	}
}

func TestTransportError(t *testing.T) {
	c := New("http://127.0.0.1:1", nil) // nothing listens here
	if err := c.Delete(context.Background(), 1); !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Fatalf("expected ErrRemoteUnavailable, got %v", err)
	}
}
