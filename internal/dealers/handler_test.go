package dealers_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/wrenchline/tread/internal/dealers"
	"github.com/wrenchline/tread/pkg/pagination"
)

type mockSystem struct {
	listFn        func(ctx context.Context, page pagination.PageRequest, filters dealers.Filters) (*pagination.PageResult[dealers.Dealer], error)
	findFn        func(ctx context.Context, id uuid.UUID) (*dealers.Dealer, error)
	leaderboardFn func(ctx context.Context, limit int) (*dealers.Leaderboard, error)
}

func (m *mockSystem) Handler() *dealers.Handler {
	return newTestHandler(m)
}

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters dealers.Filters) (*pagination.PageResult[dealers.Dealer], error) {
	return m.listFn(ctx, page, filters)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*dealers.Dealer, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) Leaderboard(ctx context.Context, limit int) (*dealers.Leaderboard, error) {
	return m.leaderboardFn(ctx, limit)
}

func newTestHandler(sys *mockSystem) *dealers.Handler {
	return dealers.NewHandler(
		sys,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		pagination.Config{DefaultPageSize: 20, MaxPageSize: 100},
	)
}

func setupMux(h *dealers.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func TestHandlerList(t *testing.T) {
	d := dealers.Dealer{
		ID:     uuid.MustParse("770e8400-e29b-41d4-a716-446655440000"),
		Name:   "Summit Auto Group",
		City:   "Denver",
		Region: "CO",
	}
	sys := &mockSystem{
		listFn: func(_ context.Context, _ pagination.PageRequest, _ dealers.Filters) (*pagination.PageResult[dealers.Dealer], error) {
			result := pagination.NewPageResult([]dealers.Dealer{d}, 1, 1, 20)
			return &result, nil
		},
	}
	mux := setupMux(newTestHandler(sys))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/dealers", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result pagination.PageResult[dealers.Dealer]
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(result.Data) != 1 || result.Data[0].Name != "Summit Auto Group" {
		t.Errorf("result = %+v", result)
	}
}

func TestHandlerLeaderboard(t *testing.T) {
	t.Run("passes limit through", func(t *testing.T) {
		var captured int
		sys := &mockSystem{
			leaderboardFn: func(_ context.Context, limit int) (*dealers.Leaderboard, error) {
				captured = limit
				return &dealers.Leaderboard{Entries: []dealers.LeaderboardEntry{}}, nil
			},
		}
		mux := setupMux(newTestHandler(sys))

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", "/dealers/leaderboard?limit=5", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if captured != 5 {
			t.Errorf("limit = %d, want 5", captured)
		}
	})

	t.Run("missing limit defaults to zero", func(t *testing.T) {
		var captured int
		sys := &mockSystem{
			leaderboardFn: func(_ context.Context, limit int) (*dealers.Leaderboard, error) {
				captured = limit
				return &dealers.Leaderboard{Entries: []dealers.LeaderboardEntry{}}, nil
			},
		}
		mux := setupMux(newTestHandler(sys))

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", "/dealers/leaderboard", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if captured != 0 {
			t.Errorf("limit = %d, want 0 so the repository applies its default", captured)
		}
	})
}

func TestHandlerFind(t *testing.T) {
	t.Run("invalid uuid returns 400", func(t *testing.T) {
		mux := setupMux(newTestHandler(&mockSystem{}))

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", "/dealers/not-a-uuid", nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		sys := &mockSystem{
			findFn: func(_ context.Context, _ uuid.UUID) (*dealers.Dealer, error) {
				return nil, dealers.ErrNotFound
			},
		}
		mux := setupMux(newTestHandler(sys))

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", "/dealers/"+uuid.NewString(), nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}
