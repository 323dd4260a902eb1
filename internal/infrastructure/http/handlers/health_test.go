package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/testdriven/employee-api/internal/infrastructure/db/relational"
)

func TestLiveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadiness(t *testing.T) {
	db, err := relational.Open(context.Background(), relational.Config{
		Driver: relational.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "health.db"),
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = relational.Close(db) })

	tests := []struct {
		name       string
		redis      *redis.Client
		wantCode   int
		wantStatus string
		wantRedis  string
	}{
		{
			name:       "database only",
			wantCode:   http.StatusOK,
			wantStatus: "ok",
			wantRedis:  "disabled",
		},
		{
			// Nothing listens on port 1.
			name:       "redis unreachable",
			redis:      redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1}),
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "degraded",
			wantRedis:  "unhealthy",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)

			if err := NewHealthDependenciesHandler(db, tt.redis).Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}

			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if resp.Dependencies["database"].Status != "ok" {
				t.Errorf("database = %+v", resp.Dependencies["database"])
			}
			if resp.Dependencies["redis"].Status != tt.wantRedis {
				t.Errorf("redis = %+v, want %q", resp.Dependencies["redis"], tt.wantRedis)
			}
		})
	}
}
