//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"gorm.io/gorm"

	"petcare-go/internal/app"
	"petcare-go/internal/config"
	"petcare-go/internal/db"
	"petcare-go/internal/transport/httpserver"
	"petcare-go/pkg/logger"
)

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
	cfg    config.Config
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	cfg := config.Defaults()
	cfg.DB.DSN = dsn
	log := logger.Discard()

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}
	if _, err := db.Migrate(dbConn, cfg.DB.MigrationsDir, log); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	router := httpserver.NewRouter(cfg, app.NewHandlers(dbConn, log), log)
	env := &testEnv{server: httptest.NewServer(router), db: dbConn, cfg: cfg}
	t.Cleanup(env.Close)
	return env
}

func (e *testEnv) Close() {
	e.server.Close()
	_ = db.Close(e.db)
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.Exec(
		`TRUNCATE TABLE service_update, service_review, service_report, booking_pet, booking,
		timeslot, service, servicetype, petschedule, activity, diet, pet, notification, schedule,
		ticket, serviceprovider, petowner, manager, "user" RESTART IDENTITY CASCADE`,
	).Error
}

func (e *testEnv) request(t *testing.T, method, path string, payload any) (int, map[string]any) {
	t.Helper()

	var body io.Reader = http.NoBody
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.server.URL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.server.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	out := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode %s %s: %v (%s)", method, path, err, raw)
		}
	}
	return resp.StatusCode, out
}

func (e *testEnv) mustCreate(t *testing.T, path string, payload any) int64 {
	t.Helper()

	status, body := e.request(t, http.MethodPost, path, payload)
	if status != http.StatusCreated {
		t.Fatalf("POST %s: expected 201, got %d: %v", path, status, body)
	}
	if id, ok := body["id"].(float64); ok {
		return int64(id)
	}
	return 0
}

func errorCode(body map[string]any) string {
	envelope, _ := body["error"].(map[string]any)
	code, _ := envelope["code"].(string)
	return code
}

func TestE2EPingAndHealth(t *testing.T) {
	env := setupE2E(t)

	version, err := db.Ping(context.Background(), env.cfg.DB)
	if err != nil || version == "" {
		t.Fatalf("ping: %q %v", version, err)
	}

	status, body := env.request(t, http.MethodGet, "/api/health", nil)
	if status != http.StatusOK || body["database"] != "ok" {
		t.Fatalf("health: %d %v", status, body)
	}
}

func TestE2EUsersAndTickets(t *testing.T) {
	env := setupE2E(t)

	managerID := env.mustCreate(t, "/api/users", map[string]any{
		"name": "Mia", "email": "mia@example.com", "password": "pw", "role": "MANAGER",
	})
	ownerID := env.mustCreate(t, "/api/users", map[string]any{
		"name": "Otto", "email": "otto@example.com", "password": "pw", "role": "pet owner",
	})

	status, body := env.request(t, http.MethodPost, "/api/users", map[string]any{
		"name": "Dup", "email": "otto@example.com", "password": "pw", "role": "service provider",
	})
	if status != http.StatusConflict || errorCode(body) != "already_exists" {
		t.Fatalf("duplicate email: %d %v", status, body)
	}
	status, body = env.request(t, http.MethodGet, "/api/service-providers", nil)
	if status != http.StatusOK || body["total"].(float64) != 0 {
		t.Fatalf("failed create must not leave a provider row: %d %v", status, body)
	}

	ticketID := env.mustCreate(t, "/api/tickets", map[string]any{
		"user_id": ownerID, "subject": "Refund", "description": "double charge",
	})
	ticketPath := fmt.Sprintf("/api/tickets/%d", ticketID)

	status, body = env.request(t, http.MethodPost, ticketPath+"/assign", map[string]any{"manager_id": managerID})
	if status != http.StatusOK || body["status"] != "solving" {
		t.Fatalf("assign: %d %v", status, body)
	}
	status, body = env.request(t, http.MethodPost, ticketPath+"/response", map[string]any{
		"status": "closed", "response": []byte("refunded"),
	})
	if status != http.StatusOK || body["status"] != "closed" {
		t.Fatalf("respond: %d %v", status, body)
	}
	status, body = env.request(t, http.MethodPost, ticketPath+"/response", map[string]any{"status": "solving"})
	if status != http.StatusConflict {
		t.Fatalf("closed tickets are final: %d %v", status, body)
	}

	status, _ = env.request(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", ownerID), nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete user: %d", status)
	}
	status, _ = env.request(t, http.MethodGet, ticketPath, nil)
	if status != http.StatusNotFound {
		t.Fatalf("ticket should cascade with its user, got %d", status)
	}
}

func TestE2EBookingFlow(t *testing.T) {
	env := setupE2E(t)

	ownerID := env.mustCreate(t, "/api/users", map[string]any{
		"name": "Otto", "email": "otto@example.com", "password": "pw", "role": "pet owner",
	})
	providerID := env.mustCreate(t, "/api/users", map[string]any{
		"name": "Pat", "email": "pat@example.com", "password": "pw", "role": "Service Provider",
	})

	petID := env.mustCreate(t, "/api/pets", map[string]any{
		"name": "Rex", "breed": "Beagle", "picture": []byte{0x89, 0x50}, "age": 3,
		"dob": "2023-04-01", "user_id": ownerID,
	})
	dietID := env.mustCreate(t, "/api/diets", map[string]any{"name": "Kibble", "amount": "200g", "pet_id": petID})
	env.mustCreate(t, "/api/pet-schedules", map[string]any{
		"start_date": "2026-01-01", "hour": 8, "minute": 30,
		"target": map[string]any{"kind": "diet", "id": dietID},
	})
	status, body := env.request(t, http.MethodGet, fmt.Sprintf("/api/diets/%d/schedules", dietID), nil)
	if status != http.StatusOK || body["total"].(float64) != 1 {
		t.Fatalf("diet schedules: %d %v", status, body)
	}

	typeID := env.mustCreate(t, "/api/service-types", map[string]any{"type": "Grooming"})
	serviceID := env.mustCreate(t, "/api/services", map[string]any{
		"name": "Bath", "price": 30, "duration": "01:00:00", "type_id": typeID, "provider_id": providerID,
	})
	env.mustCreate(t, fmt.Sprintf("/api/services/%d/slots", serviceID), map[string]any{"slot": "10:00"})

	status, body = env.request(t, http.MethodPost, "/api/bookings", map[string]any{
		"pet_owner_id": ownerID, "service_id": serviceID, "slot": "11:00", "serve_date": "2026-11-02",
	})
	if status != http.StatusBadRequest || errorCode(body) != "constraint_violation" {
		t.Fatalf("booking an unknown slot: %d %v", status, body)
	}

	bookID := env.mustCreate(t, "/api/bookings", map[string]any{
		"pet_owner_id": ownerID, "service_id": serviceID, "slot": "10:00", "serve_date": "2026-11-02",
		"payment_method": "card", "pet_ids": []int64{petID},
	})
	bookPath := fmt.Sprintf("/api/bookings/%d", bookID)

	status, body = env.request(t, http.MethodGet, bookPath+"/pets", nil)
	if status != http.StatusOK || body["total"].(float64) != 1 {
		t.Fatalf("booking pets: %d %v", status, body)
	}

	for _, text := range []string{"arrived", "bathing", "done"} {
		env.mustCreate(t, bookPath+"/updates", map[string]any{"text": text})
	}
	status, body = env.request(t, http.MethodGet, bookPath+"/updates", nil)
	items, _ := body["items"].([]any)
	if status != http.StatusOK || len(items) != 3 {
		t.Fatalf("updates: %d %v", status, body)
	}
	for i, item := range items {
		if n := item.(map[string]any)["no_update"].(float64); int(n) != i+1 {
			t.Fatalf("update %d numbered %v", i, n)
		}
	}

	status, body = env.request(t, http.MethodPut, bookPath+"/status", map[string]any{"status": "completed"})
	if status != http.StatusOK || body["status"] != "completed" {
		t.Fatalf("complete booking: %d %v", status, body)
	}
	env.mustCreate(t, bookPath+"/review", map[string]any{"rating": 4, "comment": "clean dog"})
	status, body = env.request(t, http.MethodPost, bookPath+"/review", map[string]any{"rating": 5})
	if status != http.StatusConflict {
		t.Fatalf("second review: %d %v", status, body)
	}
}
