package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/athly-global/athly-api/internal/services"
	"github.com/athly-global/athly-api/internal/store"
)

type stubFinder struct {
	docs []store.Document
	err  error
}

func (s *stubFinder) Find(_ context.Context, _ string, _ store.Predicate, _ int64) ([]store.Document, error) {
	return s.docs, s.err
}

func newSearchApp(finder services.TrainerFinder) *fiber.App {
	handler := NewTrainerSearchHandler(services.NewTrainerSearchService(finder))
	app := fiber.New()
	app.Post("/trainers/search", handler.SearchTrainers)
	app.Get("/trainers/featured", handler.FeaturedTrainers)
	return app
}

func decodeItems(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	var body struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return body.Items
}

func TestSearchTrainersFallsBackToSeedList(t *testing.T) {
	app := newSearchApp(&stubFinder{})

	resp := postJSON(t, app, "/trainers/search", `{"specialization":"Yoga"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	items := decodeItems(t, resp)
	if len(items) != 5 {
		t.Fatalf("expected 5 seed trainers, got %d", len(items))
	}
	for _, item := range items {
		if _, ok := item["_id"]; ok {
			t.Fatalf("seed trainer must not carry an identifier: %v", item)
		}
	}
}

func TestSearchTrainersSurfacesStoreIdentifiers(t *testing.T) {
	app := newSearchApp(&stubFinder{docs: []store.Document{
		{"_id": "64f000000000000000000009", "full_name": "Trainer A", "rating": 4.9},
	}})

	resp := postJSON(t, app, "/trainers/search", `{"specialization":"Yoga"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	items := decodeItems(t, resp)
	if len(items) != 1 || items[0]["_id"] != "64f000000000000000000009" {
		t.Fatalf("unexpected items: %v", items)
	}
}

func TestSearchTrainersRequiresSpecialization(t *testing.T) {
	app := newSearchApp(&stubFinder{})

	resp := postJSON(t, app, "/trainers/search", `{}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestStoreOutageFailsSearchButNotFeatured(t *testing.T) {
	finder := &stubFinder{err: fmt.Errorf("%w: connection refused", store.ErrUnavailable)}
	app := newSearchApp(finder)

	resp := postJSON(t, app, "/trainers/search", `{"specialization":"Yoga"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected search to fail loud with 500, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/trainers/featured", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected featured to degrade silently with 200, got %d", resp.StatusCode)
	}
	if items := decodeItems(t, resp); len(items) != 5 {
		t.Fatalf("expected 5 seed trainers during outage, got %d", len(items))
	}
}
