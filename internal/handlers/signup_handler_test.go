package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/athly-global/athly-api/internal/models"
	"github.com/athly-global/athly-api/internal/store"
)

type stubInserter struct {
	id         string
	err        error
	collection string
	record     any
	calls      int
}

func (s *stubInserter) Insert(_ context.Context, collection string, record any) (string, error) {
	s.calls++
	s.collection = collection
	s.record = record
	if s.err != nil {
		return "", s.err
	}
	return s.id, nil
}

func newSignupApp(inserter *stubInserter) *fiber.App {
	handler := NewSignupHandler(inserter)
	app := fiber.New()
	app.Post("/waitlist", handler.JoinWaitlist)
	app.Post("/client/signup", handler.ClientSignup)
	app.Post("/trainer/signup", handler.TrainerSignup)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestJoinWaitlistPersistsEntry(t *testing.T) {
	inserter := &stubInserter{id: "64f000000000000000000001"}
	app := newSignupApp(inserter)

	resp := postJSON(t, app, "/waitlist", `{"email":"fan@example.com"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if inserter.collection != "waitlist" {
		t.Fatalf("expected waitlist collection, got %q", inserter.collection)
	}

	var body struct {
		Status string `json:"status"`
		ID     string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Status != "ok" || body.ID != inserter.id {
		t.Fatalf("unexpected response: %+v", body)
	}
}

func TestJoinWaitlistRejectsInvalidEmailBeforeStore(t *testing.T) {
	inserter := &stubInserter{id: "64f000000000000000000001"}
	app := newSignupApp(inserter)

	resp := postJSON(t, app, "/waitlist", `{"email":"not-an-email"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if inserter.calls != 0 {
		t.Fatalf("expected no insert for invalid record, got %d calls", inserter.calls)
	}
}

func TestClientSignupAppliesDefaults(t *testing.T) {
	inserter := &stubInserter{id: "64f000000000000000000002"}
	app := newSignupApp(inserter)

	resp := postJSON(t, app, "/client/signup",
		`{"full_name":"Jo Client","email":"jo@example.com","password":"secret"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	client, ok := inserter.record.(models.Client)
	if !ok {
		t.Fatalf("expected models.Client, got %T", inserter.record)
	}
	if client.Goals == nil || len(client.Goals) != 0 {
		t.Fatalf("expected empty goals default, got %v", client.Goals)
	}
	if client.Timezone != nil {
		t.Fatalf("expected absent timezone to stay nil, got %v", *client.Timezone)
	}
}

func TestTrainerSignupStoresEveryDeclaredField(t *testing.T) {
	inserter := &stubInserter{id: "64f000000000000000000003"}
	app := newSignupApp(inserter)

	resp := postJSON(t, app, "/trainer/signup", `{
		"identity": {"full_name":"Ava Kim","email":"ava@example.com","password":"secret"},
		"credentials": {"certifications":["NASM-CPT"],"verified":true},
		"expertise": {"specializations":["HIIT"],"bio":"Sprint coach"},
		"pricing": {"price_30":35,"price_60":60,"timezone":"Asia/Seoul"}
	}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if inserter.collection != "trainer" {
		t.Fatalf("expected trainer collection, got %q", inserter.collection)
	}

	trainer, ok := inserter.record.(models.Trainer)
	if !ok {
		t.Fatalf("expected models.Trainer, got %T", inserter.record)
	}
	if trainer.Rating != 4.9 || trainer.ReviewsCount != 0 {
		t.Fatalf("expected rating/reviews defaults, got %v/%d", trainer.Rating, trainer.ReviewsCount)
	}
	if !trainer.Verified || len(trainer.Certifications) != 1 || len(trainer.Specializations) != 1 {
		t.Fatalf("signup fields not carried over: %+v", trainer)
	}
	if trainer.Languages == nil || trainer.Availability == nil {
		t.Fatal("expected unsupplied sequences to default to empty, not nil")
	}
	if trainer.Price30 == nil || *trainer.Price30 != 35 {
		t.Fatalf("unexpected price_30: %v", trainer.Price30)
	}
}

func TestTrainerSignupValidatesCompositePayloadAsOneUnit(t *testing.T) {
	inserter := &stubInserter{}
	app := newSignupApp(inserter)

	resp := postJSON(t, app, "/trainer/signup", `{
		"identity": {"full_name":"Ava Kim","password":"secret"},
		"pricing": {"price_30":-5}
	}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if inserter.calls != 0 {
		t.Fatalf("expected no insert, got %d calls", inserter.calls)
	}

	var body struct {
		Error  string              `json:"error"`
		Fields []models.FieldError `json:"fields"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	reported := map[string]bool{}
	for _, field := range body.Fields {
		reported[field.Field] = true
	}
	if !reported["email"] || !reported["price_30"] {
		t.Fatalf("expected both violations reported at once, got %+v", body.Fields)
	}
}

func TestSignupSurfacesStoreFailureMessage(t *testing.T) {
	inserter := &stubInserter{err: fmt.Errorf("%w: duplicate key", store.ErrWriteFailed)}
	app := newSignupApp(inserter)

	resp := postJSON(t, app, "/waitlist", `{"email":"fan@example.com"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !strings.Contains(body.Error, "duplicate key") {
		t.Fatalf("expected underlying failure message, got %q", body.Error)
	}
}
