package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/comicjam/storyboard-api/internal/core/domain"
	"github.com/comicjam/storyboard-api/internal/core/service"
	"github.com/comicjam/storyboard-api/internal/infrastructure/db/memory"
)

type stubGenerator struct {
	err error
}

func (g *stubGenerator) GenerateImage(_ context.Context, prompt string) (string, error) {
	return "https://img.example/" + strings.ReplaceAll(prompt, " ", "-") + ".png", g.err
}

func (g *stubGenerator) SuggestCaption(_ context.Context, _ string) (string, error) {
	return "Meanwhile...", g.err
}

func (g *stubGenerator) GenerateTheme(_ context.Context) (domain.ChallengeTheme, error) {
	return domain.ChallengeTheme{Title: "Clockwork City"}, g.err
}

func newTestRouter(t *testing.T, gen *stubGenerator, seed bool) *echo.Echo {
	t.Helper()
	log := zerolog.Nop()
	store := memory.NewStore()

	users := service.NewUserService(store, log, service.WithHashCost(bcrypt.MinCost))
	generation := service.NewGenerationService(gen, nil, log)
	challenges := service.NewChallengeService(store, generation, log)
	panels := service.NewPanelService(store, log)

	if seed {
		if err := service.NewSeeder(users, challenges, panels, log).Seed(context.Background()); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	return NewRouter(Dependencies{
		Users:         users,
		Challenges:    challenges,
		Panels:        panels,
		Generation:    generation,
		CurrentUserID: domain.DefaultUserID,
	}, log)
}

func do(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var obj map[string]any
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		if err := json.Unmarshal(rec.Body.Bytes(), &obj); err != nil {
			t.Fatalf("%s %s: invalid json %q", method, path, rec.Body.String())
		}
	}
	return rec, obj
}

func TestRouter_Me(t *testing.T) {
	e := newTestRouter(t, &stubGenerator{}, true)

	rec, body := do(t, e, http.MethodGet, "/api/auth/me", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body["username"] != "SpaceWriter" || body["avatarColor"] != "#6D28D9" {
		t.Errorf("unexpected user %v", body)
	}
	if _, leaked := body["password"]; leaked {
		t.Error("password must never be serialised")
	}
}

func TestRouter_MeWithoutUsers(t *testing.T) {
	e := newTestRouter(t, &stubGenerator{}, false)

	rec, body := do(t, e, http.MethodGet, "/api/auth/me", "")
	if rec.Code != http.StatusNotFound || body["message"] != "User not found" {
		t.Errorf("expected 404 User not found, got %d %v", rec.Code, body)
	}
}

func TestRouter_DailyChallenge(t *testing.T) {
	e := newTestRouter(t, &stubGenerator{}, true)
	rec, body := do(t, e, http.MethodGet, "/api/challenges/daily", "")
	if rec.Code != http.StatusOK || body["id"] != float64(1) || body["panelCount"] != float64(4) {
		t.Errorf("unexpected daily %d %v", rec.Code, body)
	}

	empty := newTestRouter(t, &stubGenerator{}, false)
	rec, body = do(t, empty, http.MethodGet, "/api/challenges/daily", "")
	if rec.Code != http.StatusNotFound || body["message"] != "No daily challenge found" {
		t.Errorf("expected 404 No daily challenge found, got %d %v", rec.Code, body)
	}
}

func TestRouter_ChallengeErrors(t *testing.T) {
	e := newTestRouter(t, &stubGenerator{}, true)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
		msg    string
	}{
		{"malformed id", http.MethodGet, "/api/challenges/abc", "", http.StatusBadRequest, "Invalid challenge ID"},
		{"unknown id", http.MethodGet, "/api/challenges/999", "", http.StatusNotFound, "Challenge not found"},
		{"daily is not community", http.MethodGet, "/api/challenges/community/1", "", http.StatusNotFound, "Challenge not found"},
		{"missing title", http.MethodPost, "/api/challenges", `{"description":"d","tags":[],"category":"Sci-Fi"}`, http.StatusBadRequest, ""},
		{"malformed body", http.MethodPost, "/api/challenges", `{"title":`, http.StatusBadRequest, "invalid request body"},
		{"patch unknown", http.MethodPatch, "/api/challenges/999", `{"status":"completed"}`, http.StatusNotFound, "Challenge not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := do(t, e, tt.method, tt.path, tt.body)
			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d (%v)", tt.code, rec.Code, body)
			}
			if tt.msg != "" && body["message"] != tt.msg {
				t.Errorf("expected message %q, got %v", tt.msg, body["message"])
			}
			if body["message"] == nil {
				t.Errorf("error responses must carry a message: %v", body)
			}
		})
	}
}

func TestRouter_CreateChallengeDefaults(t *testing.T) {
	e := newTestRouter(t, &stubGenerator{}, false)

	rec, body := do(t, e, http.MethodPost, "/api/challenges",
		`{"title":"Moon Base","description":"Life on the moon","tags":["Sci-Fi"],"category":"Sci-Fi"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %v", rec.Code, body)
	}
	if body["status"] != "active" || body["totalPanels"] != float64(6) || body["daysLeft"] != float64(3) ||
		body["panelCount"] != float64(0) || body["timeRemaining"] != float64(86400000) {
		t.Errorf("unexpected defaults %v", body)
	}
}

func TestRouter_PatchKeepsDerivedCounts(t *testing.T) {
	e := newTestRouter(t, &stubGenerator{}, true)

	rec, body := do(t, e, http.MethodPatch, "/api/challenges/1", `{"title":"Renamed","panelCount":99,"contributors":99}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %v", rec.Code, body)
	}
	if body["title"] != "Renamed" || body["panelCount"] != float64(4) || body["contributors"] != float64(4) {
		t.Errorf("derived counts must not be writable: %v", body)
	}
}

func TestRouter_SecondDailyChallengeConflicts(t *testing.T) {
	e := newTestRouter(t, &stubGenerator{}, true)

	rec, body := do(t, e, http.MethodPost, "/api/challenges", `{"title":"Another daily","isDaily":true}`)
	if rec.Code != http.StatusConflict || body["message"] != "An active daily challenge already exists" {
		t.Errorf("create: expected 409, got %d %v", rec.Code, body)
	}
	rec, body = do(t, e, http.MethodPatch, "/api/challenges/2", `{"isDaily":true}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("patch: expected 409, got %d %v", rec.Code, body)
	}

	rec, body = do(t, e, http.MethodGet, "/api/challenges/daily", "")
	if rec.Code != http.StatusOK || body["id"] != float64(1) {
		t.Errorf("daily challenge should be unchanged, got %d %v", rec.Code, body)
	}
}

func TestRouter_PanelLifecycle(t *testing.T) {
	e := newTestRouter(t, &stubGenerator{}, true)

	rec, body := do(t, e, http.MethodPost, "/api/panels",
		`{"challengeId":1,"prompt":"The figure waves","caption":"Hello?","imageUrl":"https://img/5.png"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %v", rec.Code, body)
	}
	if body["position"] != float64(5) || body["username"] != "SpaceWriter" || body["votes"] != float64(0) {
		t.Errorf("unexpected panel %v", body)
	}
	panelID := int64(body["id"].(float64))

	_, daily := do(t, e, http.MethodGet, "/api/challenges/1", "")
	if daily["panelCount"] != float64(5) || daily["contributors"] != float64(4) {
		t.Errorf("derived counts not maintained: %v", daily)
	}

	rec, _ = do(t, e, http.MethodGet, "/api/panels?challengeId=1", "")
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil || len(list) != 5 {
		t.Fatalf("expected 5 panels, got %s", rec.Body.String())
	}
	for i, p := range list {
		if p["position"] != float64(i+1) {
			t.Errorf("panel %d out of order: %v", i, p["position"])
		}
	}

	vote := `{"panelId":` + jsonInt(panelID) + `}`
	if rec, body := do(t, e, http.MethodPost, "/api/votes", vote); rec.Code != http.StatusCreated || body["userId"] != float64(1) {
		t.Fatalf("first vote: %d %v", rec.Code, body)
	}
	if rec, body := do(t, e, http.MethodPost, "/api/votes", vote); rec.Code != http.StatusConflict {
		t.Fatalf("second vote: expected 409, got %d %v", rec.Code, body)
	}

	_, voted := do(t, e, http.MethodGet, "/api/panels/"+jsonInt(panelID)+"/voted", "")
	if voted["voted"] != true {
		t.Errorf("expected voted=true, got %v", voted)
	}
	_, panel := do(t, e, http.MethodGet, "/api/panels/"+jsonInt(panelID), "")
	if panel["votes"] != float64(1) {
		t.Errorf("expected 1 vote, got %v", panel["votes"])
	}
}

func TestRouter_PanelErrors(t *testing.T) {
	e := newTestRouter(t, &stubGenerator{}, true)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
	}{
		{"list without challenge", http.MethodGet, "/api/panels", "", http.StatusBadRequest},
		{"list malformed challenge", http.MethodGet, "/api/panels?challengeId=x", "", http.StatusBadRequest},
		{"unknown panel", http.MethodGet, "/api/panels/999", "", http.StatusNotFound},
		{"panel for unknown challenge", http.MethodPost, "/api/panels", `{"challengeId":999,"prompt":"p","imageUrl":"u"}`, http.StatusNotFound},
		{"panel without image", http.MethodPost, "/api/panels", `{"challengeId":1,"prompt":"p"}`, http.StatusBadRequest},
		{"vote for unknown panel", http.MethodPost, "/api/votes", `{"panelId":999}`, http.StatusNotFound},
		{"vote without panel", http.MethodPost, "/api/votes", `{}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := do(t, e, tt.method, tt.path, tt.body)
			if rec.Code != tt.code {
				t.Errorf("expected %d, got %d (%v)", tt.code, rec.Code, body)
			}
		})
	}
}

func TestRouter_Generation(t *testing.T) {
	e := newTestRouter(t, &stubGenerator{}, true)

	rec, body := do(t, e, http.MethodPost, "/api/panels/generate", `{"prompt":"a red kite","challengeId":1}`)
	if rec.Code != http.StatusOK || body["imageUrl"] != "https://img.example/a-red-kite.png" {
		t.Errorf("generate: %d %v", rec.Code, body)
	}

	rec, body = do(t, e, http.MethodPost, "/api/captions/suggest", `{"prompt":"a red kite"}`)
	if rec.Code != http.StatusOK || body["caption"] != "Meanwhile..." {
		t.Errorf("caption: %d %v", rec.Code, body)
	}

	rec, body = do(t, e, http.MethodPost, "/api/captions/suggest", `{"prompt":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("blank prompt: expected 400, got %d %v", rec.Code, body)
	}

	rec, body = do(t, e, http.MethodPost, "/api/panels/generate", `{"prompt":"a red kite"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing challengeId: expected 400, got %d %v", rec.Code, body)
	}

	rec, body = do(t, e, http.MethodPost, "/api/challenges/generate-theme", "")
	if rec.Code != http.StatusOK || body["title"] != "Clockwork City" || body["category"] != domain.FallbackThemeCategory {
		t.Errorf("theme: %d %v", rec.Code, body)
	}

	rec, body = do(t, e, http.MethodPost, "/api/challenges/from-theme", `{"totalPanels":4}`)
	if rec.Code != http.StatusCreated || body["title"] != "Clockwork City" || body["totalPanels"] != float64(4) {
		t.Errorf("from-theme: %d %v", rec.Code, body)
	}
}

func TestRouter_GenerationFailureIs502(t *testing.T) {
	e := newTestRouter(t, &stubGenerator{err: errors.New("upstream exploded")}, true)

	for _, path := range []string{"/api/panels/generate", "/api/captions/suggest"} {
		rec, body := do(t, e, http.MethodPost, path, `{"prompt":"x","challengeId":1}`)
		if rec.Code != http.StatusBadGateway {
			t.Errorf("%s: expected 502, got %d %v", path, rec.Code, body)
		}
		if msg, _ := body["message"].(string); strings.Contains(msg, "exploded") {
			t.Errorf("%s: upstream detail leaked: %q", path, msg)
		}
	}

	_, daily := do(t, e, http.MethodGet, "/api/challenges/1", "")
	if daily["panelCount"] != float64(4) {
		t.Errorf("failed generation must not touch panels: %v", daily)
	}
}

func TestRouter_Storyboards(t *testing.T) {
	e := newTestRouter(t, &stubGenerator{}, true)

	rec, _ := do(t, e, http.MethodGet, "/api/storyboards/completed", "")
	var boards []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &boards); err != nil || len(boards) != 3 {
		t.Fatalf("expected 3 storyboards, got %s", rec.Body.String())
	}
	if boards[0]["title"] != "Robot's Day Out" || boards[0]["panelCount"] != float64(6) {
		t.Errorf("unexpected storyboard %v", boards[0])
	}

	rec, body := do(t, e, http.MethodGet, "/api/storyboards/999", "")
	if rec.Code != http.StatusNotFound || body["message"] != "Storyboard not found" {
		t.Errorf("expected 404, got %d %v", rec.Code, body)
	}
	rec, body = do(t, e, http.MethodGet, "/api/storyboards/x", "")
	if rec.Code != http.StatusBadRequest || body["message"] != "Invalid storyboard ID" {
		t.Errorf("expected 400, got %d %v", rec.Code, body)
	}
}

func TestRouter_CommunityPreviews(t *testing.T) {
	e := newTestRouter(t, &stubGenerator{}, true)

	rec, _ := do(t, e, http.MethodGet, "/api/challenges/community", "")
	var previews []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &previews); err != nil || len(previews) != 4 {
		t.Fatalf("expected 4 previews, got %s", rec.Body.String())
	}
	if previews[2]["status"] != domain.StatusComingSoon {
		t.Errorf("unexpected preview %v", previews[2])
	}
}

func TestRouter_Ops(t *testing.T) {
	e := newTestRouter(t, &stubGenerator{}, false)

	for _, path := range []string{"/health", "/health/ready", "/metrics"} {
		rec, _ := do(t, e, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
	}

	rec, body := do(t, e, http.MethodGet, "/api/nope", "")
	if rec.Code != http.StatusNotFound || body["message"] == nil {
		t.Errorf("unknown route: %d %v", rec.Code, body)
	}
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
