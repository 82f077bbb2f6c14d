package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cyberguard-academy/internal/catalog"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	training, auth, profiles := newTestServices()
	mux := http.NewServeMux()
	NewAPIHandler(training, auth, profiles, 10).Register(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url, token string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp
}

func apiLogin(t *testing.T, server *httptest.Server) (token string) {
	t.Helper()
	var auth struct {
		User  map[string]any `json:"user"`
		Token string         `json:"token"`
	}
	resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/login",
		"", map[string]string{"email": "alex@example.com", "password": "pw"}, &auth)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status %d", resp.StatusCode)
	}
	if auth.Token == "" {
		t.Fatalf("expected token in login response")
	}
	return auth.Token
}

func TestLoginAndRegisterEndpoints(t *testing.T) {
	server := newAPIServer(t)

	var auth struct {
		User  map[string]any `json:"user"`
		Token string         `json:"token"`
	}
	resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/register",
		"", map[string]string{"name": "Sam Rivera", "email": "sam@example.com", "password": "pw"}, &auth)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status %d", resp.StatusCode)
	}
	if auth.User["name"] != "Sam Rivera" || auth.User["email"] != "sam@example.com" {
		t.Fatalf("expected stamped identity, got %v", auth.User)
	}

	apiLogin(t, server)
}

func TestQuizEndpointsHideAnswers(t *testing.T) {
	server := newAPIServer(t)

	var list []map[string]any
	resp := doJSON(t, http.MethodGet, server.URL+"/api/quizzes", "", nil, &list)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status %d", resp.StatusCode)
	}
	if len(list) != len(catalog.Quizzes()) {
		t.Fatalf("expected %d quizzes, got %d", len(catalog.Quizzes()), len(list))
	}
	for _, entry := range list {
		if _, leaked := entry["questions"]; leaked {
			t.Fatalf("quiz summary must not carry question content: %v", entry)
		}
	}

	var quiz map[string]any
	resp = doJSON(t, http.MethodGet, server.URL+"/api/quizzes/phishing-fundamentals", "", nil, &quiz)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status %d", resp.StatusCode)
	}
	if quiz["questionCount"].(float64) != 5 {
		t.Fatalf("expected 5 questions, got %v", quiz["questionCount"])
	}

	resp = doJSON(t, http.MethodGet, server.URL+"/api/quizzes/no-such-quiz", "", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown quiz, got %d", resp.StatusCode)
	}
}

func TestScenarioAndBadgeEndpoints(t *testing.T) {
	server := newAPIServer(t)

	var scenarios []map[string]any
	if resp := doJSON(t, http.MethodGet, server.URL+"/api/scenarios", "", nil, &scenarios); resp.StatusCode != http.StatusOK {
		t.Fatalf("scenarios status %d", resp.StatusCode)
	}
	if len(scenarios) != len(catalog.Scenarios()) {
		t.Fatalf("expected %d scenarios, got %d", len(catalog.Scenarios()), len(scenarios))
	}

	var badges []map[string]any
	if resp := doJSON(t, http.MethodGet, server.URL+"/api/badges", "", nil, &badges); resp.StatusCode != http.StatusOK {
		t.Fatalf("badges status %d", resp.StatusCode)
	}
	if len(badges) != len(catalog.Badges()) {
		t.Fatalf("expected %d badges, got %d", len(catalog.Badges()), len(badges))
	}
}

func TestLeaderboardEndpoint(t *testing.T) {
	server := newAPIServer(t)

	var board struct {
		Entries []map[string]any `json:"entries"`
	}
	if resp := doJSON(t, http.MethodGet, server.URL+"/api/leaderboard", "", nil, &board); resp.StatusCode != http.StatusOK {
		t.Fatalf("leaderboard status %d", resp.StatusCode)
	}

	if resp := doJSON(t, http.MethodGet, server.URL+"/api/leaderboard?limit=0", "", nil, nil); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad limit, got %d", resp.StatusCode)
	}
}

func TestProfileEndpointsRequireToken(t *testing.T) {
	server := newAPIServer(t)

	if resp := doJSON(t, http.MethodGet, server.URL+"/api/profile", "", nil, nil); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
	if resp := doJSON(t, http.MethodGet, server.URL+"/api/profile", "garbage", nil, nil); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", resp.StatusCode)
	}

	token := apiLogin(t, server)

	var profile struct {
		User     map[string]any `json:"user"`
		DarkMode bool           `json:"darkMode"`
	}
	if resp := doJSON(t, http.MethodGet, server.URL+"/api/profile", token, nil, &profile); resp.StatusCode != http.StatusOK {
		t.Fatalf("profile status %d", resp.StatusCode)
	}
	if profile.User["id"] != catalog.DemoUser().ID {
		t.Fatalf("expected demo profile, got %v", profile.User)
	}
	if !profile.DarkMode {
		t.Fatalf("expected dark mode default")
	}

	var attempts []map[string]any
	if resp := doJSON(t, http.MethodGet, server.URL+"/api/profile/attempts", token, nil, &attempts); resp.StatusCode != http.StatusOK {
		t.Fatalf("attempts status %d", resp.StatusCode)
	}
	if len(attempts) != 0 {
		t.Fatalf("expected empty history, got %v", attempts)
	}
}

func TestThemeToggleEndpoint(t *testing.T) {
	server := newAPIServer(t)
	token := apiLogin(t, server)

	var theme themeResponse
	if resp := doJSON(t, http.MethodPut, server.URL+"/api/profile/theme", token, nil, &theme); resp.StatusCode != http.StatusOK {
		t.Fatalf("theme status %d", resp.StatusCode)
	}
	if theme.DarkMode {
		t.Fatalf("expected toggle off from default")
	}
	if resp := doJSON(t, http.MethodPut, server.URL+"/api/profile/theme", token, nil, &theme); resp.StatusCode != http.StatusOK {
		t.Fatalf("theme status %d", resp.StatusCode)
	}
	if !theme.DarkMode {
		t.Fatalf("expected toggle back on")
	}
}
