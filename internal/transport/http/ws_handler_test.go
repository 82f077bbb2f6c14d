package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"cyberguard-academy/internal/app"
	"cyberguard-academy/internal/catalog"
	"cyberguard-academy/internal/domain"
	"cyberguard-academy/internal/infra/memory"
)

func newTestServices() (*app.TrainingService, *app.AuthService, *app.ProfileService) {
	loader := memory.NewStaticCatalogLoader(catalog.Quizzes(), catalog.Scenarios(), catalog.Badges())
	repo := memory.NewCatalogRepository(loader, time.Minute)
	users := memory.NewUserDirectory(catalog.DemoUser())
	attempts := memory.NewAttemptStore()

	training := app.NewTrainingService(repo, memory.NewSessionStore(), attempts, memory.NewLeaderboardStore())
	auth := app.NewAuthService(users, "test-secret", time.Hour)
	profiles := app.NewProfileService(users, attempts, memory.NewPreferenceStore())
	return training, auth, profiles
}

func newWSServer(t *testing.T) (*httptest.Server, *app.AuthService, *app.TrainingService) {
	t.Helper()
	training, auth, _ := newTestServices()
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", NewSessionHandler(training, auth).ServeWS)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, auth, training
}

func dialWS(t *testing.T, server *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	u := "ws" + server.URL[len("http"):] + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func loginToken(t *testing.T, auth *app.AuthService) string {
	t.Helper()
	_, token, err := auth.Login("alex@example.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return token
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s (payload %v)", expect, msg.Type, msg.Payload)
	}
	return msg.Type, msg.Payload
}

func TestWebSocketRejectsMissingToken(t *testing.T) {
	server, _, _ := newWSServer(t)

	u := "ws" + server.URL[len("http"):] + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(u, nil)
	if err == nil {
		t.Fatalf("expected dial to fail without token")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %+v", resp)
	}
}

func TestWebSocketQuizFlow(t *testing.T) {
	server, auth, _ := newWSServer(t)
	conn := dialWS(t, server, loginToken(t, auth))

	quiz, ok := findQuiz("password-security")
	if !ok {
		t.Fatalf("fixture quiz missing")
	}

	if err := conn.WriteJSON(map[string]any{
		"type":    "start",
		"payload": map[string]any{"activity": "quiz", "id": quiz.ID},
	}); err != nil {
		t.Fatalf("write start: %v", err)
	}

	_, payload := readNext(conn, t, "session")
	if int(payload["total"].(float64)) != len(quiz.Questions) {
		t.Fatalf("expected %d items, got %v", len(quiz.Questions), payload["total"])
	}
	if payload["remaining"].(float64) <= 0 {
		t.Fatalf("expected a running countdown, got %v", payload["remaining"])
	}
	if _, leaked := payload["question"].(map[string]any)["correctIndex"]; leaked {
		t.Fatalf("correct index must not be pushed before completion")
	}

	for i, q := range quiz.Questions {
		if err := conn.WriteJSON(map[string]any{
			"type":    "answer",
			"payload": map[string]any{"option": q.CorrectIndex},
		}); err != nil {
			t.Fatalf("write answer %d: %v", i, err)
		}
		_, payload = readNext(conn, t, "session")
		if int(payload["selected"].(float64)) != q.CorrectIndex {
			t.Fatalf("expected selection %d recorded, got %v", q.CorrectIndex, payload["selected"])
		}
		if err := conn.WriteJSON(map[string]any{"type": "next"}); err != nil {
			t.Fatalf("write next %d: %v", i, err)
		}
		if i < len(quiz.Questions)-1 {
			_, payload = readNext(conn, t, "session")
			if int(payload["position"].(float64)) != i+1 {
				t.Fatalf("expected position %d, got %v", i+1, payload["position"])
			}
		}
	}

	_, payload = readNext(conn, t, "result")
	if int(payload["score"].(float64)) != 100 {
		t.Fatalf("expected perfect score, got %v", payload["score"])
	}
	if int(payload["xp"].(float64)) != 150 {
		t.Fatalf("expected 150 xp for a perfect quiz, got %v", payload["xp"])
	}
	if payload["attemptId"] == "" {
		t.Fatalf("expected attempt id on result")
	}
}

func TestWebSocketQuizNavigation(t *testing.T) {
	server, auth, _ := newWSServer(t)
	conn := dialWS(t, server, loginToken(t, auth))

	if err := conn.WriteJSON(map[string]any{
		"type":    "start",
		"payload": map[string]any{"activity": "quiz", "id": "phishing-fundamentals"},
	}); err != nil {
		t.Fatalf("write start: %v", err)
	}
	readNext(conn, t, "session")

	if err := conn.WriteJSON(map[string]any{"type": "answer", "payload": map[string]any{"option": 0}}); err != nil {
		t.Fatalf("write answer: %v", err)
	}
	readNext(conn, t, "session")
	if err := conn.WriteJSON(map[string]any{"type": "next"}); err != nil {
		t.Fatalf("write next: %v", err)
	}
	readNext(conn, t, "session")

	// Going back re-exposes the recorded selection.
	if err := conn.WriteJSON(map[string]any{"type": "prev"}); err != nil {
		t.Fatalf("write prev: %v", err)
	}
	_, payload := readNext(conn, t, "session")
	if int(payload["position"].(float64)) != 0 || int(payload["selected"].(float64)) != 0 {
		t.Fatalf("expected position 0 with selection 0, got %v", payload)
	}
}

func TestWebSocketScenarioRevealFlow(t *testing.T) {
	server, auth, _ := newWSServer(t)
	conn := dialWS(t, server, loginToken(t, auth))

	scenario := catalog.Scenarios()[0]
	if err := conn.WriteJSON(map[string]any{
		"type":    "start",
		"payload": map[string]any{"activity": "scenario", "id": scenario.ID},
	}); err != nil {
		t.Fatalf("write start: %v", err)
	}
	_, payload := readNext(conn, t, "session")
	if payload["evidence"] == nil {
		t.Fatalf("expected scenario evidence in session view")
	}

	// Moving on before answering is rejected.
	if err := conn.WriteJSON(map[string]any{"type": "next"}); err != nil {
		t.Fatalf("write next: %v", err)
	}
	readNext(conn, t, "error")

	for i, item := range scenario.Items {
		if err := conn.WriteJSON(map[string]any{
			"type":    "answer",
			"payload": map[string]any{"option": item.CorrectIndex},
		}); err != nil {
			t.Fatalf("write answer %d: %v", i, err)
		}
		_, reveal := readNext(conn, t, "reveal")
		if reveal["correct"] != true {
			t.Fatalf("expected correct reveal, got %v", reveal)
		}
		if reveal["explanation"] == "" {
			t.Fatalf("expected explanation on reveal")
		}
		readNext(conn, t, "session")
		if err := conn.WriteJSON(map[string]any{"type": "next"}); err != nil {
			t.Fatalf("write next %d: %v", i, err)
		}
		if i < len(scenario.Items)-1 {
			readNext(conn, t, "session")
		}
	}

	_, result := readNext(conn, t, "result")
	if int(result["score"].(float64)) != 100 {
		t.Fatalf("expected score 100, got %v", result["score"])
	}
	if int(result["xp"].(float64)) != 0 {
		t.Fatalf("scenario runs award no xp, got %v", result["xp"])
	}
}

func TestWebSocketFinishEarly(t *testing.T) {
	server, auth, _ := newWSServer(t)
	conn := dialWS(t, server, loginToken(t, auth))

	quiz, _ := findQuiz("malware-threats")
	if err := conn.WriteJSON(map[string]any{
		"type":    "start",
		"payload": map[string]any{"activity": "quiz", "id": quiz.ID},
	}); err != nil {
		t.Fatalf("write start: %v", err)
	}
	readNext(conn, t, "session")

	if err := conn.WriteJSON(map[string]any{
		"type":    "answer",
		"payload": map[string]any{"option": quiz.Questions[0].CorrectIndex},
	}); err != nil {
		t.Fatalf("write answer: %v", err)
	}
	readNext(conn, t, "session")
	if err := conn.WriteJSON(map[string]any{"type": "finish"}); err != nil {
		t.Fatalf("write finish: %v", err)
	}

	_, result := readNext(conn, t, "result")
	// 1 of 3 correct, the rest unanswered: round(100/3) = 33.
	if int(result["score"].(float64)) != 33 {
		t.Fatalf("expected score 33, got %v", result["score"])
	}
}

func TestWebSocketUnknownActivity(t *testing.T) {
	server, auth, _ := newWSServer(t)
	conn := dialWS(t, server, loginToken(t, auth))

	if err := conn.WriteJSON(map[string]any{
		"type":    "start",
		"payload": map[string]any{"activity": "trivia", "id": "x"},
	}); err != nil {
		t.Fatalf("write start: %v", err)
	}
	readNext(conn, t, "error")

	if err := conn.WriteJSON(map[string]any{"type": "answer", "payload": map[string]any{"option": 0}}); err != nil {
		t.Fatalf("write answer: %v", err)
	}
	readNext(conn, t, "error")
}

func findQuiz(id string) (domain.Quiz, bool) {
	for _, q := range catalog.Quizzes() {
		if q.ID == id {
			return q, true
		}
	}
	return domain.Quiz{}, false
}
