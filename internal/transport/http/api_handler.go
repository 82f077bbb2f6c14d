package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"cyberguard-academy/internal/app"
	"cyberguard-academy/internal/domain"
)

// APIHandler serves the REST surface: auth, catalog browsing, the
// leaderboard, and the profile screen. Live session play goes over the
// websocket handler instead.
type APIHandler struct {
	training         *app.TrainingService
	auth             *app.AuthService
	profiles         *app.ProfileService
	leaderboardLimit int
}

func NewAPIHandler(training *app.TrainingService, auth *app.AuthService, profiles *app.ProfileService, leaderboardLimit int) *APIHandler {
	if leaderboardLimit <= 0 {
		leaderboardLimit = 10
	}
	return &APIHandler{
		training:         training,
		auth:             auth,
		profiles:         profiles,
		leaderboardLimit: leaderboardLimit,
	}
}

// Register mounts all routes on mux.
func (h *APIHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.HandleFunc("POST /api/auth/register", h.handleRegister)
	mux.HandleFunc("GET /api/quizzes", h.handleListQuizzes)
	mux.HandleFunc("GET /api/quizzes/{id}", h.handleGetQuiz)
	mux.HandleFunc("GET /api/scenarios", h.handleListScenarios)
	mux.HandleFunc("GET /api/badges", h.handleListBadges)
	mux.HandleFunc("GET /api/leaderboard", h.handleLeaderboard)
	mux.HandleFunc("GET /api/profile", h.requireUser(h.handleProfile))
	mux.HandleFunc("GET /api/profile/attempts", h.requireUser(h.handleAttempts))
	mux.HandleFunc("PUT /api/profile/theme", h.requireUser(h.handleToggleTheme))
}

type credentialsRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// quizSummary is the list/detail shape of a quiz. Question content ships
// without the correct index or explanation; those only cross the wire during
// play.
type quizSummary struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Category      string            `json:"category"`
	Difficulty    domain.Difficulty `json:"difficulty"`
	TimeLimit     int               `json:"timeLimit"`
	QuestionCount int               `json:"questionCount"`
}

type scenarioSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ItemCount   int    `json:"itemCount"`
}

type themeResponse struct {
	DarkMode bool `json:"darkMode"`
}

func (h *APIHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}

func (h *APIHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, token, err := h.auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

func (h *APIHandler) handleListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.training.ListQuizzes(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	summaries := make([]quizSummary, len(quizzes))
	for i, q := range quizzes {
		summaries[i] = newQuizSummary(q)
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *APIHandler) handleGetQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.training.GetQuiz(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newQuizSummary(quiz))
}

func (h *APIHandler) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.training.ListScenarios(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	summaries := make([]scenarioSummary, len(scenarios))
	for i, s := range scenarios {
		summaries[i] = scenarioSummary{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			ItemCount:   len(s.Items),
		}
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *APIHandler) handleListBadges(w http.ResponseWriter, r *http.Request) {
	badges, err := h.training.ListBadges(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, badges)
}

func (h *APIHandler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := h.leaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}
	board, err := h.training.Leaderboard(r.Context(), limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *APIHandler) handleProfile(w http.ResponseWriter, r *http.Request, user domain.User) {
	view, err := h.profiles.Profile(user.ID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *APIHandler) handleAttempts(w http.ResponseWriter, r *http.Request, user domain.User) {
	attempts, err := h.profiles.History(r.Context(), user.ID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if attempts == nil {
		attempts = []domain.Attempt{}
	}
	writeJSON(w, http.StatusOK, attempts)
}

func (h *APIHandler) handleToggleTheme(w http.ResponseWriter, r *http.Request, user domain.User) {
	writeJSON(w, http.StatusOK, themeResponse{DarkMode: h.profiles.ToggleDarkMode(user.ID)})
}

// requireUser resolves the bearer token before the wrapped handler runs.
func (h *APIHandler) requireUser(next func(http.ResponseWriter, *http.Request, domain.User)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		user, err := h.auth.Authenticate(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next(w, r, user)
	}
}

func newQuizSummary(q domain.Quiz) quizSummary {
	return quizSummary{
		ID:            q.ID,
		Title:         q.Title,
		Description:   q.Description,
		Category:      q.Category,
		Difficulty:    q.Difficulty,
		TimeLimit:     q.TimeLimit,
		QuestionCount: len(q.Questions),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorPayload{Message: message})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrQuizNotFound),
		errors.Is(err, domain.ErrScenarioNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
