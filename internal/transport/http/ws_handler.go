package http

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"cyberguard-academy/internal/app"
	"cyberguard-academy/internal/domain"
	"cyberguard-academy/internal/session"
)

// SessionHandler runs live quiz and scenario play over a websocket. Each
// connection drives at most one session at a time; starting a new one abandons
// the previous run.
type SessionHandler struct {
	training *app.TrainingService
	auth     *app.AuthService
	upgrader websocket.Upgrader
}

func NewSessionHandler(training *app.TrainingService, auth *app.AuthService) *SessionHandler {
	return &SessionHandler{
		training: training,
		auth:     auth,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

type startPayload struct {
	Activity string `json:"activity"` // "quiz" or "scenario"
	ID       string `json:"id"`
}

type answerPayload struct {
	Option int `json:"option"`
}

// questionView is the client-facing shape of an item. The correct index and
// explanation stay server-side until reveal or completion.
type questionView struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

type sessionView struct {
	SessionID string          `json:"sessionId"`
	Mode      session.Mode    `json:"mode"`
	Title     string          `json:"title"`
	Position  int             `json:"position"`
	Total     int             `json:"total"`
	Selected  int             `json:"selected"`
	Revealed  bool            `json:"revealed"`
	Remaining int             `json:"remaining"`
	Question  questionView    `json:"question"`
	Kind      string          `json:"kind,omitempty"`
	Summary   string          `json:"summary,omitempty"`
	Evidence  domain.Evidence `json:"evidence,omitempty"`
}

type revealView struct {
	Position     int      `json:"position"`
	Correct      bool     `json:"correct"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
	RedFlags     []string `json:"redFlags,omitempty"`
}

type resultView struct {
	SessionID      string       `json:"sessionId"`
	AttemptID      string       `json:"attemptId"`
	Mode           session.Mode `json:"mode"`
	Score          int          `json:"score"`
	CorrectCount   int          `json:"correctCount"`
	TotalQuestions int          `json:"totalQuestions"`
	TimeSpent      int          `json:"timeSpent"`
	TimeDisplay    string       `json:"timeDisplay"`
	XP             int          `json:"xp"`
	Expired        bool         `json:"expired"`
}

// ServeWS upgrades the request and runs the session message loop until the
// client disconnects. Completion can arrive from the countdown as well as from
// the user, so the final result is always pushed from the session's results
// channel rather than returned inline.
func (h *SessionHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Authenticate(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "invalid or missing token", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	var forwarders sync.WaitGroup

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	// Only one goroutine reads Results per session; it forwards the final
	// outcome to the writer whether completion came from the user, the
	// countdown, or a Finish on the last item.
	forwardResult := func(active *app.ActiveSession) {
		forwarders.Add(1)
		go func() {
			defer forwarders.Done()
			select {
			case completed, ok := <-active.Results():
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: "result", Payload: newResultView(active.ID, completed)}:
				case <-closeSignals:
				}
			case <-closeSignals:
			}
		}()
	}

	sendErr := func(err error) {
		send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
	}

	var active *app.ActiveSession
	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}

		switch inbound.Type {
		case "start":
			var payload startPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid start payload"}}
				continue
			}
			if active != nil {
				h.training.Abandon(active.ID)
			}
			var started *app.ActiveSession
			switch payload.Activity {
			case "quiz":
				started, err = h.training.StartQuiz(r.Context(), user, payload.ID)
			case "scenario":
				started, err = h.training.StartScenario(r.Context(), user, payload.ID)
			default:
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unknown activity"}}
				continue
			}
			if err != nil {
				sendErr(err)
				continue
			}
			active = started
			forwardResult(active)
			send <- outboundMessage[any]{Type: "session", Payload: newSessionView(active)}

		case "answer":
			if active == nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "no active session"}}
				continue
			}
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid answer payload"}}
				continue
			}
			snap, err := h.training.Select(active.ID, payload.Option)
			if err != nil {
				sendErr(err)
				continue
			}
			if active.Mode == session.ModeScenario && snap.Revealed {
				send <- outboundMessage[any]{Type: "reveal", Payload: newRevealView(active, snap)}
			}
			send <- outboundMessage[any]{Type: "session", Payload: newSessionView(active)}

		case "next":
			if active == nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "no active session"}}
				continue
			}
			snap, err := h.training.Advance(active.ID)
			if err != nil {
				sendErr(err)
				continue
			}
			// Completion is announced via the result forwarder.
			if !snap.Completed {
				send <- outboundMessage[any]{Type: "session", Payload: newSessionView(active)}
			}

		case "prev":
			if active == nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "no active session"}}
				continue
			}
			if _, err := h.training.Retreat(active.ID); err != nil {
				sendErr(err)
				continue
			}
			send <- outboundMessage[any]{Type: "session", Payload: newSessionView(active)}

		case "finish":
			if active == nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "no active session"}}
				continue
			}
			if err := h.training.Finish(active.ID); err != nil {
				sendErr(err)
			}

		default:
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
	}

	if active != nil {
		h.training.Abandon(active.ID)
	}
	close(closeSignals)
	forwarders.Wait()
	close(send)
	<-writerDone
}

func newSessionView(active *app.ActiveSession) sessionView {
	snap := active.Runner.Snapshot()
	view := sessionView{
		SessionID: active.ID,
		Mode:      snap.Mode,
		Position:  snap.Position,
		Total:     snap.Total,
		Selected:  snap.Selected,
		Revealed:  snap.Revealed,
		Remaining: snap.Remaining,
	}
	if active.Quiz != nil {
		q := active.Quiz.Questions[snap.Position]
		view.Title = active.Quiz.Title
		view.Question = questionView{Prompt: q.Prompt, Options: q.Options}
		return view
	}
	item := active.Scenario.Items[snap.Position]
	view.Title = item.Title
	view.Kind = item.Kind
	view.Summary = item.Description
	view.Evidence = item.Evidence
	view.Question = questionView{Prompt: item.Prompt, Options: item.Options}
	return view
}

func newRevealView(active *app.ActiveSession, snap session.Snapshot) revealView {
	item := active.Scenario.Items[snap.Position]
	return revealView{
		Position:     snap.Position,
		Correct:      snap.Selected == item.CorrectIndex,
		CorrectIndex: item.CorrectIndex,
		Explanation:  item.Explanation,
		RedFlags:     item.RedFlags,
	}
}

func newResultView(sessionID string, completed app.Completed) resultView {
	return resultView{
		SessionID:      sessionID,
		AttemptID:      completed.Attempt.ID,
		Mode:           completed.Result.Mode,
		Score:          completed.Result.Score,
		CorrectCount:   completed.Result.CorrectCount,
		TotalQuestions: completed.Result.TotalQuestions,
		TimeSpent:      completed.Result.TimeSpent,
		TimeDisplay:    session.FormatClock(completed.Result.TimeSpent),
		XP:             completed.Result.XP,
		Expired:        completed.Result.Expired,
	}
}
