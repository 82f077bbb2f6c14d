package session

import (
	"sync"
	"time"

	"cyberguard-academy/internal/domain"
)

// Mode selects the rules a Runner enforces.
//
// Quiz mode: countdown timer, free backward/forward navigation, selections
// stay editable until the session finishes.
// Scenario mode: untimed and linear; the first selection on an item reveals
// its explanation and locks the item.
type Mode string

const (
	ModeQuiz     Mode = "quiz"
	ModeScenario Mode = "scenario"
)

// NoSelection is the sentinel for an unanswered position.
const NoSelection = -1

// Config carries the immutable parameters of a run.
type Config struct {
	Mode      Mode
	TimeLimit int // seconds; ignored in scenario mode
}

// Result is the read-only outcome of a completed run. The Runner never writes
// the attempt history itself; callers build the attempt record from this.
type Result struct {
	Mode           Mode `json:"mode"`
	Score          int  `json:"score"` // percentage, 0..100
	CorrectCount   int  `json:"correctCount"`
	TotalQuestions int  `json:"totalQuestions"`
	TimeSpent      int  `json:"timeSpent"` // seconds; 0 in scenario mode
	XP             int  `json:"xp"`        // 0 in scenario mode
	Expired        bool `json:"expired"`   // completion forced by the countdown
}

// Snapshot is a point-in-time view of a run for presentation.
type Snapshot struct {
	Mode      Mode `json:"mode"`
	Position  int  `json:"position"`
	Total     int  `json:"total"`
	Selected  int  `json:"selected"` // NoSelection when unanswered
	Revealed  bool `json:"revealed"`
	Remaining int  `json:"remaining"` // seconds left on the countdown
	Completed bool `json:"completed"`
}

// Runner drives a user through an ordered item sequence: one selection per
// item, then a final score. All state transitions happen under one mutex; the
// only other flow of control is the countdown goroutine in quiz mode.
type Runner struct {
	mode  Mode
	items []domain.Question

	mu         sync.Mutex
	position   int
	selections []int
	revealed   []bool
	timeLimit  int
	remaining  int
	completed  bool
	closed     bool
	result     Result

	done      chan Result
	stop      chan struct{}
	stopOnce  sync.Once
	newTicker func(time.Duration) *time.Ticker
}

// New validates the run parameters and builds a Runner at position 0 with all
// selections unset. The countdown does not begin until Start.
func New(items []domain.Question, cfg Config) (*Runner, error) {
	if len(items) == 0 {
		return nil, domain.ErrNoQuestions
	}
	if cfg.Mode == ModeQuiz && cfg.TimeLimit < 0 {
		return nil, domain.ErrInvalidTimeLimit
	}

	timeLimit := cfg.TimeLimit
	if cfg.Mode == ModeScenario {
		timeLimit = 0
	}

	selections := make([]int, len(items))
	for i := range selections {
		selections[i] = NoSelection
	}

	return &Runner{
		mode:       cfg.Mode,
		items:      items,
		selections: selections,
		revealed:   make([]bool, len(items)),
		timeLimit:  timeLimit,
		remaining:  timeLimit,
		done:       make(chan Result, 1),
		stop:       make(chan struct{}),
		newTicker:  time.NewTicker,
	}, nil
}

// Start begins the countdown when the run has a time budget. The recurring
// tick is torn down on completion, Close, or time expiry; every exit path
// releases it.
func (r *Runner) Start() {
	r.mu.Lock()
	timed := r.mode == ModeQuiz && r.timeLimit > 0 && !r.completed
	r.mu.Unlock()
	if !timed {
		return
	}

	go func() {
		ticker := r.newTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if r.tick() {
					return
				}
			case <-r.stop:
				return
			}
		}
	}()
}

// tick decrements the time budget by one second and forces completion at
// zero. Returns true once the countdown should stop.
func (r *Runner) tick() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.completed {
		return true
	}
	r.remaining--
	if r.remaining <= 0 {
		r.remaining = 0
		r.completeLocked(true)
		return true
	}
	return false
}

// Select records the chosen option for the current item.
//
// Quiz mode: re-selection before finishing overwrites the prior choice.
// Scenario mode: the first selection reveals the item; once revealed,
// further calls are no-ops.
func (r *Runner) Select(optionIndex int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.completed {
		return domain.ErrSessionCompleted
	}
	if optionIndex < 0 || optionIndex >= len(r.items[r.position].Options) {
		return domain.ErrInvalidOption
	}
	if r.mode == ModeScenario {
		if r.revealed[r.position] {
			return nil
		}
		r.revealed[r.position] = true
	}
	r.selections[r.position] = optionIndex
	return nil
}

// Advance moves to the next item, or completes the run at the last one.
// Scenario mode requires the current item to be revealed first.
// The returned Result is non-nil only when this call completed the run.
func (r *Runner) Advance() (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.completed {
		return nil, domain.ErrSessionCompleted
	}
	if r.mode == ModeScenario && !r.revealed[r.position] {
		return nil, domain.ErrAnswerRequired
	}
	if r.position < len(r.items)-1 {
		r.position++
		return nil, nil
	}
	result := r.completeLocked(false)
	return &result, nil
}

// Retreat moves back one position in quiz mode, re-exposing the recorded
// selection for edit. A no-op at position 0; invalid in scenario mode.
func (r *Runner) Retreat() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.completed {
		return domain.ErrSessionCompleted
	}
	if r.mode != ModeQuiz {
		return domain.ErrInvalidNavigation
	}
	if r.position > 0 {
		r.position--
	}
	return nil
}

// Complete finishes the run and computes the final score. Idempotent: after
// the first call it returns the already-computed result unchanged.
func (r *Runner) Complete() Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.completed {
		return r.result
	}
	return r.completeLocked(false)
}

// TimeExpired forces completion regardless of progress. Unanswered positions
// count as wrong, never as excluded from the denominator.
func (r *Runner) TimeExpired() Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.completed {
		return r.result
	}
	r.remaining = 0
	return r.completeLocked(true)
}

func (r *Runner) completeLocked(expired bool) Result {
	correct := CorrectCount(r.items, r.selections)
	score := Score(correct, len(r.items))

	result := Result{
		Mode:           r.mode,
		Score:          score,
		CorrectCount:   correct,
		TotalQuestions: len(r.items),
		Expired:        expired,
	}
	if r.mode == ModeQuiz {
		result.TimeSpent = r.timeLimit - r.remaining
		result.XP = ExperiencePoints(score)
	}

	r.completed = true
	r.result = result
	if !r.closed {
		r.done <- result
	}
	r.stopCountdown()
	return result
}

// Done delivers the final Result exactly once, whether completion came from
// the user or from time expiry. The channel is closed without a value when
// the run is abandoned via Close.
func (r *Runner) Done() <-chan Result {
	return r.done
}

// Close tears down the countdown without completing the run, and releases
// anyone waiting on Done. Safe to call on any exit path, any number of times.
func (r *Runner) Close() {
	r.mu.Lock()
	if !r.completed && !r.closed {
		r.closed = true
		close(r.done)
	}
	r.mu.Unlock()
	r.stopCountdown()
}

func (r *Runner) stopCountdown() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// Snapshot returns the current view of the run.
func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		Mode:      r.mode,
		Position:  r.position,
		Total:     len(r.items),
		Selected:  r.selections[r.position],
		Revealed:  r.revealed[r.position],
		Remaining: r.remaining,
		Completed: r.completed,
	}
}

// Item returns the question at the current position.
func (r *Runner) Item() domain.Question {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[r.position]
}

// Selection returns the recorded choice at pos, or NoSelection.
func (r *Runner) Selection(pos int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pos < 0 || pos >= len(r.selections) {
		return NoSelection
	}
	return r.selections[pos]
}

// Revealed reports whether the item at pos has shown its explanation.
func (r *Runner) Revealed(pos int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pos < 0 || pos >= len(r.revealed) {
		return false
	}
	return r.revealed[pos]
}

// Mode returns the rules the run was started under.
func (r *Runner) Mode() Mode {
	return r.mode
}
