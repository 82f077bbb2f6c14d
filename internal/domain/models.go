package domain

import "time"

// Difficulty is the ordered tier of a quiz or question: easy < medium < hard.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Rank returns the ordinal of the tier so tiers can be compared and sorted.
// Unknown tiers sort first.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	}
	return 0
}

// Question is a multiple-choice item. Options carry no stable IDs; the
// position of an option IS its identity, and CorrectIndex refers into Options.
type Question struct {
	ID           string     `json:"id"`
	Prompt       string     `json:"prompt"`
	Options      []string   `json:"options"`
	CorrectIndex int        `json:"correctIndex"`
	Explanation  string     `json:"explanation"`
	Difficulty   Difficulty `json:"difficulty"`
}

// Valid reports whether the correct-option index is within bounds.
func (q Question) Valid() bool {
	return len(q.Options) > 0 && q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options)
}

// Quiz is a timed, ordered collection of questions. Immutable once loaded.
type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	TimeLimit   int        `json:"timeLimit"` // seconds
	Questions   []Question `json:"questions"`
}

// Evidence is the free-form artifact shown before a scenario question,
// e.g. the headers and body of a simulated phishing email.
type Evidence map[string]string

// ScenarioItem is a walkthrough step: evidence to inspect, then a question.
// Structurally a Question plus the artifact and its list of red flags.
type ScenarioItem struct {
	Question
	Kind        string   `json:"kind"` // "email", "website"
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Evidence    Evidence `json:"evidence"`
	RedFlags    []string `json:"redFlags"`
}

// Scenario is an untimed, linear walkthrough of evidence-based items.
type Scenario struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Items       []ScenarioItem `json:"items"`
}

// Attempt is the immutable record of one completed session. Appended to the
// attempt history exactly once; never mutated or removed.
type Attempt struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	ActivityID     string    `json:"activityId"`
	Score          int       `json:"score"` // percentage, 0..100
	TotalQuestions int       `json:"totalQuestions"`
	CompletedAt    time.Time `json:"completedAt"`
	TimeSpent      int       `json:"timeSpent"` // seconds, 0 for scenarios
}

// Badge is catalog content. Condition is display text only; nothing in the
// system evaluates whether it is met.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Condition   string `json:"condition"`
}

// User is a profile. XP, Level, Streak and Badges are seeded demo values;
// completed attempts do not feed back into them.
type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	AvatarURL string  `json:"avatar,omitempty"`
	XP        int     `json:"xp"`
	Level     int     `json:"level"`
	Streak    int     `json:"streak"`
	Badges    []Badge `json:"badges"`
}

// LeaderboardEntry is one row of the scoreboard.
type LeaderboardEntry struct {
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	AvatarURL    string `json:"avatar,omitempty"`
	TotalScore   int    `json:"totalScore"`
	TotalQuizzes int    `json:"totalQuizzes"`
	AverageScore int    `json:"averageScore"`
	Badges       int    `json:"badges"`
	Level        int    `json:"level"`
	Rank         int    `json:"rank"`
}

// Leaderboard captures the ordered scoreboard.
type Leaderboard struct {
	Entries   []LeaderboardEntry `json:"entries"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
