package session

import (
	"fmt"
	"math"

	"cyberguard-academy/internal/domain"
)

// CorrectCount counts positions whose recorded selection matches the item's
// correct-option index. Unanswered positions never count as correct.
func CorrectCount(items []domain.Question, selections []int) int {
	correct := 0
	for i := range items {
		if i < len(selections) && selections[i] == items[i].CorrectIndex {
			correct++
		}
	}
	return correct
}

// Score converts a correct count into a percentage, rounded to the nearest
// integer (half up).
func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// ExperiencePoints converts a percentage score into awarded XP:
// floor(score * 1.5). Only timed quizzes award experience.
func ExperiencePoints(score int) int {
	return score * 3 / 2
}

// FormatClock renders a second count as m:ss for display.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
