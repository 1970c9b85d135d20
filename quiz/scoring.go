package quiz

import "math"

// Score counts the answered indices whose selected option text equals the
// correct answer for that question. Unanswered questions count as incorrect.
// Pure function: same inputs always yield the same score.
func Score(correctAnswers []string, answers map[int]string) int {
	score := 0
	for i, correct := range correctAnswers {
		if selected, ok := answers[i]; ok && selected == correct {
			score++
		}
	}
	return score
}

// Percentage converts a raw score into a 0-100 integer percentage. Each
// question is worth two marks, so percentage = round(score*2 / (n*2) * 100).
func Percentage(score, questionCount int) int {
	if questionCount == 0 {
		return 0
	}
	return int(math.Round(float64(score*2) / float64(questionCount*2) * 100))
}

// Status returns PASS when the percentage meets or exceeds the passing
// threshold. The boundary is inclusive: percentage == passing is a PASS.
func Status(percentage, passingPercentage int) string {
	if percentage >= passingPercentage {
		return "PASS"
	}
	return "FAIL"
}
