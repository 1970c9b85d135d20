package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreCountsExactTextMatches(t *testing.T) {
	correct := []string{"Paris", "4", "Go"}

	assert.Equal(t, 3, Score(correct, map[int]string{0: "Paris", 1: "4", 2: "Go"}))
	assert.Equal(t, 1, Score(correct, map[int]string{0: "Paris", 1: "5", 2: "Rust"}))
	assert.Equal(t, 0, Score(correct, map[int]string{0: "paris"}), "comparison is case sensitive string equality")
}

func TestScoreUnansweredCountsIncorrect(t *testing.T) {
	correct := []string{"A", "B", "C", "D"}

	assert.Equal(t, 2, Score(correct, map[int]string{0: "A", 3: "D"}))
	assert.Equal(t, 0, Score(correct, map[int]string{}))
	assert.Equal(t, 0, Score(correct, nil))
}

func TestScoreIgnoresOutOfRangeIndices(t *testing.T) {
	correct := []string{"A", "B"}

	assert.Equal(t, 1, Score(correct, map[int]string{0: "A", 7: "B", -1: "A"}))
}

func TestScoreIsPure(t *testing.T) {
	correct := []string{"A", "B", "C"}
	answers := map[int]string{0: "A", 1: "X", 2: "C"}

	first := Score(correct, answers)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(correct, answers))
	}
	assert.Equal(t, map[int]string{0: "A", 1: "X", 2: "C"}, answers, "scoring must not mutate the answers")
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 100, Percentage(3, 3))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 50, Percentage(2, 4))
	assert.Equal(t, 0, Percentage(0, 5))
	assert.Equal(t, 0, Percentage(0, 0), "empty question set must not divide by zero")
}

func TestStatusBoundaryIsInclusive(t *testing.T) {
	assert.Equal(t, "PASS", Status(50, 50))
	assert.Equal(t, "PASS", Status(51, 50))
	assert.Equal(t, "FAIL", Status(49, 50))
	assert.Equal(t, "PASS", Status(0, 0))
	assert.Equal(t, "PASS", Status(100, 100))
}

func TestGradingScenarios(t *testing.T) {
	correct := []string{"Paris", "4", "Mitochondria"}

	// Every question answered correctly
	score := Score(correct, map[int]string{0: "Paris", 1: "4", 2: "Mitochondria"})
	pct := Percentage(score, len(correct))
	assert.Equal(t, 3, score)
	assert.Equal(t, 100, pct)
	assert.Equal(t, "PASS", Status(pct, 50))

	// One of three correct, rest wrong or skipped
	score = Score(correct, map[int]string{0: "Paris", 1: "5"})
	pct = Percentage(score, len(correct))
	assert.Equal(t, 1, score)
	assert.Equal(t, 33, pct)
	assert.Equal(t, "FAIL", Status(pct, 50))
}
