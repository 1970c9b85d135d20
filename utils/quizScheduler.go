package utils

import (
	"log"
	"time"

	"upskillr/quiz"

	"github.com/robfig/cron/v3"
)

// InitializeQuizSessionScheduler starts the reaper that sweeps the in-memory
// quiz session map. Sessions whose deadline passed without a client-driven
// terminal transition are auto-submitted; finished ones are evicted.
func InitializeQuizSessionScheduler(manager *quiz.Manager) {
	log.Println("[QUIZ-SCHEDULER] Initializing quiz session scheduler...")

	c := cron.New()

	c.AddFunc("* * * * *", func() {
		if reaped := manager.ReapExpired(time.Now()); reaped > 0 {
			log.Printf("[QUIZ-SCHEDULER] Reaped %d expired quiz sessions", reaped)
		}
	})

	c.Start()
	log.Println("[QUIZ-SCHEDULER] Quiz session scheduler started - runs every minute")
}
