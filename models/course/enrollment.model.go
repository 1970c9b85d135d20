package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a learner's enrollment in a course with progress.
// CertificateUnlocked flips to true when lesson completion reaches 100%.
type Enrollment struct {
	gorm.Model
	UserID              uint       `json:"user_id" gorm:"index;not null"`
	CourseID            uint       `json:"course_id" gorm:"index;not null"`
	Status              string     `json:"status" gorm:"default:'ENROLLED'"` // ENROLLED, IN_PROGRESS, COMPLETED
	Progress            float64    `json:"progress" gorm:"default:0"`        // completion percentage (0-100)
	CompletedLessons    int        `json:"completed_lessons" gorm:"default:0"`
	TotalLessons        int        `json:"total_lessons" gorm:"default:0"`
	CertificateUnlocked bool       `json:"certificate_unlocked" gorm:"default:false"`
	CompletedAt         *time.Time `json:"completed_at"`
	IsDeleted           bool       `gorm:"default:false"`
}

// LessonCompletion tracks a learner's completion of a single lesson
type LessonCompletion struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	LessonID  uint   `json:"lesson_id" gorm:"index;not null"`
	Status    string `json:"status" gorm:"default:'COMPLETED'"`
	IsDeleted bool   `gorm:"default:false"`
}
