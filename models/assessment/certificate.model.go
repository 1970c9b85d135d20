package assessment

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is an issued course-completion certificate. At most one exists
// per (user, course); issuance is idempotent. The CertificateID is the
// public verification code, e.g. USK-2025-7F3K2Q.
type Certificate struct {
	gorm.Model
	CertificateID  string    `json:"certificate_id" gorm:"unique;not null"`
	UserID         uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	CourseID       uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	InstructorName string    `json:"instructor_name"` // denormalized at issuance time
	Score          int       `json:"score"`
	IssuedAt       time.Time `json:"issued_at"`
	IsDeleted      bool      `gorm:"default:false"`
}
