package course

import (
	"time"

	"gorm.io/gorm"
)

// Resource is a downloadable file attached to a course, unlockable with coins.
// CoinCost 0 means the resource is free for enrolled learners.
type Resource struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileURL     string `json:"file_url"`
	FileType    string `json:"file_type" gorm:"default:'PDF'"` // PDF, ZIP, CODE
	CoinCost    uint   `json:"coin_cost" gorm:"default:0"`
	IsDeleted   bool   `gorm:"default:false"`
}

// ResourceUnlock records that a learner spent coins to unlock a resource
type ResourceUnlock struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"index;not null;uniqueIndex:idx_resource_unlock_user_resource"`
	ResourceID uint      `json:"resource_id" gorm:"index;not null;uniqueIndex:idx_resource_unlock_user_resource"`
	CourseID   uint      `json:"course_id" gorm:"index;not null"`
	CoinsSpent uint      `json:"coins_spent" gorm:"default:0"`
	UnlockedAt time.Time `json:"unlocked_at"`
	IsDeleted  bool      `gorm:"default:false"`
}
