package assessment

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assessment represents a quiz definition attached to a course.
// Soft-deleted definitions stay stored so historical submissions remain
// dereferenceable; only isActive ones are served to learners.
type Assessment struct {
	gorm.Model
	CourseID          uint   `json:"course_id" gorm:"index;not null"`
	Title             string `json:"title"`
	Description       string `json:"description" gorm:"type:text"`
	DurationMinutes   int    `json:"duration_minutes" gorm:"default:15"`
	TotalMarks        int    `json:"total_marks" gorm:"default:0"` // defaults to question count x 2
	PassingPercentage int    `json:"passing_percentage" gorm:"default:50"`
	CreatedBy         uint   `json:"created_by" gorm:"index;not null"`
	IsActive          bool   `json:"is_active" gorm:"default:true"`
	IsDeleted         bool   `gorm:"default:false"`

	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:AssessmentID"`
}

// Question is one multiple-choice question. Options holds exactly four
// strings; CorrectAnswer is matched against the options by string equality,
// not by index.
type Question struct {
	gorm.Model
	AssessmentID  uint           `json:"assessment_id" gorm:"index;not null"`
	Text          string         `json:"text" gorm:"type:text"`
	Options       datatypes.JSON `json:"options"`
	CorrectAnswer string         `json:"correct_answer"`
	OrderIndex    int            `json:"order_index" gorm:"default:0"`
	IsDeleted     bool           `gorm:"default:false"`
}
