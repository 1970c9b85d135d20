package course

import "gorm.io/gorm"

// Course represents a marketplace course authored by an instructor
type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Category     string `json:"category"`
	InstructorID uint   `gorm:"index;not null" json:"instructor_id"`
	Duration     int64  `json:"duration" gorm:"default:0"`     // duration in hours
	Status       string `json:"status" gorm:"default:'DRAFT'"` // DRAFT, ACTIVE, INACTIVE
	Rating       uint   `json:"rating" gorm:"default:0"`
	ThumbnailURL string `json:"thumbnail_url"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	// Denormalized back-reference to the active assessment for this course.
	// Last write wins when an instructor creates another assessment.
	AssessmentID uint `json:"assessment_id" gorm:"default:0"`
	IsDeleted    bool `gorm:"default:false"`
}

// Section represents an ordered group of lessons within a course
type Section struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsDeleted   bool   `gorm:"default:false"`
}

// Lesson represents a single unit of content within a section
type Lesson struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	SectionID   uint   `json:"section_id" gorm:"index;not null"`
	Title       string `json:"title"`
	ContentType string `json:"content_type" gorm:"default:'VIDEO'"` // VIDEO, TEXT
	TextContent string `json:"text_content" gorm:"type:text"`
	VideoURL    string `json:"video_url"`
	DurationMin int    `json:"duration_min" gorm:"default:0"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsPublished bool   `json:"is_published" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}
