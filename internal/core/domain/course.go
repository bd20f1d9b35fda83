package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseCategory, Course, Section and SubSection use string (UUID) keys.
type CourseCategory struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (CourseCategory) TableName() string { return "course_categories" }

func (c *CourseCategory) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type Course struct {
	ID           string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title        string          `json:"title" gorm:"not null"`
	Description  string          `json:"description" gorm:"type:text"`
	Thumbnail    string          `json:"thumbnail"`
	ThumbnailKey string          `json:"thumbnailKey"`
	Price        int             `json:"price"`
	DurationTime string          `json:"durationTime"`
	CategoryID   string          `json:"categoryId" gorm:"type:varchar(36);index;not null"`
	Category     *CourseCategory `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Sections     []Section       `json:"sections,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func (c *Course) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type Section struct {
	ID           string       `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title        string       `json:"title" gorm:"not null"`
	DurationTime string       `json:"durationTime"`
	CourseID     string       `json:"courseId" gorm:"type:varchar(36);index;not null"`
	Subsections  []SubSection `json:"subsections,omitempty" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (s *Section) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type SubSection struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title        string    `json:"title" gorm:"not null"`
	VideoURL     string    `json:"videoUrl"`
	VideoKey     string    `json:"videoKey"`
	DurationTime string    `json:"durationTime"`
	SectionID    string    `json:"sectionId" gorm:"type:varchar(36);index;not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (SubSection) TableName() string { return "sub_sections" }

func (s *SubSection) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// DurationTime renders the "{duration} {unit}" label stored on courses,
// sections and subsections.
func DurationTime(duration, unit string) string {
	return fmt.Sprintf("%s %s", duration, unit)
}
