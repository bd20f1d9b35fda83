package domain

import "time"

// Topic groups articles and quizzes.
type Topic struct {
	ID         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name" gorm:"uniqueIndex;not null"`
	TopicImage string    `json:"topicImage"`
	ImageKey   string    `json:"imageKey"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Article struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	TopicID   int       `json:"topicId" gorm:"index;not null"`
	Topic     *Topic    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ImageURL  string    `json:"imageUrl"`
	Key       string    `json:"key"`
	Tag       string    `json:"tag"`
	Likes     []Like    `json:"likes,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Comments  []Comment `json:"comments,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ArticleSummary is an article with its engagement counters.
type ArticleSummary struct {
	Article
	TotalLikes    int `json:"totalLikes"`
	TotalComments int `json:"totalComments"`
}

// Quiz is a single timed multiple-choice item attached to a topic.
type Quiz struct {
	ID              int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title           string    `json:"title" gorm:"not null"`
	CorrectOptionID string    `json:"correctOptionId" gorm:"not null"`
	Option1         string    `json:"option1"`
	Option2         string    `json:"option2"`
	Option3         string    `json:"option3"`
	Option4         string    `json:"option4"`
	Duration        int       `json:"duration"`
	TopicID         int       `json:"topicId" gorm:"index;not null"`
	Topic           *Topic    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Question is a free-standing multiple-choice item.
type Question struct {
	ID              int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title           string    `json:"title" gorm:"not null"`
	CorrectOptionID string    `json:"correctOptionId" gorm:"not null"`
	Option1         string    `json:"option1"`
	Option2         string    `json:"option2"`
	Option3         string    `json:"option3"`
	Option4         string    `json:"option4"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Like is unique per (user, article).
type Like struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int       `json:"userId" gorm:"uniqueIndex:idx_like_user_article;not null"`
	ArticleID int       `json:"articleId" gorm:"uniqueIndex:idx_like_user_article;not null"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt"`
}

type Comment struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int       `json:"userId" gorm:"index;not null"`
	ArticleID int       `json:"articleId" gorm:"index;not null"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
