package domain

import "time"

// Category groups articles on the public site.
type Category struct {
	ID          string `json:"id,omitempty"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryWithCount is the category shape served by the categories endpoint:
// the category plus the number of published articles attached to it. The
// joined article documents themselves are dropped after counting.
type CategoryWithCount struct {
	Category
	ArticleCount int `json:"articleCount"`
}

// Article is a published piece of content.
type Article struct {
	ID             string    `json:"id,omitempty"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Excerpt        string    `json:"excerpt,omitempty"`
	Content        string    `json:"content,omitempty"`
	CategorySlug   string    `json:"categorySlug"`
	Author         string    `json:"author,omitempty"`
	ReadingMinutes int       `json:"readingMinutes,omitempty"`
	PublishedAt    time.Time `json:"publishedAt,omitempty"`
}
