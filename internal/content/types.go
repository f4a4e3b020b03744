package content

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("content: not found")

// PostCategory classifies a marketing post.
type PostCategory string

const (
	CategorySuccessStory    PostCategory = "success_story"
	CategoryEvent           PostCategory = "event"
	CategoryArticle         PostCategory = "article"
	CategorySolutionDetails PostCategory = "solution_details"
	CategoryPastWorks       PostCategory = "past_works"
)

// PostCategories lists the accepted values in display order.
var PostCategories = []PostCategory{
	CategorySuccessStory, CategoryEvent, CategoryArticle, CategorySolutionDetails, CategoryPastWorks,
}

// Post is a publishable marketing article.
type Post struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Category  PostCategory `json:"category"`
	Content   string       `json:"content"`
	ImageURL  string       `json:"image_url"`
	Published bool         `json:"published"`
	CreatedAt time.Time    `json:"created_at"`
}

// Icon names map to the frontend's icon set; anything else renders blank,
// so the accepted list is closed here.
var Icons = []string{
	"building", "brain", "zap", "message_square", "lightbulb",
	"cog", "shield", "globe", "users",
}

// Solution is a service offering shown on the solutions page.
type Solution struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Icon         string    `json:"icon"`
	Features     []string  `json:"features"`
	DisplayOrder int       `json:"display_order"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Industry is a vertical the consultancy serves.
type Industry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Project is a delivered engagement shown on the projects page.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Features    []string  `json:"features"`
	Year        int       `json:"year"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// GalleryCategory classifies a gallery item.
type GalleryCategory string

const (
	GalleryConference    GalleryCategory = "conference"
	GalleryClientVisit   GalleryCategory = "client_visit"
	GalleryInternalEvent GalleryCategory = "internal_event"
	GalleryDemo          GalleryCategory = "demo"
	GalleryRecognition   GalleryCategory = "recognition"
	GalleryPartnership   GalleryCategory = "partnership"
	GalleryKeynote       GalleryCategory = "keynote"
	GalleryMilestone     GalleryCategory = "milestone"
	GalleryOfficeLaunch  GalleryCategory = "office_launch"
)

// GalleryCategories lists the accepted values.
var GalleryCategories = []GalleryCategory{
	GalleryConference, GalleryClientVisit, GalleryInternalEvent, GalleryDemo,
	GalleryRecognition, GalleryPartnership, GalleryKeynote, GalleryMilestone,
	GalleryOfficeLaunch,
}

// GalleryItem references an already-hosted image plus its story.
type GalleryItem struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Category      GalleryCategory `json:"category"`
	Content       string          `json:"content"`
	ImageFilename string          `json:"image_filename"`
	ImagePath     string          `json:"image_path"`
	ImageMime     string          `json:"image_mime"`
	ImageSize     int64           `json:"image_size"`
	Date          time.Time       `json:"date"`
	Location      string          `json:"location"`
	Published     bool            `json:"published"`
	Featured      bool            `json:"featured"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
}
