package directory

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slug      string `gorm:"index" json:"slug"`
	ViewCount int64  `gorm:"not null;default:0" json:"view_count"`
}

type Area struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slug      string `gorm:"index" json:"slug"`
	ViewCount int64  `gorm:"not null;default:0" json:"view_count"`
}

type Person struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ServiceID     uint      `gorm:"not null" json:"service_id"`
	Service       Category  `gorm:"foreignKey:ServiceID;constraint:OnDelete:RESTRICT" json:"service"`
	LocationID    uint      `gorm:"not null" json:"location_id"`
	Location      Area      `gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT" json:"location"`
	FirstName     string    `gorm:"size:60;not null" json:"first_name"`
	LastName      string    `gorm:"size:60;not null" json:"last_name"`
	PhoneNumber   string    `gorm:"size:14;not null" json:"phone_number"`
	Email         string    `gorm:"size:150" json:"email"`
	DateAdded     time.Time `gorm:"autoCreateTime" json:"date_added"`
	ViewCount     int64     `gorm:"not null;default:0" json:"view_count"`
	UpvoteCount   int64     `gorm:"not null;default:0" json:"upvote_count"`
	DownvoteCount int64     `gorm:"not null;default:0" json:"downvote_count"`
	AverageRating float64   `gorm:"not null;default:0" json:"average_rating"`
}

type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PersonID   uint      `gorm:"not null;index" json:"person_id"`
	Person     Person    `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"-"`
	ReviewerID *string   `gorm:"size:36" json:"reviewer_id,omitempty"`
	Rating     int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Summary    string    `gorm:"size:40;not null" json:"summary"`
	Text       string    `gorm:"size:360" json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// VisitorSession is the server-side session row behind the visitor_id cookie.
// It carries the view-counter state: how many views this browser has had
// counted, and when the last counted-or-refreshed visit happened.
type VisitorSession struct {
	VisitorID string `gorm:"primaryKey;size:36"`
	Visits    int    `gorm:"not null;default:0"`
	LastVisit *time.Time
}

func (Category) TableName() string       { return "directory.categories" }
func (Area) TableName() string           { return "directory.areas" }
func (Person) TableName() string         { return "directory.people" }
func (Review) TableName() string         { return "directory.reviews" }
func (VisitorSession) TableName() string { return "directory.visitor_sessions" }

// Slug tracks the name on every save, so renames never leave a stale slug.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Slug = Slugify(c.Name)
	return nil
}

func (a *Area) BeforeSave(tx *gorm.DB) error {
	a.Slug = Slugify(a.Name)
	return nil
}

// Viewable is any entity with a stored view count the view counter can bump.
type Viewable interface {
	TableName() string
	RowID() uint
}

func (c Category) RowID() uint { return c.ID }
func (a Area) RowID() uint     { return a.ID }
func (p Person) RowID() uint   { return p.ID }

// RecentlyAdded reports whether this person joined the directory within the
// last 10 days.
func (p Person) RecentlyAdded() bool {
	return time.Since(p.DateAdded) <= 10*24*time.Hour
}

// VotePositive reports whether upvotes outweigh downvotes.
func (p Person) VotePositive() bool {
	return p.UpvoteCount > p.DownvoteCount
}

// DisplayRating returns the average rating for display, or the "Not Yet
// Rated" placeholder when no review has ever been averaged in. A zero average
// always means unrated; a real review can never produce 0 since ratings start
// at 1.
func (p Person) DisplayRating() any {
	if p.AverageRating == 0 {
		return "Not Yet Rated"
	}
	return p.AverageRating
}
