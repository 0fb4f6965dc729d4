// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "time"

// Post is a story page: the main content type of the site. Listings are
// reverse-chronological by FirstPublishedAt.
type Post struct {
	ID               int64      `json:"id"`
	Slug             string     `json:"slug"`
	Title            string     `json:"title"`
	Intro            string     `json:"intro"`
	Body             string     `json:"body"` // markdown
	Date             time.Time  `json:"date"`
	Authors          []string   `json:"authors,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
	SectionID        *int64     `json:"section_id,omitempty"`
	Published        bool       `json:"published"`
	FirstPublishedAt *time.Time `json:"first_published_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Section is a landing page grouping posts, e.g. a club division or the blog
// itself. MaxRecent bounds how many recent posts its landing view shows.
type Section struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Intro     string    `json:"intro"`
	MaxRecent int       `json:"max_recent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Location is a physical site (museum, depot, layout hall) with an address
// and coordinates for map rendering.
type Location struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Intro     string    `json:"intro"`
	Address   string    `json:"address"`
	Lat       float64   `json:"lat"`
	Long      float64   `json:"long"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OperatingHours is one weekday slot for a location. TimeOpen/TimeClose hold
// "HH:MM" in the site's local time, empty when unset. A closed day keeps
// IsClosed set and optionally a holiday note.
type OperatingHours struct {
	ID          int64  `json:"id"`
	LocationID  int64  `json:"location_id"`
	DayOfWeek   string `json:"day_of_week"` // MON..SUN
	TimeOpen    string `json:"time_open,omitempty"`
	TimeClose   string `json:"time_close,omitempty"`
	IsClosed    bool   `json:"is_closed"`
	HolidayText string `json:"holiday_text,omitempty"`
}

// Event is a dated happening (open day, show, excursion), optionally tied to
// a location.
type Event struct {
	ID         int64     `json:"id"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Intro      string    `json:"intro"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	LocationID *int64    `json:"location_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PostArchive is the read model for a paginated listing: the visible window,
// the resolved page coordinates, and the compressed pager tokens (0 marks an
// ellipsis for the rendering layer).
type PostArchive struct {
	Items      []Post `json:"items"`
	PageNumber int    `json:"page_number"`
	TotalPages int    `json:"total_pages"`
	TotalItems int    `json:"total_items"`
	Pager      []int  `json:"pager"`
}

// EventListing mirrors PostArchive for upcoming events.
type EventListing struct {
	Items      []Event `json:"items"`
	PageNumber int     `json:"page_number"`
	TotalPages int     `json:"total_pages"`
	TotalItems int     `json:"total_items"`
	Pager      []int   `json:"pager"`
}

// LocationListing mirrors PostArchive for the locations index.
type LocationListing struct {
	Items      []Location `json:"items"`
	PageNumber int        `json:"page_number"`
	TotalPages int        `json:"total_pages"`
	TotalItems int        `json:"total_items"`
	Pager      []int      `json:"pager"`
}

// SectionLanding is the read model for a section landing page: the newest
// post is promoted above the fold, the next MaxRecent follow.
type SectionLanding struct {
	Section Section `json:"section"`
	Promo   *Post   `json:"promo,omitempty"`
	Recent  []Post  `json:"recent"`
}

// LocationDetail carries a location together with its weekly hours and
// whether it is open at the requested instant.
type LocationDetail struct {
	Location Location         `json:"location"`
	Hours    []OperatingHours `json:"hours"`
	Open     bool             `json:"open"`
}
