package picture

import "gallery-backend/internal/domains/author"

// Picture is an image taken by an author.
//
// AuthorID is a soft reference: nothing guarantees that the author exists.
// Author is never stored; mutation responses attach it so the relation can be
// returned without another lookup.
type Picture struct {
	ID       string `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	ImageURL string `json:"imageUrl" db:"image_url"`
	Genre    string `json:"genre" db:"genre"`
	AuthorID string `json:"authorId" db:"author_id"`

	Author *author.Author `json:"-" db:"-"`
}

// Sortable fields accepted by FindAll
const (
	SortByTitle = "title"
	SortByGenre = "genre"
)

// Filter selects pictures by field equality. Empty fields are ignored.
type Filter struct {
	AuthorID string
}

// Matches reports whether p satisfies every non-empty field of f.
func (f Filter) Matches(p Picture) bool {
	return f.AuthorID == "" || p.AuthorID == f.AuthorID
}

// Less reports whether a sorts before b on field, ties broken by id.
func Less(a, b Picture, field string) bool {
	var x, y string
	switch field {
	case SortByTitle:
		x, y = a.Title, b.Title
	case SortByGenre:
		x, y = a.Genre, b.Genre
	default:
		return false
	}
	if x != y {
		return x < y
	}
	return a.ID < b.ID
}

// Placeholder returns a Picture carrying only its id.
func Placeholder(id string) *Picture {
	return &Picture{ID: id}
}

// Detached returns a copy without the transient author, as it is stored.
func (p Picture) Detached() Picture {
	p.Author = nil
	return p
}
