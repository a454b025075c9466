package author

// Author is a person who takes pictures.
// ID is generated by the storage driver on insert.
type Author struct {
	ID             string `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	LastName       string `json:"lastName" db:"last_name"`
	FacePictureURL string `json:"facePictureUrl" db:"face_picture_url"`
}

// Sortable fields accepted by FindAll
const (
	SortByName     = "name"
	SortByLastName = "lastName"
)

// Less reports whether a sorts before b on the given field.
// Ties fall back to the id so ordering is stable across drivers.
func Less(a, b Author, field string) bool {
	var x, y string
	switch field {
	case SortByLastName:
		x, y = a.LastName, b.LastName
	case SortByName:
		x, y = a.Name, b.Name
	default:
		return false
	}
	if x != y {
		return x < y
	}
	return a.ID < b.ID
}

// Placeholder returns an Author carrying only its id.
// Used by delete responses, where the prior field values are no longer available.
func Placeholder(id string) *Author {
	return &Author{ID: id}
}
