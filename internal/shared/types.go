package shared

// Storage drivers selectable through STORAGE_DRIVER
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// FindOptions describes an ordered, optionally windowed find over a collection.
// A zero Limit means "no limit".
type FindOptions struct {
	SortBy string // field name, ascending
	Skip   int
	Limit  int
}

// Window applies Skip/Limit to an already sorted slice.
func Window[T any](items []T, opts FindOptions) []T {
	if opts.Skip >= len(items) {
		return []T{}
	}
	if opts.Skip > 0 {
		items = items[opts.Skip:]
	}
	if opts.Limit > 0 && opts.Limit < len(items) {
		items = items[:opts.Limit]
	}
	return items
}
