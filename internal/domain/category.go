package domain

// Category is one of the fixed budget buckets money is routed into.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category ids, in registry order.
const (
	CategoryObligatorios    = "o"
	CategoryEntretenimiento = "e"
	CategoryAhorro          = "a"
	CategoryInversion       = "i"
	CategoryEducacion       = "ed"
	CategoryDonaciones      = "d"
)

// EssentialCategoryID is the bucket whose lifetime spend counts as essential
// spending in the capacity analysis.
const EssentialCategoryID = CategoryObligatorios

// registry is the whole category universe. The order is fixed and drives
// every per-category iteration, including how income is distributed across
// envelopes. Nothing adds or removes categories at runtime.
var registry = []Category{
	{ID: CategoryObligatorios, Name: "Obligatorios"},
	{ID: CategoryEntretenimiento, Name: "Entretenimiento"},
	{ID: CategoryAhorro, Name: "Ahorro"},
	{ID: CategoryInversion, Name: "Inversión"},
	{ID: CategoryEducacion, Name: "Educación"},
	{ID: CategoryDonaciones, Name: "Donaciones"},
}

// Categories returns the fixed, ordered category registry.
func Categories() []Category {
	out := make([]Category, len(registry))
	copy(out, registry)
	return out
}

// CategoryByID looks up a category by id.
func CategoryByID(id string) (Category, bool) {
	for _, c := range registry {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// KnownCategory reports whether id belongs to the registry.
func KnownCategory(id string) bool {
	_, ok := CategoryByID(id)
	return ok
}
