package models

// Category is the derived classification of a tracked aircraft.
type Category string

const (
	CategoryFighter    Category = "fighter"
	CategoryBomber     Category = "bomber"
	CategoryTanker     Category = "tanker"
	CategoryTransport  Category = "transport"
	CategoryAwacs      Category = "awacs"
	CategoryHelicopter Category = "helicopter"
	CategoryUAV        Category = "uav"
	CategorySpecial    Category = "special"
	CategoryTrainer    Category = "trainer"
	CategoryOther      Category = "other"
	CategoryUnknown    Category = "unknown"
)

// AllCategories lists every valid category in display order.
var AllCategories = []Category{
	CategoryFighter,
	CategoryBomber,
	CategoryTanker,
	CategoryTransport,
	CategoryAwacs,
	CategoryHelicopter,
	CategoryUAV,
	CategorySpecial,
	CategoryTrainer,
	CategoryOther,
	CategoryUnknown,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
