package models

import "github.com/google/uuid"

// FallbackIcon is used whenever a category has no icon or an icon that is
// not part of the icon set.
const FallbackIcon = "X"

// Icons is the fixed set of icons a category can reference. The frontend
// maps these keys to its icon components.
var Icons = []string{
	FallbackIcon,
	"House",
	"Apple",
	"Bike",
	"Shirt",
	"Clapperboard",
	"Wallet",
	"Coffee",
	"Car",
}

// UncategorizedID is the ID of the built-in category that transactions are
// reassigned to when their category is deleted. It cannot be modified or
// deleted.
var UncategorizedID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// Category groups transactions under a display name and an icon.
type Category struct {
	DefaultModel
	CategoryEditable
}

type CategoryEditable struct {
	Name string `json:"name" binding:"required" example:"Groceries"` // Name of the category
	Icon string `json:"icon" example:"Apple" default:"X"`            // Key into the fixed icon set
}

// NewCategory returns a Category with a fresh ID for the editable fields.
func NewCategory(editable CategoryEditable) Category {
	editable.Icon = ValidIcon(editable.Icon)

	return Category{
		DefaultModel:     newDefaultModel(),
		CategoryEditable: editable,
	}
}

// Uncategorized returns the built-in sentinel category.
func Uncategorized() Category {
	return Category{
		DefaultModel: DefaultModel{ID: UncategorizedID},
		CategoryEditable: CategoryEditable{
			Name: "Uncategorized",
			Icon: FallbackIcon,
		},
	}
}

// ValidIcon returns the icon if it is part of the icon set and the fallback
// icon otherwise.
func ValidIcon(icon string) string {
	for _, i := range Icons {
		if i == icon {
			return icon
		}
	}

	return FallbackIcon
}

// CategoryPatch is a partial update to a Category. Nil fields are left
// unchanged.
type CategoryPatch struct {
	Name *string `json:"name" example:"Groceries"`
	Icon *string `json:"icon" example:"Apple"`
}

// Apply merges the patch into the category.
func (p CategoryPatch) Apply(category *Category) {
	if p.Name != nil {
		category.Name = *p.Name
	}

	if p.Icon != nil {
		category.Icon = ValidIcon(*p.Icon)
	}

	category.Touch()
}
