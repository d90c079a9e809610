package models

import "time"

type ServiceCategory string

const (
	CategoryHairMen    ServiceCategory = "hair_men"
	CategoryHairWomen  ServiceCategory = "hair_women"
	CategoryNails      ServiceCategory = "nails"
	CategorySkinBeauty ServiceCategory = "skin_beauty"
	CategoryAddons     ServiceCategory = "addons"
)

// ServiceCategories lists every category in catalog display order.
var ServiceCategories = []ServiceCategory{
	CategoryHairMen,
	CategoryHairWomen,
	CategoryNails,
	CategorySkinBeauty,
	CategoryAddons,
}

// CategoryDisplayNames holds the user-facing labels. Domain logic never
// reads these; they exist for the API layer only.
var CategoryDisplayNames = map[ServiceCategory]string{
	CategoryHairMen:    "Hair Services - Men",
	CategoryHairWomen:  "Hair Services - Women",
	CategoryNails:      "Nail Services",
	CategorySkinBeauty: "Skin & Beauty Services",
	CategoryAddons:     "Add-ons & Extras",
}

func (c ServiceCategory) Valid() bool {
	_, ok := CategoryDisplayNames[c]
	return ok
}

type Service struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           string          `json:"price"` // formatted, e.g. "R150.00"
	DurationMinutes int             `json:"duration_minutes"`
	Category        ServiceCategory `json:"category" gorm:"index"`
	IsPopular       bool            `json:"is_popular"`
	ImageURL        string          `json:"image_url"`
	SortOrder       int             `json:"sort_order"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
