package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GeoPoint is the GeoJSON point shape the API speaks: [longitude, latitude].
type GeoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type Restaurant struct {
	gorm.Model
	Name    string `gorm:"not null;index"`
	URL     string
	HeroURL string

	// Stored as plain columns; exposed as a GeoJSON point via Location().
	Longitude float64 `gorm:"index:idx_restaurants_lon_lat"`
	Latitude  float64 `gorm:"index:idx_restaurants_lon_lat"`

	Telephone  string `gorm:"size:32"`
	Street     string
	Locality   string
	Region     string
	PostalCode string `gorm:"size:16"`
	Country    string

	OpeningHours datatypes.JSONMap // weekday → "HH:MM-HH:MM"

	Rating      float64
	ReviewCount int

	Menu []FoodItem `gorm:"foreignKey:RestaurantID"` // ordered by Position
}

func (r *Restaurant) Location() GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: [2]float64{r.Longitude, r.Latitude}}
}
