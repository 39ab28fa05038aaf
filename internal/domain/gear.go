package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Defaults applied when the optional fields are omitted on creation.
const (
	DefaultStock  = 1
	DefaultRating = 4.8
)

var (
	ErrTitleRequired    = fmt.Errorf("%w: title is required", ErrValidation)
	ErrCategoryRequired = fmt.Errorf("%w: category is required", ErrValidation)
	ErrNegativePrice    = fmt.Errorf("%w: price_per_day must not be negative", ErrValidation)
	ErrNegativeStock    = fmt.Errorf("%w: stock must not be negative", ErrValidation)
	ErrRatingOutOfRange = fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
)

// Gear represents a catalog entry as stored in the "gear" collection.
// Entries are immutable after creation; there are no update or delete
// operations in this service.
type Gear struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	PricePerDay float64            `bson:"price_per_day"`
	Category    string             `bson:"category"`
	ImageURL    string             `bson:"image_url,omitempty"`
	Stock       int                `bson:"stock"`
	Rating      float64            `bson:"rating"`
}

// GearParams carries the client-supplied fields for a new catalog entry.
// Stock and Rating are pointers because their zero values are meaningful.
type GearParams struct {
	Title       string
	Description string
	PricePerDay float64
	Category    string
	ImageURL    string
	Stock       *int
	Rating      *float64
}

// NewGear validates the supplied fields, applies defaults and returns a
// storage-ready record without an assigned identifier.
func NewGear(p GearParams) (*Gear, error) {
	if p.Title == "" {
		return nil, ErrTitleRequired
	}
	if p.Category == "" {
		return nil, ErrCategoryRequired
	}
	if p.PricePerDay < 0 {
		return nil, ErrNegativePrice
	}

	gear := &Gear{
		Title:       p.Title,
		Description: p.Description,
		PricePerDay: p.PricePerDay,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Stock:       DefaultStock,
		Rating:      DefaultRating,
	}

	if p.Stock != nil {
		if *p.Stock < 0 {
			return nil, ErrNegativeStock
		}
		gear.Stock = *p.Stock
	}
	if p.Rating != nil {
		if *p.Rating < 0 || *p.Rating > 5 {
			return nil, ErrRatingOutOfRange
		}
		gear.Rating = *p.Rating
	}

	return gear, nil
}

// GearView is the outward-facing projection of a Gear record. The store
// identifier is exposed as a plain string id, never under its native name.
type GearView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	PricePerDay float64 `json:"price_per_day"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url,omitempty"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
}

// View projects the record into its public shape.
func (g *Gear) View() GearView {
	return GearView{
		ID:          g.ID.Hex(),
		Title:       g.Title,
		Description: g.Description,
		PricePerDay: g.PricePerDay,
		Category:    g.Category,
		ImageURL:    g.ImageURL,
		Stock:       g.Stock,
		Rating:      g.Rating,
	}
}
