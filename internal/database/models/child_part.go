package models

import "github.com/google/uuid"

// PoundsPerKilogram converts the stored metric weight to the imperial
// weight reported alongside it.
const PoundsPerKilogram = 2.20462

// ChildPart represents a component of a parent part, tracked for
// customs/compliance attributes. The identifier is unique within the parent.
type ChildPart struct {
	BaseModel
	ParentPartID              uuid.UUID `json:"parent_part_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_parent_identifier" validate:"required"`
	Identifier                string    `json:"identifier" gorm:"not null;size:100;uniqueIndex:idx_parent_identifier" validate:"required,min=1,max=100"`
	Name                      string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description               string    `json:"description" gorm:"type:text"`
	CountryOfOrigin           string    `json:"country_of_origin" gorm:"size:100"`
	WeightKg                  float64   `json:"weight_kg" gorm:"not null;default:0" validate:"gte=0"`
	WeightLbs                 float64   `json:"weight_lbs" gorm:"not null;default:0"`
	ValueUSD                  float64   `json:"value_usd" gorm:"not null;default:0" validate:"gte=0"`
	AluminumContentPercent    float64   `json:"aluminum_content_percent" gorm:"not null;default:0" validate:"gte=0,lte=100"`
	SteelContentPercent       float64   `json:"steel_content_percent" gorm:"not null;default:0" validate:"gte=0,lte=100"`
	HasRussianContent         bool      `json:"has_russian_content" gorm:"not null;default:false"`
	RussianContentPercent     float64   `json:"russian_content_percent" gorm:"not null;default:0" validate:"gte=0,lte=100"`
	RussianContentDescription string    `json:"russian_content_description" gorm:"type:text"`
	ManufacturingMethod       string    `json:"manufacturing_method" gorm:"size:100"`
	IsComplete                bool      `json:"is_complete" gorm:"not null;default:false"`

	// Relationships
	Documents []Document `json:"documents,omitempty" gorm:"many2many:document_child_parts;"`
}

// TableName returns the table name for ChildPart
func (ChildPart) TableName() string {
	return "child_parts"
}

// Recalculate refreshes the derived fields after any mutation: the imperial
// weight mirror and the completeness flag, which is true iff all required
// compliance fields are populated.
func (c *ChildPart) Recalculate() {
	c.WeightLbs = c.WeightKg * PoundsPerKilogram
	c.IsComplete = c.Identifier != "" &&
		c.Name != "" &&
		c.CountryOfOrigin != "" &&
		c.WeightKg > 0 &&
		c.ValueUSD > 0
}
