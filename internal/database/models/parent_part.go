package models

import (
	"math"

	"github.com/google/uuid"
)

// weightTolerance is the allowed relative deviation between the declared
// parent weight and the sum of its children's weights before the part is
// flagged for review.
const weightTolerance = 0.01

// ParentPart represents a top-level part record identified by a SKU unique
// per supplier. Child parts belong to exactly one parent.
type ParentPart struct {
	BaseModel
	SupplierID      uuid.UUID  `json:"supplier_id" gorm:"type:uuid;not null;index" validate:"required"`
	SKU             string     `json:"sku" gorm:"uniqueIndex:idx_supplier_sku,composite:supplier_id;not null;size:100" validate:"required,min=1,max=100"`
	Name            string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description     string     `json:"description" gorm:"type:text"`
	CountryOfOrigin string     `json:"country_of_origin" gorm:"size:100"`
	TotalWeightKg   float64    `json:"total_weight_kg" gorm:"not null;default:0" validate:"gte=0"`
	TotalValueUSD   float64    `json:"total_value_usd" gorm:"not null;default:0" validate:"gte=0"`
	Status          PartStatus `json:"status" gorm:"type:varchar(20);not null;default:'incomplete'"`

	// Relationships
	Supplier   *User       `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	ChildParts []ChildPart `json:"child_parts" gorm:"foreignKey:ParentPartID;constraint:OnDelete:CASCADE"`
	Documents  []Document  `json:"documents,omitempty" gorm:"many2many:document_parent_parts;"`
}

// TableName returns the table name for ParentPart
func (ParentPart) TableName() string {
	return "parent_parts"
}

// DeriveStatus computes the part status from its children. Precedence is
// incomplete > needs_review > completed: a part with no children or any
// incomplete child is incomplete; a complete part is flagged for review
// when any child carries Russian content or the children's weight sum
// deviates from the declared total by more than the tolerance.
func (p *ParentPart) DeriveStatus() PartStatus {
	if len(p.ChildParts) == 0 {
		return PartStatusIncomplete
	}

	var childWeight float64
	flagged := false
	for _, cp := range p.ChildParts {
		if !cp.IsComplete {
			return PartStatusIncomplete
		}
		childWeight += cp.WeightKg
		if cp.HasRussianContent {
			flagged = true
		}
	}

	if p.TotalWeightKg > 0 && math.Abs(childWeight-p.TotalWeightKg)/p.TotalWeightKg > weightTolerance {
		flagged = true
	}

	if flagged {
		return PartStatusNeedsReview
	}
	return PartStatusCompleted
}
