package models

// User represents a portal account. Supplier accounts own parts and
// documents; admin accounts manage suppliers and read audit logs.
type User struct {
	BaseModel
	Email        string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string   `json:"-" gorm:"not null;size:100"`
	Name         string   `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;default:'supplier'" validate:"required,oneof=admin supplier"`
	CompanyName  string   `json:"company_name" gorm:"size:200" validate:"max=200"`
	IsActive     bool     `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	ParentParts []ParentPart `json:"parent_parts,omitempty" gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE"`
	Documents   []Document   `json:"documents,omitempty" gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the account has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
