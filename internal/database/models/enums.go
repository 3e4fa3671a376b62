package models

// UserRole represents the role of a portal account
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleSupplier UserRole = "supplier"
)

// PartStatus represents the derived completeness status of a parent part
type PartStatus string

const (
	PartStatusIncomplete  PartStatus = "incomplete"
	PartStatusNeedsReview PartStatus = "needs_review"
	PartStatusCompleted   PartStatus = "completed"
)

// AuditAction represents the kind of mutation recorded in the audit log
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
	AuditActionImport AuditAction = "import"
)

// AuditEntityType identifies which entity an audit entry refers to
type AuditEntityType string

const (
	AuditEntityParentPart  AuditEntityType = "parent_part"
	AuditEntityChildPart   AuditEntityType = "child_part"
	AuditEntityDocument    AuditEntityType = "document"
	AuditEntitySupplier    AuditEntityType = "supplier"
	AuditEntityBatchImport AuditEntityType = "batch_import"
)
