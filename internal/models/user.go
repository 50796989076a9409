package models

// Admin roles.
const (
	RoleAdmin = "admin"
)

// AdminUser is an operator of the admin console.
type AdminUser struct {
	BaseModel
	Username     string `gorm:"uniqueIndex" json:"username"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"default:admin" json:"role"`
}
