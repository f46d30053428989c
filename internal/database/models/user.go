package models

// AnonymousUserName is the display name used for ownerless builds in share payloads.
const AnonymousUserName = "Anonymous"

// User represents an account that can own builds
type User struct {
	BaseModel
	Name         string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email        string `json:"email" gorm:"size:200;not null;uniqueIndex" validate:"required,email"`
	PasswordHash string `json:"-" gorm:"size:100;not null"`

	// Relationships
	Builds []Build `json:"builds,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
