package db_models

type UserRole string

const (
	RoleDriver   UserRole = "DRIVER"
	RoleOperator UserRole = "OPERATOR"
	RoleAdmin    UserRole = "ADMIN"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusBlocked UserStatus = "BLOCKED"
)

type User struct {
	BaseModel
	FullName    string `gorm:"not null"`
	Email       string `gorm:"uniqueIndex;not null"`
	Password    string `gorm:"not null"` // bcrypt hash
	Phone       string
	Address     string
	DateOfBirth *int64
	Role        UserRole   `gorm:"type:user_role;default:'DRIVER'"`
	Status      UserStatus `gorm:"type:user_status;default:'ACTIVE'"`

	Vehicles []Vehicle `gorm:"foreignKey:UserID"`
}
