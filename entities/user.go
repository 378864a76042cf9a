package entities

type User struct {
	Base
	Email     string `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Username  string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	FirstName string `gorm:"size:150;not null" json:"first_name"`
	LastName  string `gorm:"size:150;not null" json:"last_name"`
	Password  string `gorm:"size:128;not null" json:"-"`
	Role      string `gorm:"size:16;not null;default:user" json:"role"`

	Timestamp
}
