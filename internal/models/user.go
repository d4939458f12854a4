package models

// User is a registered principal. Name is the login key.
type User struct {
	ID        int64   `gorm:"column:userid;primaryKey;autoIncrement"`
	Name      string  `gorm:"column:name;size:50;not null;uniqueIndex:idx_users_name"`
	Password  string  `gorm:"column:password;size:30;not null"`
	Latitude  float64 `gorm:"column:latitude;not null"`
	Longitude float64 `gorm:"column:longitude;not null"`
	Role      Role    `gorm:"column:type;not null"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
