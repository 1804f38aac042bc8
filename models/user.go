package models

// User is a row in the legacy credential table. The password column
// holds a bcrypt hash and is never serialized.
type User struct {
	ID       uint   `json:"id" gorm:"column:tbl_id;primaryKey"`
	Email    string `json:"email" gorm:"column:tbl_email;unique;not null"`
	Password string `json:"-" gorm:"column:tbl_password;not null"`
}

func (User) TableName() string {
	return "user_login"
}
