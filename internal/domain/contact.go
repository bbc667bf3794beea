package domain

// Contact представляет модель контакта,
// соответствует таблице contacts в бд.
// Все поля кроме first_name опциональны, владелец задается полем Username.
type Contact struct {
	ID        int64   `json:"id" gorm:"primaryKey;autoIncrement" db:"id"`
	Username  string  `json:"username" gorm:"column:username;index" db:"username"`
	FirstName string  `json:"first_name" gorm:"column:first_name" db:"first_name"`
	LastName  *string `json:"last_name,omitempty" gorm:"column:last_name" db:"last_name"`
	Email     *string `json:"email,omitempty" gorm:"column:email" db:"email"`
	Phone     *string `json:"phone,omitempty" gorm:"column:phone" db:"phone"`
}

func (Contact) TableName() string {
	return "contacts"
}
