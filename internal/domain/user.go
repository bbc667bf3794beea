package domain

// User представляет модель пользователя в системе.
// Соответствует таблице 'users' в базе данных.
// Username является первичным ключом и никогда не меняется.
type User struct {
	Username string  `json:"username" gorm:"primaryKey;column:username" db:"username"`
	Password string  `json:"-" gorm:"column:password" db:"password"`
	Name     string  `json:"name" gorm:"column:name" db:"name"`
	Token    *string `json:"-" gorm:"column:token" db:"token"`
}

func (User) TableName() string {
	return "users"
}
