package domain

// Address представляет адрес контакта,
// соответствует таблице addresses в бд.
// Принадлежность проверяется транзитивно: address -> contact -> user.
type Address struct {
	ID         int64   `json:"id" gorm:"primaryKey;autoIncrement" db:"id"`
	ContactID  int64   `json:"contact_id" gorm:"column:contact_id;index" db:"contact_id"`
	Street     *string `json:"street,omitempty" gorm:"column:street" db:"street"`
	City       *string `json:"city,omitempty" gorm:"column:city" db:"city"`
	Province   *string `json:"province,omitempty" gorm:"column:province" db:"province"`
	Country    string  `json:"country" gorm:"column:country" db:"country"`
	PostalCode string  `json:"postal_code" gorm:"column:postal_code" db:"postal_code"`
}

func (Address) TableName() string {
	return "addresses"
}
