package models

type Album struct {
	ID          string `gorm:"primaryKey;type:varchar(40)"`
	CreatedAt   int64  `gorm:"index"`
	Name        string `gorm:"type:varchar(300);not null"`
	Description string `gorm:"type:varchar(2000)"`
	Images      []Image
}
