package models

type Slide struct {
	ID        string `gorm:"primaryKey;type:varchar(40)"`
	CreatedAt int64  `gorm:"index"`
	Title     string `gorm:"type:varchar(300)"`
	Filename  string `gorm:"type:varchar(300)"` // empty when the slide has no image
	Link      string `gorm:"type:varchar(2000)"`
	Position  int    `gorm:"not null;default:0"`
}
