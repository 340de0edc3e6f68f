package models

type Image struct {
	ID           string  `gorm:"primaryKey;type:varchar(40)"`
	AlbumID      *string `gorm:"type:varchar(40);index"` // can be null; not validated against albums
	CreatedAt    int64   `gorm:"index"`
	Filename     string  `gorm:"type:varchar(300);uniqueIndex"`
	OriginalName string  `gorm:"type:varchar(300)"`
}
