package models

import (
	"gorm.io/gorm"
)

func Init(db *gorm.DB) error {
	if err := db.AutoMigrate(&Album{}); err != nil {
		return err
	}
	if err := db.AutoMigrate(&Image{}); err != nil {
		return err
	}
	return db.AutoMigrate(&Slide{})
}
