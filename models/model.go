package models

import "gorm.io/gorm"

// Migrate creates or updates the tables backing every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Broker{}, &Stock{}, &Trade{})
}
