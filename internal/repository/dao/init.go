package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Course{},
		&Tour{},
		&CourseRegistration{},
		&TourRegistration{},
	)
}

// DropTables removes every portal table. Integration tests use it to start
// from an empty schema.
func DropTables(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&TourRegistration{},
		&CourseRegistration{},
		&Tour{},
		&Course{},
		&User{},
	)
}
