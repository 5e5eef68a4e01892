package model

import "gorm.io/gorm"

// AutoMigrate runs GORM auto-migration for all models and creates custom indexes.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Address{},
		&Yard{},
		&VehicleModel{},
		&Vehicle{},
		&YardVehicle{},
		&YardEmployee{},
		&EmployeeInvite{},
		&QRCode{},
	); err != nil {
		return err
	}

	// At most one PENDING invite per (email, yard); resolved invites never block.
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_invites_pending_email_yard " +
			"ON employee_invites (email, yard_id) WHERE status = 'PENDING'",
	).Error
}
