package database

import (
	"fmt"

	"dispatch-backend/config"
	"dispatch-backend/logger"
	addressbookModel "dispatch-backend/models/addressbook"
	logModel "dispatch-backend/models/log"
	requestModel "dispatch-backend/models/request"
	userModel "dispatch-backend/models/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the connection, runs migrations and creates indexes.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		cfg.Database.Password, cfg.Database.Name, cfg.Database.SSLMode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createForeignKeyConstraints(); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models, foundation models first.
func autoMigrate() error {
	stage1Models := []interface{}{
		&userModel.User{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Models with dependencies on stage 1
	stage2Models := []interface{}{
		&addressbookModel.AddressBook{},
		&requestModel.Request{},
		&requestModel.StatusEvent{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	remainingModels := []interface{}{
		&logModel.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	// User indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)").Error; err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_users_company_name ON users(company_name)").Error; err != nil {
		return fmt.Errorf("failed to create user company_name index: %w", err)
	}

	// Address book indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_address_books_user_id ON address_books(user_id)").Error; err != nil {
		return fmt.Errorf("failed to create address_books user_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_address_books_created_at ON address_books(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create address_books created_at index: %w", err)
	}

	// Request indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_requests_status ON requests(status)").Error; err != nil {
		return fmt.Errorf("failed to create requests status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_requests_created_at ON requests(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create requests created_at index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_requests_created_by_id ON requests(created_by_id)").Error; err != nil {
		return fmt.Errorf("failed to create requests created_by_id index: %w", err)
	}

	// Log indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// createForeignKeyConstraints creates foreign key constraints after auto migration
func createForeignKeyConstraints() error {
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_address_books_user",
			sql: `ALTER TABLE address_books ADD CONSTRAINT fk_address_books_user
				  FOREIGN KEY (user_id) REFERENCES users(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_requests_created_by",
			sql: `ALTER TABLE requests ADD CONSTRAINT fk_requests_created_by
				  FOREIGN KEY (created_by_id) REFERENCES users(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_request_status_events_request",
			sql: `ALTER TABLE request_status_events ADD CONSTRAINT fk_request_status_events_request
				  FOREIGN KEY (request_id) REFERENCES requests(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
	}

	for _, constraint := range constraints {
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := DB.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := DB.Exec(constraint.sql).Error; err != nil {
				logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
			} else {
				logger.Success(fmt.Sprintf("Successfully created constraint: %s", constraint.name))
			}
		}
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
