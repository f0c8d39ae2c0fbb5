package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema and seed rows. Every statement is
// idempotent, so the pass runs on every startup; request handlers never touch
// the schema.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createTables(db); err != nil {
		return err
	}
	if err := addSessionPackageColumn(db); err != nil {
		return err
	}
	if err := addMustChangePasswordColumn(db); err != nil {
		return err
	}
	if err := seedRoles(db); err != nil {
		return err
	}
	if err := seedInstrumentTypes(db); err != nil {
		return err
	}
	if err := seedSessionPackages(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createTables(db *sql.DB) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS branches (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			branch_name VARCHAR(100) NOT NULL,
			address TEXT,
			phone VARCHAR(30),
			email VARCHAR(254),
			status VARCHAR(10) NOT NULL DEFAULT 'Active'
		)`,

		`CREATE TABLE IF NOT EXISTS instrument_types (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			type_name VARCHAR(50) NOT NULL UNIQUE,
			description TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS instruments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			branch_id UUID NOT NULL REFERENCES branches(id),
			instrument_name VARCHAR(100) NOT NULL,
			type_id UUID NOT NULL REFERENCES instrument_types(id),
			serial_number VARCHAR(50),
			condition VARCHAR(30) NOT NULL DEFAULT 'Available',
			status VARCHAR(20) NOT NULL DEFAULT 'Active'
		)`,

		`CREATE TABLE IF NOT EXISTS session_packages (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			package_name VARCHAR(100) NOT NULL,
			sessions INT NOT NULL CHECK (sessions >= 1),
			max_instruments SMALLINT NOT NULL DEFAULT 1 CHECK (max_instruments BETWEEN 1 AND 3),
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			description TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			role_name VARCHAR(30) NOT NULL UNIQUE
		)`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(254) NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role_id UUID NOT NULL REFERENCES roles(id),
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			email VARCHAR(254) NOT NULL UNIQUE,
			phone VARCHAR(30),
			status VARCHAR(10) NOT NULL DEFAULT 'Inactive',
			must_change_password BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			branch_id UUID NOT NULL REFERENCES branches(id),
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			middle_name VARCHAR(100),
			date_of_birth DATE,
			age INT,
			phone VARCHAR(30) NOT NULL,
			email VARCHAR(254) NOT NULL,
			address TEXT,
			school VARCHAR(100),
			grade_year VARCHAR(30),
			health_diagnosis TEXT,
			session_package_id UUID REFERENCES session_packages(id),
			registration_fee_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			registration_fee_paid NUMERIC(10,2) NOT NULL DEFAULT 0,
			registration_status VARCHAR(10) NOT NULL DEFAULT 'Pending',
			status VARCHAR(10) NOT NULL DEFAULT 'Inactive',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS guardians (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			relationship_type VARCHAR(30) NOT NULL,
			phone VARCHAR(30) NOT NULL,
			occupation VARCHAR(100),
			email VARCHAR(254),
			address TEXT,
			status VARCHAR(10) NOT NULL DEFAULT 'Active'
		)`,

		`CREATE TABLE IF NOT EXISTS student_guardians (
			student_id UUID NOT NULL REFERENCES students(id),
			guardian_id UUID NOT NULL REFERENCES guardians(id),
			is_primary_guardian BOOLEAN NOT NULL DEFAULT false,
			can_enroll BOOLEAN NOT NULL DEFAULT false,
			can_pay BOOLEAN NOT NULL DEFAULT false,
			emergency_contact BOOLEAN NOT NULL DEFAULT false,
			PRIMARY KEY (student_id, guardian_id)
		)`,

		`CREATE TABLE IF NOT EXISTS student_instruments (
			student_id UUID NOT NULL REFERENCES students(id),
			instrument_id UUID NOT NULL REFERENCES instruments(id),
			priority_order INT NOT NULL,
			PRIMARY KEY (student_id, instrument_id)
		)`,

		`CREATE TABLE IF NOT EXISTS registration_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			amount NUMERIC(10,2) NOT NULL CHECK (amount > 0),
			payment_method VARCHAR(50) NOT NULL,
			receipt_number VARCHAR(100) NOT NULL UNIQUE,
			notes TEXT,
			payment_date TIMESTAMPTZ NOT NULL DEFAULT now(),
			status VARCHAR(10) NOT NULL DEFAULT 'Paid'
		)`,

		`CREATE INDEX IF NOT EXISTS idx_registration_payments_student
			ON registration_payments(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_students_registration_status
			ON students(registration_status)`,
		`CREATE INDEX IF NOT EXISTS idx_students_email
			ON students(email)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}
	return nil
}

// addSessionPackageColumn upgrades databases created before session packages
// existed.
func addSessionPackageColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'students'
				AND column_name = 'session_package_id'
			) THEN
				ALTER TABLE students ADD COLUMN session_package_id UUID REFERENCES session_packages(id);
				RAISE NOTICE 'Added session_package_id column to students';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for session_package_id column: %v", err)
		return err
	}
	return nil
}

// addMustChangePasswordColumn upgrades databases from before walk-in accounts
// carried the explicit first-login flag.
func addMustChangePasswordColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'users'
				AND column_name = 'must_change_password'
			) THEN
				ALTER TABLE users ADD COLUMN must_change_password BOOLEAN NOT NULL DEFAULT false;
				RAISE NOTICE 'Added must_change_password column to users';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for must_change_password column: %v", err)
		return err
	}
	return nil
}

func seedRoles(db *sql.DB) error {
	_, err := db.Exec(`
		INSERT INTO roles (role_name) VALUES ('Admin'), ('Student')
		ON CONFLICT (role_name) DO NOTHING
	`)
	return err
}

func seedInstrumentTypes(db *sql.DB) error {
	_, err := db.Exec(`
		INSERT INTO instrument_types (type_name, description)
		VALUES ('Other', 'General/uncategorized instrument type')
		ON CONFLICT (type_name) DO NOTHING
	`)
	return err
}

func seedSessionPackages(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM session_packages`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := db.Exec(`
		INSERT INTO session_packages (package_name, sessions, max_instruments, description) VALUES
		('Basic (12 Sessions)', 12, 1, '1 instrument only'),
		('Standard (20 Sessions)', 20, 2, '2 instruments'),
		('Premium (20+ Sessions)', 24, 3, '3 instruments')
	`)
	return err
}
