package database

import (
	"database/sql"
	"fmt"

	"github.com/micqie/FAS-music/app/models"
	"github.com/micqie/FAS-music/app/registration"
)

// ---- Branches ----

func GetBranches(db *sql.DB, includeInactive bool) ([]*models.Branch, error) {
	query := `SELECT id, branch_name, address, phone, email, status
			  FROM branches`
	if !includeInactive {
		query += ` WHERE status = 'Active'`
	}
	query += ` ORDER BY branch_name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, &registration.StorageError{Op: "list branches", Err: err}
	}
	defer rows.Close()

	branches := make([]*models.Branch, 0)
	for rows.Next() {
		b := &models.Branch{}
		if err := rows.Scan(&b.ID, &b.BranchName, &b.Address, &b.Phone, &b.Email, &b.Status); err != nil {
			return nil, &registration.StorageError{Op: "scan branch", Err: err}
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

func GetBranch(db *sql.DB, branchID string) (*models.Branch, error) {
	b := &models.Branch{}
	err := db.QueryRow(`
		SELECT id, branch_name, address, phone, email, status
		FROM branches WHERE id = $1
	`, branchID).Scan(&b.ID, &b.BranchName, &b.Address, &b.Phone, &b.Email, &b.Status)
	if err == sql.ErrNoRows {
		return nil, &registration.NotFoundError{Resource: "Branch"}
	}
	if err != nil {
		return nil, &registration.StorageError{Op: "load branch", Err: err}
	}
	return b, nil
}

func CreateBranch(db *sql.DB, b *models.Branch) error {
	err := db.QueryRow(`
		INSERT INTO branches (branch_name, address, phone, email, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, b.BranchName, b.Address, b.Phone, b.Email, b.Status).Scan(&b.ID)
	if err != nil {
		return &registration.StorageError{Op: "insert branch", Err: err}
	}
	return nil
}

func UpdateBranch(db *sql.DB, b *models.Branch) error {
	result, err := db.Exec(`
		UPDATE branches
		SET branch_name = $1, address = $2, phone = $3, email = $4, status = $5
		WHERE id = $6
	`, b.BranchName, b.Address, b.Phone, b.Email, b.Status, b.ID)
	if err != nil {
		return &registration.StorageError{Op: "update branch", Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return &registration.NotFoundError{Resource: "Branch"}
	}
	return nil
}

// DeactivateBranch is the soft delete; student rows keep their branch
// reference.
func DeactivateBranch(db *sql.DB, branchID string) error {
	result, err := db.Exec(`
		UPDATE branches SET status = $1 WHERE id = $2
	`, registration.AccountInactive, branchID)
	if err != nil {
		return &registration.StorageError{Op: "deactivate branch", Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return &registration.NotFoundError{Resource: "Branch"}
	}
	return nil
}

// ---- Instrument types ----

func GetInstrumentTypes(db *sql.DB) ([]*models.InstrumentType, error) {
	rows, err := db.Query(`
		SELECT id, type_name, description FROM instrument_types ORDER BY type_name ASC
	`)
	if err != nil {
		return nil, &registration.StorageError{Op: "list instrument types", Err: err}
	}
	defer rows.Close()

	types := make([]*models.InstrumentType, 0)
	for rows.Next() {
		t := &models.InstrumentType{}
		if err := rows.Scan(&t.ID, &t.TypeName, &t.Description); err != nil {
			return nil, &registration.StorageError{Op: "scan instrument type", Err: err}
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func GetInstrumentType(db *sql.DB, typeID string) (*models.InstrumentType, error) {
	t := &models.InstrumentType{}
	err := db.QueryRow(`
		SELECT id, type_name, description FROM instrument_types WHERE id = $1
	`, typeID).Scan(&t.ID, &t.TypeName, &t.Description)
	if err == sql.ErrNoRows {
		return nil, &registration.NotFoundError{Resource: "Instrument type"}
	}
	if err != nil {
		return nil, &registration.StorageError{Op: "load instrument type", Err: err}
	}
	return t, nil
}

func CreateInstrumentType(db *sql.DB, t *models.InstrumentType) error {
	err := db.QueryRow(`
		INSERT INTO instrument_types (type_name, description) VALUES ($1, $2) RETURNING id
	`, t.TypeName, t.Description).Scan(&t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return &registration.ConflictError{Message: "Instrument type already exists"}
		}
		return &registration.StorageError{Op: "insert instrument type", Err: err}
	}
	return nil
}

func UpdateInstrumentType(db *sql.DB, t *models.InstrumentType) error {
	result, err := db.Exec(`
		UPDATE instrument_types SET type_name = $1, description = $2 WHERE id = $3
	`, t.TypeName, t.Description, t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return &registration.ConflictError{Message: "Instrument type name already exists"}
		}
		return &registration.StorageError{Op: "update instrument type", Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return &registration.NotFoundError{Resource: "Instrument type"}
	}
	return nil
}

func DeleteInstrumentType(db *sql.DB, typeID string) error {
	var usage int
	err := db.QueryRow(`SELECT COUNT(*) FROM instruments WHERE type_id = $1`, typeID).Scan(&usage)
	if err != nil {
		return &registration.StorageError{Op: "check instrument type usage", Err: err}
	}
	if usage > 0 {
		return &registration.ConflictError{
			Message: fmt.Sprintf("Cannot delete instrument type. It is being used by %d instrument(s)", usage),
		}
	}

	result, err := db.Exec(`DELETE FROM instrument_types WHERE id = $1`, typeID)
	if err != nil {
		return &registration.StorageError{Op: "delete instrument type", Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return &registration.NotFoundError{Resource: "Instrument type"}
	}
	return nil
}

// ---- Instruments ----

// GetInstruments lists instruments with branch and type names, optionally
// filtered by branch and/or type.
func GetInstruments(db *sql.DB, branchID, typeID string) ([]*models.Instrument, error) {
	query := `
		SELECT i.id, i.branch_id, i.instrument_name, i.type_id, i.serial_number,
			   i.condition, i.status, b.branch_name, it.type_name
		FROM instruments i
		LEFT JOIN branches b ON i.branch_id = b.id
		LEFT JOIN instrument_types it ON i.type_id = it.id
		WHERE 1=1`

	var args []interface{}
	if branchID != "" {
		args = append(args, branchID)
		query += fmt.Sprintf(" AND i.branch_id = $%d", len(args))
	}
	if typeID != "" {
		args = append(args, typeID)
		query += fmt.Sprintf(" AND i.type_id = $%d", len(args))
	}
	query += " ORDER BY i.instrument_name ASC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, &registration.StorageError{Op: "list instruments", Err: err}
	}
	defer rows.Close()

	instruments := make([]*models.Instrument, 0)
	for rows.Next() {
		i := &models.Instrument{}
		err := rows.Scan(
			&i.ID, &i.BranchID, &i.InstrumentName, &i.TypeID, &i.SerialNumber,
			&i.Condition, &i.Status, &i.BranchName, &i.TypeName,
		)
		if err != nil {
			return nil, &registration.StorageError{Op: "scan instrument", Err: err}
		}
		instruments = append(instruments, i)
	}
	return instruments, rows.Err()
}

func GetInstrument(db *sql.DB, instrumentID string) (*models.Instrument, error) {
	i := &models.Instrument{}
	err := db.QueryRow(`
		SELECT i.id, i.branch_id, i.instrument_name, i.type_id, i.serial_number,
			   i.condition, i.status, b.branch_name, it.type_name
		FROM instruments i
		LEFT JOIN branches b ON i.branch_id = b.id
		LEFT JOIN instrument_types it ON i.type_id = it.id
		WHERE i.id = $1
	`, instrumentID).Scan(
		&i.ID, &i.BranchID, &i.InstrumentName, &i.TypeID, &i.SerialNumber,
		&i.Condition, &i.Status, &i.BranchName, &i.TypeName,
	)
	if err == sql.ErrNoRows {
		return nil, &registration.NotFoundError{Resource: "Instrument"}
	}
	if err != nil {
		return nil, &registration.StorageError{Op: "load instrument", Err: err}
	}
	return i, nil
}

func CreateInstrument(db *sql.DB, i *models.Instrument) error {
	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM branches WHERE id = $1)`, i.BranchID).Scan(&exists); err != nil {
		return &registration.StorageError{Op: "check branch", Err: err}
	}
	if !exists {
		return &registration.NotFoundError{Resource: "Branch"}
	}
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM instrument_types WHERE id = $1)`, i.TypeID).Scan(&exists); err != nil {
		return &registration.StorageError{Op: "check instrument type", Err: err}
	}
	if !exists {
		return &registration.NotFoundError{Resource: "Instrument type"}
	}

	err := db.QueryRow(`
		INSERT INTO instruments (branch_id, instrument_name, type_id, serial_number, condition, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, i.BranchID, i.InstrumentName, i.TypeID, i.SerialNumber, i.Condition, i.Status).Scan(&i.ID)
	if err != nil {
		return &registration.StorageError{Op: "insert instrument", Err: err}
	}
	return nil
}

func UpdateInstrument(db *sql.DB, i *models.Instrument) error {
	result, err := db.Exec(`
		UPDATE instruments
		SET branch_id = $1, instrument_name = $2, type_id = $3,
			serial_number = $4, condition = $5, status = $6
		WHERE id = $7
	`, i.BranchID, i.InstrumentName, i.TypeID, i.SerialNumber, i.Condition, i.Status, i.ID)
	if err != nil {
		return &registration.StorageError{Op: "update instrument", Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return &registration.NotFoundError{Resource: "Instrument"}
	}
	return nil
}

func DeleteInstrument(db *sql.DB, instrumentID string) error {
	var usage int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM student_instruments WHERE instrument_id = $1
	`, instrumentID).Scan(&usage)
	if err != nil {
		return &registration.StorageError{Op: "check instrument usage", Err: err}
	}
	if usage > 0 {
		return &registration.ConflictError{
			Message: fmt.Sprintf("Cannot delete instrument. It is preferred by %d student(s)", usage),
		}
	}

	result, err := db.Exec(`DELETE FROM instruments WHERE id = $1`, instrumentID)
	if err != nil {
		return &registration.StorageError{Op: "delete instrument", Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return &registration.NotFoundError{Resource: "Instrument"}
	}
	return nil
}

// ---- Session packages ----

func GetSessionPackages(db *sql.DB) ([]*models.SessionPackage, error) {
	rows, err := db.Query(`
		SELECT id, package_name, sessions, max_instruments, price, description
		FROM session_packages
		ORDER BY sessions ASC, package_name ASC
	`)
	if err != nil {
		return nil, &registration.StorageError{Op: "list session packages", Err: err}
	}
	defer rows.Close()

	packages := make([]*models.SessionPackage, 0)
	for rows.Next() {
		p := &models.SessionPackage{}
		if err := rows.Scan(&p.ID, &p.PackageName, &p.Sessions, &p.MaxInstruments, &p.Price, &p.Description); err != nil {
			return nil, &registration.StorageError{Op: "scan session package", Err: err}
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

func CreateSessionPackage(db *sql.DB, p *models.SessionPackage) error {
	err := db.QueryRow(`
		INSERT INTO session_packages (package_name, sessions, max_instruments, price, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, p.PackageName, p.Sessions, p.MaxInstruments, p.Price, p.Description).Scan(&p.ID)
	if err != nil {
		return &registration.StorageError{Op: "insert session package", Err: err}
	}
	return nil
}

func UpdateSessionPackage(db *sql.DB, p *models.SessionPackage) error {
	result, err := db.Exec(`
		UPDATE session_packages
		SET package_name = $1, sessions = $2, max_instruments = $3, price = $4, description = $5
		WHERE id = $6
	`, p.PackageName, p.Sessions, p.MaxInstruments, p.Price, p.Description, p.ID)
	if err != nil {
		return &registration.StorageError{Op: "update session package", Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return &registration.NotFoundError{Resource: "Package"}
	}
	return nil
}

func DeleteSessionPackage(db *sql.DB, packageID string) error {
	var usage int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM students WHERE session_package_id = $1
	`, packageID).Scan(&usage)
	if err != nil {
		return &registration.StorageError{Op: "check package usage", Err: err}
	}
	if usage > 0 {
		return &registration.ConflictError{
			Message: fmt.Sprintf("Cannot delete package. It is assigned to %d student(s)", usage),
		}
	}

	result, err := db.Exec(`DELETE FROM session_packages WHERE id = $1`, packageID)
	if err != nil {
		return &registration.StorageError{Op: "delete session package", Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return &registration.NotFoundError{Resource: "Package"}
	}
	return nil
}

// AssignSessionPackage links a package to a student. The student's instrument
// preferences must fit within the package's instrument limit.
func AssignSessionPackage(db *sql.DB, studentID, packageID string) error {
	return withTx(db, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM students WHERE id = $1)`, studentID).Scan(&exists)
		if err != nil {
			return &registration.StorageError{Op: "check student", Err: err}
		}
		if !exists {
			return &registration.NotFoundError{Resource: "Student"}
		}

		var maxInstruments int
		err = tx.QueryRow(`SELECT max_instruments FROM session_packages WHERE id = $1`, packageID).Scan(&maxInstruments)
		if err == sql.ErrNoRows {
			return &registration.NotFoundError{Resource: "Package"}
		}
		if err != nil {
			return &registration.StorageError{Op: "load session package", Err: err}
		}

		var preferences int
		err = tx.QueryRow(`SELECT COUNT(*) FROM student_instruments WHERE student_id = $1`, studentID).Scan(&preferences)
		if err != nil {
			return &registration.StorageError{Op: "count instrument preferences", Err: err}
		}
		if preferences > maxInstruments {
			return &registration.ConflictError{
				Message: fmt.Sprintf("Package allows %d instrument(s) but student has %d preference(s)", maxInstruments, preferences),
			}
		}

		_, err = tx.Exec(`UPDATE students SET session_package_id = $1 WHERE id = $2`, packageID, studentID)
		if err != nil {
			return &registration.StorageError{Op: "assign session package", Err: err}
		}
		return nil
	})
}
