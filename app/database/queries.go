package database

import (
	"database/sql"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/micqie/FAS-music/app/models"
	"github.com/micqie/FAS-music/app/registration"
)

// uniqueViolation is the PostgreSQL error code for a unique-constraint breach.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == uniqueViolation
}

// withTx runs fn inside one all-or-nothing transaction. Any error from fn
// rolls the whole unit back.
func withTx(db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return &registration.StorageError{Op: "begin transaction", Err: err}
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return &registration.StorageError{Op: "commit transaction", Err: err}
	}
	return nil
}

// hashPassword hashes a password using bcrypt.
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// GetUserByUsername loads a user with its role, regardless of status; the
// login flow decides what an Inactive account may do.
func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT u.id, u.username, u.password, u.role_id, r.role_name,
			  u.first_name, u.last_name, u.email, COALESCE(u.phone, ''),
			  u.status, u.must_change_password, u.created_at
			  FROM users u
			  INNER JOIN roles r ON u.role_id = r.id
			  WHERE u.username = $1`

	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.RoleID, &user.RoleName,
		&user.FirstName, &user.LastName, &user.Email, &user.Phone,
		&user.Status, &user.MustChangePassword, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &registration.NotFoundError{Resource: "User"}
	}
	if err != nil {
		return nil, &registration.StorageError{Op: "load user", Err: err}
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT u.id, u.username, u.password, u.role_id, r.role_name,
			  u.first_name, u.last_name, u.email, COALESCE(u.phone, ''),
			  u.status, u.must_change_password, u.created_at
			  FROM users u
			  INNER JOIN roles r ON u.role_id = r.id
			  WHERE u.id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.Password, &user.RoleID, &user.RoleName,
		&user.FirstName, &user.LastName, &user.Email, &user.Phone,
		&user.Status, &user.MustChangePassword, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &registration.NotFoundError{Resource: "User"}
	}
	if err != nil {
		return nil, &registration.StorageError{Op: "load user", Err: err}
	}
	return user, nil
}

// UpdateUserPassword stores a new credential hash and clears the first-login
// flag in the same statement.
func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	result, err := db.Exec(`
		UPDATE users
		SET password = $1, must_change_password = false
		WHERE id = $2
	`, hashedPassword, userID)
	if err != nil {
		return &registration.StorageError{Op: "update password", Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return &registration.NotFoundError{Resource: "User"}
	}
	return nil
}

// CreateAdminUser creates an active administrator account. Used by the
// seeding command, not by any public endpoint.
func CreateAdminUser(db *sql.DB, user *models.User) error {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return &registration.StorageError{Op: "hash password", Err: err}
	}

	return withTx(db, func(tx *sql.Tx) error {
		var roleID string
		err := tx.QueryRow(`SELECT id FROM roles WHERE role_name = $1`, models.RoleAdmin).Scan(&roleID)
		if err != nil {
			return &registration.StorageError{Op: "load admin role", Err: err}
		}

		err = tx.QueryRow(`
			INSERT INTO users (username, password, role_id, first_name, last_name, email, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, user.Username, hashed, roleID, user.FirstName, user.LastName, user.Email,
			registration.AccountActive).Scan(&user.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return &registration.ConflictError{Message: "Username or email is already taken"}
			}
			return &registration.StorageError{Op: "insert admin user", Err: err}
		}
		return nil
	})
}
