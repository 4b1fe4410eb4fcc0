// ABOUTME: Staff database operations
// ABOUTME: Handles staff roster CRUD and role updates
package db

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/harperreed/careops/models"
)

func CreateStaff(db *sql.DB, user *models.User) error {
	user.ID = uuid.New()
	if user.Role == "" {
		user.Role = models.RoleStaff
	}

	_, err := db.Exec(`
		INSERT INTO staff (id, name, email, role, avatar_url)
		VALUES (?, ?, ?, ?, ?)
	`, user.ID.String(), user.Name, user.Email, user.Role, user.AvatarURL)

	return err
}

func GetStaff(db *sql.DB, id uuid.UUID) (*models.User, error) {
	user := &models.User{}

	err := db.QueryRow(`
		SELECT id, name, email, role, avatar_url
		FROM staff WHERE id = ?
	`, id.String()).Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.AvatarURL)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func AllStaff(db *sql.DB) ([]models.User, error) {
	rows, err := db.Query(`
		SELECT id, name, email, role, avatar_url
		FROM staff
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.AvatarURL); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func UpdateStaffRole(db *sql.DB, id uuid.UUID, role string) (*models.User, error) {
	_, err := db.Exec(`
		UPDATE staff SET role = ? WHERE id = ?
	`, role, id.String())
	if err != nil {
		return nil, err
	}

	return GetStaff(db, id)
}

func DeleteStaff(db *sql.DB, id uuid.UUID) error {
	_, err := db.Exec(`DELETE FROM staff WHERE id = ?`, id.String())
	return err
}
