package database

import (
	"context"
	"database/sql"
	"fmt"

	"techtravel/internal/models"
)

func (db *DB) CreateUser(ctx context.Context, u *models.User) error {
	var exists int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM users WHERE email = ?`, u.Email,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists > 0 {
		return ErrEmailTaken
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password, gender)
		VALUES (?, ?, ?, ?, ?)
	`, u.ID, u.Name, u.Email, u.Password, u.Gender)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (db *DB) GetUser(ctx context.Context, id string) (*models.User, error) {
	return db.getUser(ctx, `WHERE id = ?`, id)
}

func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return db.getUser(ctx, `WHERE email = ?`, email)
}

func (db *DB) getUser(ctx context.Context, where string, arg any) (*models.User, error) {
	var u models.User
	err := db.QueryRowContext(ctx, `
		SELECT id, name, email, password, gender, created_at, updated_at
		FROM users `+where, arg,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Gender, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}
