package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"signalbench/internal/models"
	"signalbench/internal/secrets"
)

// CreateUser persists a new user. The salt is drawn once from the injected
// source and the secret is stored encrypted; the plaintext never touches the
// database.
func (s *Store) CreateUser(ctx context.Context, u *models.User, plainSecret string) error {
	salt, err := s.salts.Salt()
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	u.SecretKeySalt = salt
	if plainSecret != "" {
		enc, err := s.cipher.Encrypt(plainSecret, salt)
		if err != nil {
			if errors.Is(err, secrets.ErrKeyUnavailable) {
				return fmt.Errorf("cannot encrypt secret key: %w", models.ErrCredentialUnavailable)
			}
			return err
		}
		u.SecretKey = enc
	}
	return translate(s.db.WithContext(ctx).Create(u).Error)
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UserSecret decrypts the stored secret key. A missing master key or a
// failed decryption surfaces as credential-unavailable, distinct from the
// user not existing.
func (s *Store) UserSecret(ctx context.Context, id uint) (string, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return "", err
	}
	if u.SecretKey == "" {
		return "", nil
	}
	plain, err := s.cipher.Decrypt(u.SecretKey, u.SecretKeySalt)
	if err != nil {
		return "", fmt.Errorf("user %d secret key: %v: %w", id, err, models.ErrCredentialUnavailable)
	}
	return plain, nil
}

// SoftDeleteUser flags the user deleted. Users are never physically removed.
func (s *Store) SoftDeleteUser(ctx context.Context, id, byUserID uint, at time.Time) error {
	return s.softDelete(ctx, &models.User{}, id, byUserID, at)
}
