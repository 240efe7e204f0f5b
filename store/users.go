package store

import (
	"errors"

	"gorm.io/gorm"

	"loantrack/apperror"
	"loantrack/models"
)

// CreateUser inserts a new user with an already-hashed credential. Duplicate
// email or username surfaces as a conflict.
func (s *Store) CreateUser(email, username string, passwordHash []byte) (*models.User, error) {
	user := &models.User{Email: email, Username: username, PasswordHash: passwordHash}
	if err := s.db.Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperror.NewConflictError("Email or username already exists", err)
		}
		return nil, apperror.NewInternalError("failed to create user", err)
	}
	return user, nil
}

// FindUserByUsername looks a user up by username. Absence is reported as a
// not-found error the caller is expected to branch on.
func (s *Store) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("User not found", nil)
		}
		return nil, apperror.NewInternalError("failed to find user", err)
	}
	return &user, nil
}

// FindUserByID looks a user up by primary key.
func (s *Store) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("User not found", nil)
		}
		return nil, apperror.NewInternalError("failed to find user", err)
	}
	return &user, nil
}
