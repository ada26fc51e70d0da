package repository

import (
	"errors"

	"commissions/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByUsername(username string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) CreateUser(username, passwordHash, email string) (*ds.User, error) {
	user := ds.User{
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
	}

	err := r.db.Create(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserExistsByUsername проверяет занят ли логин
func (r *Repository) UserExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// EmailTaken проверяет занят ли email
func (r *Repository) EmailTaken(email string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// notFound приводит gorm.ErrRecordNotFound к "записи нет" без ошибки
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
