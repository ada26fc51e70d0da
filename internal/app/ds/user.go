package ds

// Таблица пользователей
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(50);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(100);unique;not null"`
	IsAdmin      bool   `gorm:"type:boolean;default:false;not null"`
}
