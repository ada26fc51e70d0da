package ds

import "time"

// Статусы заказа
const (
	StatusPending   = "pending"   // Ожидает решения администратора
	StatusAccepted  = "accepted"  // Принят в работу
	StatusReviewed  = "reviewed"  // Оценён (назначена цена)
	StatusCompleted = "completed" // Завершён
)

// Таблица заказов на арт
type Order struct {
	ID                           uint    `gorm:"primaryKey"`
	UserID                       uint    `gorm:"not null;index"`
	OrderName                    string  `gorm:"type:varchar(100);not null"`
	CharacterPart                string  `gorm:"type:varchar(20);not null"` // Head, Half Body, Full Body
	PreferredStyle               string  `gorm:"type:varchar(20);not null"` // Chibi, Normal
	PoseView                     string  `gorm:"type:varchar(20);not null"` // Front View, 3/4 View, Side View
	PoseDescription              string  `gorm:"type:text;not null"`
	CharacterFeaturesDescription string  `gorm:"type:text;not null"`
	OutfitDescription            string  `gorm:"type:text;not null"`
	HasBackground                bool    `gorm:"type:boolean;not null"`
	BackgroundDescription        *string `gorm:"type:text;default:null"` // NULL если фон не нужен
	DueDate                      time.Time
	Price                        *float64  `gorm:"type:decimal(10,2);default:null"` // NULL пока администратор не оценил
	Status                       string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt                    time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID"`
}

// Цветовая палитра заказа (минимум два разных цвета)
type ColorPalette struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  uint   `gorm:"not null;index"`
	ColorHex string `gorm:"type:varchar(7);not null"` // #RRGGBB

	Order Order `gorm:"foreignKey:OrderID"`
}

// Референсы персонажа (загруженные изображения)
type CharacterReference struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  uint   `gorm:"not null;index"`
	FilePath string `gorm:"type:varchar(255);not null"`

	Order Order `gorm:"foreignKey:OrderID"`
}

// Референсы фона (есть только если заказан фон)
type BackgroundReference struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  uint   `gorm:"not null;index"`
	FilePath string `gorm:"type:varchar(255);not null"`

	Order Order `gorm:"foreignKey:OrderID"`
}
