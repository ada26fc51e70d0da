package repository

import (
	"commissions/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с заказами.
// Все многострочные записи (заказ + палитра + референсы) выполняются в одной
// транзакции: частично созданных заказов в базе не бывает.

// OrderDetail — полная карточка заказа для страницы деталей
type OrderDetail struct {
	Order                ds.Order
	Colors               []string
	CharacterReferences  []string
	BackgroundReferences []string
	OwnerUsername        string
	OwnerEmail           string
}

// CreateOrder создает заказ вместе с палитрой и референсами
func (r *Repository) CreateOrder(order *ds.Order, colors, characterPaths, backgroundPaths []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, color := range colors {
			if err := tx.Create(&ds.ColorPalette{OrderID: order.ID, ColorHex: color}).Error; err != nil {
				return err
			}
		}

		for _, path := range characterPaths {
			if err := tx.Create(&ds.CharacterReference{OrderID: order.ID, FilePath: path}).Error; err != nil {
				return err
			}
		}

		for _, path := range backgroundPaths {
			if err := tx.Create(&ds.BackgroundReference{OrderID: order.ID, FilePath: path}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// UpdateOrder перезаписывает изменяемые поля заказа, заменяет палитру целиком
// и добавляет новые референсы к уже загруженным
func (r *Repository) UpdateOrder(order *ds.Order, colors, characterPaths, backgroundPaths []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"order_name":                     order.OrderName,
			"character_part":                 order.CharacterPart,
			"preferred_style":                order.PreferredStyle,
			"pose_view":                      order.PoseView,
			"pose_description":               order.PoseDescription,
			"character_features_description": order.CharacterFeaturesDescription,
			"outfit_description":             order.OutfitDescription,
			"has_background":                 order.HasBackground,
			"background_description":         order.BackgroundDescription,
			"due_date":                       order.DueDate,
		}
		if err := tx.Model(&ds.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
			return err
		}

		// Палитра заменяется, а не дополняется: иначе при каждом
		// редактировании копились бы дубликаты строк
		if err := tx.Where("order_id = ?", order.ID).Delete(&ds.ColorPalette{}).Error; err != nil {
			return err
		}
		for _, color := range colors {
			if err := tx.Create(&ds.ColorPalette{OrderID: order.ID, ColorHex: color}).Error; err != nil {
				return err
			}
		}

		for _, path := range characterPaths {
			if err := tx.Create(&ds.CharacterReference{OrderID: order.ID, FilePath: path}).Error; err != nil {
				return err
			}
		}

		for _, path := range backgroundPaths {
			if err := tx.Create(&ds.BackgroundReference{OrderID: order.ID, FilePath: path}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// GetOrderByID возвращает заказ либо (nil, nil), если такого нет
func (r *Repository) GetOrderByID(orderID uint) (*ds.Order, error) {
	var order ds.Order
	err := r.db.Where("id = ?", orderID).First(&order).Error
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetOrders возвращает заказы по возрастанию срока сдачи.
// ownerID == nil — все заказы (администратор), иначе только свои.
func (r *Repository) GetOrders(ownerID *uint) ([]ds.Order, error) {
	query := r.db.Order("due_date ASC")
	if ownerID != nil {
		query = query.Where("user_id = ?", *ownerID)
	}

	var orders []ds.Order
	err := query.Find(&orders).Error
	return orders, err
}

// GetOrdersByStatus возвращает заказы в заданном статусе, по сроку сдачи
func (r *Repository) GetOrdersByStatus(status string) ([]ds.Order, error) {
	var orders []ds.Order
	err := r.db.Where("status = ?", status).Order("due_date ASC").Find(&orders).Error
	return orders, err
}

// SetPriceAndReview назначает цену и переводит заказ в статус reviewed
func (r *Repository) SetPriceAndReview(orderID uint, price float64) error {
	return r.db.Model(&ds.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"price":  price,
			"status": ds.StatusReviewed,
		}).Error
}

// UpdateStatus переводит заказ в новый статус
func (r *Repository) UpdateStatus(orderID uint, status string) error {
	return r.db.Model(&ds.Order{}).Where("id = ?", orderID).Update("status", status).Error
}

// ReferencePaths возвращает пути всех референсов заказа
func (r *Repository) ReferencePaths(orderID uint) (character, background []string, err error) {
	var characterRefs []ds.CharacterReference
	if err = r.db.Where("order_id = ?", orderID).Find(&characterRefs).Error; err != nil {
		return nil, nil, err
	}
	var backgroundRefs []ds.BackgroundReference
	if err = r.db.Where("order_id = ?", orderID).Find(&backgroundRefs).Error; err != nil {
		return nil, nil, err
	}

	character = make([]string, 0, len(characterRefs))
	for _, ref := range characterRefs {
		character = append(character, ref.FilePath)
	}
	background = make([]string, 0, len(backgroundRefs))
	for _, ref := range backgroundRefs {
		background = append(background, ref.FilePath)
	}
	return character, background, nil
}

// DeleteOrder удаляет заказ и все связанные строки (палитру и референсы)
func (r *Repository) DeleteOrder(orderID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&ds.ColorPalette{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&ds.CharacterReference{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&ds.BackgroundReference{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ds.Order{}, orderID).Error
	})
}

// GetOrderDetail собирает полную карточку заказа
func (r *Repository) GetOrderDetail(orderID uint) (*OrderDetail, error) {
	order, err := r.GetOrderByID(orderID)
	if err != nil || order == nil {
		return nil, err
	}

	// DISTINCT прячет возможные дубликаты палитры из старых данных
	var colors []string
	err = r.db.Model(&ds.ColorPalette{}).
		Distinct("color_hex").
		Where("order_id = ?", orderID).
		Pluck("color_hex", &colors).Error
	if err != nil {
		return nil, err
	}

	character, background, err := r.ReferencePaths(orderID)
	if err != nil {
		return nil, err
	}

	owner, err := r.GetUserByID(order.UserID)
	if err != nil {
		return nil, err
	}

	return &OrderDetail{
		Order:                *order,
		Colors:               colors,
		CharacterReferences:  character,
		BackgroundReferences: background,
		OwnerUsername:        owner.Username,
		OwnerEmail:           owner.Email,
	}, nil
}
