// Пакет authz отвечает на вопрос: какой роли какое действие над заказом доступно.
// Предикаты чистые: заказ уже загружен вызывающей стороной, nil означает
// "не найден" и всегда запрещён (снаружи это неотличимо от чужого заказа).
package authz

import (
	"errors"
	"strconv"

	"commissions/internal/app/ds"
	"commissions/internal/app/role"
)

var ErrInvalidOrderID = errors.New("invalid order id")

// RoleOf определяет роль по персистентному флагу пользователя
func RoleOf(user *ds.User) role.Role {
	if user != nil && user.IsAdmin {
		return role.Admin
	}
	return role.Customer
}

// ParseOrderID разбирает идентификатор заказа из формы или query-параметра.
// Пустое, нечисловое или нулевое значение отклоняется.
func ParseOrderID(raw string) (uint, error) {
	if raw == "" {
		return 0, ErrInvalidOrderID
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidOrderID
	}
	return uint(id), nil
}

// CanView: администратор видит любой существующий заказ, заказчик — только свой
func CanView(r role.Role, order *ds.Order, userID uint) bool {
	if order == nil {
		return false
	}
	if r == role.Admin {
		return true
	}
	return order.UserID == userID
}

// CanEdit: редактировать содержимое может только заказчик-владелец и только
// пока администратор не перевёл заказ из pending. Администраторы поля заказа
// не редактируют вовсе — им доступны лишь цена и статус.
func CanEdit(r role.Role, order *ds.Order, userID uint) bool {
	if order == nil || r == role.Admin {
		return false
	}
	return order.UserID == userID && order.Status == ds.StatusPending
}

// CanAccept: принять заказ может только администратор
func CanAccept(r role.Role, order *ds.Order) bool {
	return order != nil && r == role.Admin
}

// CanComplete: завершить заказ может только администратор
func CanComplete(r role.Role, order *ds.Order) bool {
	return order != nil && r == role.Admin
}

// CanSetPrice: назначить цену может только администратор
func CanSetPrice(r role.Role, order *ds.Order) bool {
	return order != nil && r == role.Admin
}

// CanRemove: удалить (отклонить) заказ может администратор или владелец
func CanRemove(r role.Role, order *ds.Order, userID uint) bool {
	if order == nil {
		return false
	}
	if r == role.Admin {
		return true
	}
	return order.UserID == userID
}
