package role

// Role определяет уровень доступа пользователя
type Role int

const (
	Customer Role = iota // Обычный пользователь (заказчик)
	Admin                // Администратор (художник)
)

func (r Role) String() string {
	switch r {
	case Admin:
		return "admin"
	default:
		return "customer"
	}
}
