// Пакет validation содержит чистые проверки формы заказа.
// Никаких побочных эффектов: вход — сырые поля формы, выход — нормализованный
// payload либо ошибка с сообщением о первом нарушенном правиле.
package validation

import (
	"regexp"
	"time"
)

// Фиксированные наборы вариантов для выпадающих списков и радио-кнопок
var (
	CharacterPartOptions  = []string{"Head", "Half Body", "Full Body"}
	PreferredStyleOptions = []string{"Chibi", "Normal"}
	PoseViewOptions       = []string{"Front View", "3/4 View", "Side View"}
	BackgroundOptions     = []string{"with-background", "without-background"}
)

const dueDateLayout = "2006-01-02"

var (
	// Упрощённая проверка email (не полный RFC): local@domain.tld, tld >= 2 букв
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Ровно # и 6 шестнадцатеричных цифр, регистр не важен
	colorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Error — ошибка валидации формы, сообщение показывается пользователю как есть
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fail(message string) error {
	return &Error{Message: message}
}

// OrderForm — сырые поля формы заказа
type OrderForm struct {
	OrderName                    string
	CharacterPart                string
	PreferredStyle               string
	PoseView                     string
	PoseDescription              string
	CharacterFeaturesDescription string
	OutfitDescription            string
	BackgroundPreference         string // with-background / without-background
	BackgroundDescription        string
	DueDate                      string // YYYY-MM-DD
	Colors                       []string
}

// OrderPayload — нормализованный результат валидации
type OrderPayload struct {
	OrderName                    string
	CharacterPart                string
	PreferredStyle               string
	PoseView                     string
	PoseDescription              string
	CharacterFeaturesDescription string
	OutfitDescription            string
	HasBackground                bool
	BackgroundDescription        *string // nil если фон не заказан
	DueDate                      time.Time
	Colors                       []string
}

// IsValidEmail проверяет адрес по упрощённому шаблону
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidColor проверяет hex-цвет вида #RRGGBB
func IsValidColor(color string) bool {
	return colorRegex.MatchString(color)
}

func oneOf(value string, options []string) bool {
	for _, opt := range options {
		if value == opt {
			return true
		}
	}
	return false
}

// ValidateOrderForm проверяет форму заказа и возвращает нормализованный payload.
// Правила применяются строго по порядку, возвращается первое нарушенное.
func ValidateOrderForm(form OrderForm, now time.Time) (*OrderPayload, error) {
	// Правило 1: обязательные поля
	if form.OrderName == "" {
		return nil, fail("must provide order name")
	}
	if form.CharacterPart == "" {
		return nil, fail("must provide character part")
	}
	if form.PreferredStyle == "" {
		return nil, fail("must provide preferred style")
	}
	if form.PoseView == "" {
		return nil, fail("must provide pose view")
	}
	if form.PoseDescription == "" {
		return nil, fail("must provide pose description")
	}
	if form.CharacterFeaturesDescription == "" {
		return nil, fail("must provide character features description")
	}
	if form.OutfitDescription == "" {
		return nil, fail("must provide outfit description")
	}

	// Правило 2: каждый цвет — валидный hex
	for _, color := range form.Colors {
		if !IsValidColor(color) {
			return nil, fail("invalid color(s)")
		}
	}

	// Правило 3: минимум два РАЗНЫХ цвета
	distinct := make(map[string]struct{}, len(form.Colors))
	for _, color := range form.Colors {
		distinct[color] = struct{}{}
	}
	if len(distinct) < 2 {
		return nil, fail("must provide at least two different colors")
	}

	// Правила 4-6: фон и срок
	if form.BackgroundPreference == "" {
		return nil, fail("must select background preference")
	}
	if form.BackgroundPreference == "with-background" && form.BackgroundDescription == "" {
		return nil, fail("must provide background description")
	}
	if form.DueDate == "" {
		return nil, fail("must provide due date")
	}

	// Правило 7: значения списков из фиксированных наборов
	if !oneOf(form.CharacterPart, CharacterPartOptions) {
		return nil, fail("invalid character part")
	}
	if !oneOf(form.PreferredStyle, PreferredStyleOptions) {
		return nil, fail("invalid preferred style")
	}
	if !oneOf(form.PoseView, PoseViewOptions) {
		return nil, fail("invalid pose view")
	}
	if !oneOf(form.BackgroundPreference, BackgroundOptions) {
		return nil, fail("invalid background preference")
	}

	// Правило 8: срок — корректная дата
	dueDate, err := time.Parse(dueDateLayout, form.DueDate)
	if err != nil {
		return nil, fail("invalid due date")
	}

	// Правило 9: срок не в прошлом (сегодняшняя дата допустима).
	// Сравниваем календарные дни в UTC: time.Parse даёт полночь UTC,
	// и "сегодня" в локальной зоне западнее UTC не должно отсекаться.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dueDate.Before(today) {
		return nil, fail("due date is in the past")
	}

	payload := &OrderPayload{
		OrderName:                    form.OrderName,
		CharacterPart:                form.CharacterPart,
		PreferredStyle:               form.PreferredStyle,
		PoseView:                     form.PoseView,
		PoseDescription:              form.PoseDescription,
		CharacterFeaturesDescription: form.CharacterFeaturesDescription,
		OutfitDescription:            form.OutfitDescription,
		HasBackground:                form.BackgroundPreference == "with-background",
		DueDate:                      dueDate,
		Colors:                       form.Colors,
	}
	if payload.HasBackground {
		desc := form.BackgroundDescription
		payload.BackgroundDescription = &desc
	}
	return payload, nil
}
