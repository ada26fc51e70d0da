package validation

import (
	"testing"
	"time"
)

// Фиксированное "сегодня" для проверок срока сдачи
var testNow = time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)

func validForm() OrderForm {
	return OrderForm{
		OrderName:                    "Knight OC",
		CharacterPart:                "Full Body",
		PreferredStyle:               "Chibi",
		PoseView:                     "Front View",
		PoseDescription:              "standing with sword",
		CharacterFeaturesDescription: "silver hair, green eyes",
		OutfitDescription:            "plate armor",
		BackgroundPreference:         "without-background",
		DueDate:                      "2025-07-01",
		Colors:                       []string{"#FF0000", "#00FF00"},
	}
}

func TestIsValidColor(t *testing.T) {
	cases := []struct {
		color string
		want  bool
	}{
		{"#1A2b3C", true},
		{"#ffffff", true},
		{"#000000", true},
		{"1A2B3C", false},
		{"#12345", false},
		{"#1234567", false},
		{"#12345G", false},
		{"", false},
		{"#", false},
	}

	for _, tc := range cases {
		if got := IsValidColor(tc.color); got != tc.want {
			t.Errorf("IsValidColor(%q) = %v, want %v", tc.color, got, tc.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last-name_1@sub.domain.org", true},
		{"a@b.co", true},
		{"no-at-sign.com", false},
		{"user@domain", false},
		{"user@domain.c", false},
		{"@example.com", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsValidEmail(tc.email); got != tc.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestValidateOrderFormOK(t *testing.T) {
	payload, err := ValidateOrderForm(validForm(), testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payload.HasBackground {
		t.Error("expected HasBackground to be false")
	}
	if payload.BackgroundDescription != nil {
		t.Errorf("expected nil background description, got %q", *payload.BackgroundDescription)
	}
	if payload.DueDate.Format("2006-01-02") != "2025-07-01" {
		t.Errorf("unexpected due date: %v", payload.DueDate)
	}
	if len(payload.Colors) != 2 {
		t.Errorf("unexpected colors: %v", payload.Colors)
	}
}

func TestValidateOrderFormWithBackground(t *testing.T) {
	form := validForm()
	form.BackgroundPreference = "with-background"
	form.BackgroundDescription = "forest at night"

	payload, err := ValidateOrderForm(form, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !payload.HasBackground {
		t.Error("expected HasBackground to be true")
	}
	if payload.BackgroundDescription == nil || *payload.BackgroundDescription != "forest at night" {
		t.Errorf("unexpected background description: %v", payload.BackgroundDescription)
	}
}

// Каждая мутация формы должна давать ровно своё сообщение о первом
// нарушенном правиле
func TestValidateOrderFormFirstViolatedRule(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*OrderForm)
		message string
	}{
		{"missing order name", func(f *OrderForm) { f.OrderName = "" }, "must provide order name"},
		{"missing character part", func(f *OrderForm) { f.CharacterPart = "" }, "must provide character part"},
		{"missing preferred style", func(f *OrderForm) { f.PreferredStyle = "" }, "must provide preferred style"},
		{"missing pose view", func(f *OrderForm) { f.PoseView = "" }, "must provide pose view"},
		{"missing pose description", func(f *OrderForm) { f.PoseDescription = "" }, "must provide pose description"},
		{"missing features", func(f *OrderForm) { f.CharacterFeaturesDescription = "" }, "must provide character features description"},
		{"missing outfit", func(f *OrderForm) { f.OutfitDescription = "" }, "must provide outfit description"},
		{"invalid color", func(f *OrderForm) { f.Colors = []string{"#FF0000", "red"} }, "invalid color(s)"},
		{"no colors", func(f *OrderForm) { f.Colors = nil }, "must provide at least two different colors"},
		{"one color", func(f *OrderForm) { f.Colors = []string{"#FF0000"} }, "must provide at least two different colors"},
		{"duplicate colors only", func(f *OrderForm) { f.Colors = []string{"#FF0000", "#FF0000"} }, "must provide at least two different colors"},
		{"missing background preference", func(f *OrderForm) { f.BackgroundPreference = "" }, "must select background preference"},
		{"background without description", func(f *OrderForm) {
			f.BackgroundPreference = "with-background"
			f.BackgroundDescription = ""
		}, "must provide background description"},
		{"missing due date", func(f *OrderForm) { f.DueDate = "" }, "must provide due date"},
		{"unknown character part", func(f *OrderForm) { f.CharacterPart = "Torso" }, "invalid character part"},
		{"unknown style", func(f *OrderForm) { f.PreferredStyle = "Realism" }, "invalid preferred style"},
		{"unknown pose view", func(f *OrderForm) { f.PoseView = "Back View" }, "invalid pose view"},
		{"unknown background preference", func(f *OrderForm) { f.BackgroundPreference = "maybe" }, "invalid background preference"},
		{"garbage due date", func(f *OrderForm) { f.DueDate = "next friday" }, "invalid due date"},
		{"due date in the past", func(f *OrderForm) { f.DueDate = "2025-06-14" }, "due date is in the past"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)

			_, err := ValidateOrderForm(form, testNow)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Error() != tc.message {
				t.Errorf("got %q, want %q", err.Error(), tc.message)
			}
		})
	}
}

// Срок, равный сегодняшней дате, допустим — отклоняется только строгое прошлое
func TestValidateOrderFormDueDateToday(t *testing.T) {
	form := validForm()
	form.DueDate = "2025-06-15"

	if _, err := ValidateOrderForm(form, testNow); err != nil {
		t.Errorf("due date equal to today must be accepted, got: %v", err)
	}

	// Сегодняшняя дата допустима независимо от часового пояса сервера
	zones := map[string]*time.Location{
		"west of UTC": time.FixedZone("UTC-5", -5*60*60),
		"east of UTC": time.FixedZone("UTC+9", 9*60*60),
	}
	for name, zone := range zones {
		now := time.Date(2025, 6, 15, 12, 0, 0, 0, zone)
		if _, err := ValidateOrderForm(form, now); err != nil {
			t.Errorf("%s: due date equal to today must be accepted, got: %v", name, err)
		}
	}
}

// Проверка приоритета: невалидный цвет сообщается раньше отсутствующего фона
func TestValidateOrderFormPrecedence(t *testing.T) {
	form := validForm()
	form.Colors = []string{"red", "blue"}
	form.BackgroundPreference = ""
	form.DueDate = ""

	_, err := ValidateOrderForm(form, testNow)
	if err == nil || err.Error() != "invalid color(s)" {
		t.Errorf("expected color error first, got: %v", err)
	}
}
