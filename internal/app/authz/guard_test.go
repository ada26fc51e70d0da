package authz

import (
	"testing"

	"commissions/internal/app/ds"
	"commissions/internal/app/role"
)

const (
	ownerID    = uint(7)
	strangerID = uint(8)
)

func pendingOrder() *ds.Order {
	return &ds.Order{ID: 1, UserID: ownerID, Status: ds.StatusPending}
}

func TestRoleOf(t *testing.T) {
	if RoleOf(&ds.User{IsAdmin: true}) != role.Admin {
		t.Error("expected admin role")
	}
	if RoleOf(&ds.User{}) != role.Customer {
		t.Error("expected customer role")
	}
	if RoleOf(nil) != role.Customer {
		t.Error("nil user must default to customer")
	}
}

func TestParseOrderID(t *testing.T) {
	cases := []struct {
		raw    string
		wantID uint
		wantOK bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
	}

	for _, tc := range cases {
		id, err := ParseOrderID(tc.raw)
		if tc.wantOK && (err != nil || id != tc.wantID) {
			t.Errorf("ParseOrderID(%q) = (%d, %v), want (%d, nil)", tc.raw, id, err, tc.wantID)
		}
		if !tc.wantOK && err == nil {
			t.Errorf("ParseOrderID(%q): expected error", tc.raw)
		}
	}
}

func TestCanView(t *testing.T) {
	order := pendingOrder()

	if !CanView(role.Customer, order, ownerID) {
		t.Error("owner must see own order")
	}
	if CanView(role.Customer, order, strangerID) {
		t.Error("stranger must not see foreign order")
	}
	if !CanView(role.Admin, order, strangerID) {
		t.Error("admin must see any existing order")
	}
	if CanView(role.Admin, nil, strangerID) {
		t.Error("missing order is never visible")
	}
	if CanView(role.Customer, nil, ownerID) {
		t.Error("missing order is never visible")
	}
}

func TestCanEdit(t *testing.T) {
	order := pendingOrder()

	if !CanEdit(role.Customer, order, ownerID) {
		t.Error("owner must edit own pending order")
	}
	if CanEdit(role.Customer, order, strangerID) {
		t.Error("stranger must not edit foreign order")
	}
	// Администратор не редактирует содержимое заказов вовсе
	if CanEdit(role.Admin, order, ownerID) {
		t.Error("admin must not edit order content")
	}
	if CanEdit(role.Customer, nil, ownerID) {
		t.Error("missing order cannot be edited")
	}

	// После решения администратора содержимое заморожено
	for _, status := range []string{ds.StatusAccepted, ds.StatusReviewed, ds.StatusCompleted} {
		frozen := pendingOrder()
		frozen.Status = status
		if CanEdit(role.Customer, frozen, ownerID) {
			t.Errorf("order in status %q must not be editable", status)
		}
	}
}

func TestAdminOnlyActions(t *testing.T) {
	order := pendingOrder()

	if !CanAccept(role.Admin, order) || !CanComplete(role.Admin, order) || !CanSetPrice(role.Admin, order) {
		t.Error("admin must be allowed to accept/complete/set price")
	}
	if CanAccept(role.Customer, order) || CanComplete(role.Customer, order) || CanSetPrice(role.Customer, order) {
		t.Error("customer must not accept/complete/set price, even for own order")
	}
	if CanAccept(role.Admin, nil) || CanComplete(role.Admin, nil) || CanSetPrice(role.Admin, nil) {
		t.Error("missing order permits nothing")
	}
}

func TestCanRemove(t *testing.T) {
	order := pendingOrder()

	if !CanRemove(role.Admin, order, strangerID) {
		t.Error("admin must remove any order")
	}
	if !CanRemove(role.Customer, order, ownerID) {
		t.Error("owner must remove own order")
	}
	if CanRemove(role.Customer, order, strangerID) {
		t.Error("stranger must not remove foreign order")
	}
	if CanRemove(role.Admin, nil, strangerID) {
		t.Error("missing order cannot be removed")
	}
}
