package authz

import (
	"testing"

	"github.com/google/uuid"
)

func TestDecide_CategoryActionsAdminOnly(t *testing.T) {
	admin := Actor{ID: uuid.New(), IsAdmin: true}
	supplier := Actor{ID: uuid.New(), IsSupplier: true}
	customer := Actor{ID: uuid.New(), IsCustomer: true}

	for _, action := range []Action{ActionCreateCategory, ActionUpdateCategory, ActionDeleteCategory} {
		if err := Decide(action, admin, nil); err != nil {
			t.Errorf("admin should be allowed %s: %v", action, err)
		}
		if err := Decide(action, supplier, nil); err != ErrForbidden {
			t.Errorf("supplier should be denied %s", action)
		}
		if err := Decide(action, customer, nil); err != ErrForbidden {
			t.Errorf("customer should be denied %s", action)
		}
	}
}

func TestDecide_CreateProduct(t *testing.T) {
	cases := []struct {
		name    string
		actor   Actor
		allowed bool
	}{
		{"admin", Actor{ID: uuid.New(), IsAdmin: true}, true},
		{"supplier", Actor{ID: uuid.New(), IsSupplier: true}, true},
		{"customer", Actor{ID: uuid.New(), IsCustomer: true}, false},
		{"no roles", Actor{ID: uuid.New()}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Decide(ActionCreateProduct, tc.actor, nil)
			if tc.allowed && err != nil {
				t.Errorf("expected allow, got %v", err)
			}
			if !tc.allowed && err != ErrForbidden {
				t.Errorf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestDecide_ProductMutationRequiresOwnership(t *testing.T) {
	ownerID := uuid.New()
	owner := Actor{ID: ownerID, IsSupplier: true}
	otherSupplier := Actor{ID: uuid.New(), IsSupplier: true}
	admin := Actor{ID: uuid.New(), IsAdmin: true}

	for _, action := range []Action{ActionUpdateProduct, ActionDeleteProduct} {
		if err := Decide(action, owner, &ownerID); err != nil {
			t.Errorf("owning supplier should be allowed %s: %v", action, err)
		}
		if err := Decide(action, otherSupplier, &ownerID); err != ErrForbidden {
			t.Errorf("non-owning supplier should be denied %s", action)
		}
		// Admin is never denied, including on products they do not own.
		if err := Decide(action, admin, &ownerID); err != nil {
			t.Errorf("admin should be allowed %s: %v", action, err)
		}
		// Ownerless (admin-created) products are admin-only.
		if err := Decide(action, owner, nil); err != ErrForbidden {
			t.Errorf("supplier should be denied %s on ownerless product", action)
		}
		if err := Decide(action, admin, nil); err != nil {
			t.Errorf("admin should be allowed %s on ownerless product: %v", action, err)
		}
	}
}

func TestDecide_Reviews(t *testing.T) {
	admin := Actor{ID: uuid.New(), IsAdmin: true}
	supplier := Actor{ID: uuid.New(), IsSupplier: true}
	customer := Actor{ID: uuid.New(), IsCustomer: true}

	if err := Decide(ActionCreateReview, customer, nil); err != nil {
		t.Errorf("customer should be allowed to create review: %v", err)
	}
	if err := Decide(ActionCreateReview, admin, nil); err != ErrForbidden {
		t.Error("admin without customer flag should be denied review creation")
	}
	if err := Decide(ActionCreateReview, supplier, nil); err != ErrForbidden {
		t.Error("supplier should be denied review creation")
	}

	if err := Decide(ActionDeleteReview, admin, nil); err != nil {
		t.Errorf("admin should be allowed to delete review: %v", err)
	}
	if err := Decide(ActionDeleteReview, customer, nil); err != ErrForbidden {
		t.Error("customer should be denied review deletion")
	}
}

func TestDecide_UnknownActionDenied(t *testing.T) {
	admin := Actor{ID: uuid.New(), IsAdmin: true}
	if err := Decide(Action("order:create"), admin, nil); err != ErrForbidden {
		t.Error("unknown action should be denied even for admin")
	}
}
