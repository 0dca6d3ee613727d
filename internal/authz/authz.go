// Package authz holds the pure authorization policy for catalog mutations.
// Decisions depend only on the actor's role flags and, for owned resources,
// on whether the actor is the owner. Resource existence is checked by the
// services before the policy is consulted, so a denial always means
// "forbidden", never "not found".
package authz

import (
	"errors"

	"github.com/google/uuid"
)

var ErrForbidden = errors.New("insufficient permissions")

// Action identifies a gated mutation
type Action string

const (
	ActionCreateCategory Action = "category:create"
	ActionUpdateCategory Action = "category:update"
	ActionDeleteCategory Action = "category:delete"
	ActionCreateProduct  Action = "product:create"
	ActionUpdateProduct  Action = "product:update"
	ActionDeleteProduct  Action = "product:delete"
	ActionCreateReview   Action = "review:create"
	ActionDeleteReview   Action = "review:delete"
)

// Actor is the verified identity performing a request
type Actor struct {
	ID         uuid.UUID
	IsAdmin    bool
	IsSupplier bool
	IsCustomer bool
}

// Decide returns nil if the actor may perform the action, ErrForbidden
// otherwise. ownerID is the resource's supplier reference and is only
// consulted for product update/delete; nil means the product has no owner
// (admin-created), in which case only an admin may mutate it.
func Decide(action Action, actor Actor, ownerID *uuid.UUID) error {
	switch action {
	case ActionCreateCategory, ActionUpdateCategory, ActionDeleteCategory:
		if actor.IsAdmin {
			return nil
		}
	case ActionCreateProduct:
		if actor.IsAdmin || actor.IsSupplier {
			return nil
		}
	case ActionUpdateProduct, ActionDeleteProduct:
		if actor.IsAdmin {
			return nil
		}
		if actor.IsSupplier && ownerID != nil && *ownerID == actor.ID {
			return nil
		}
	case ActionCreateReview:
		if actor.IsCustomer {
			return nil
		}
	case ActionDeleteReview:
		if actor.IsAdmin {
			return nil
		}
	}
	return ErrForbidden
}
