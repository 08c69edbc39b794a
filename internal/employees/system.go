package employees

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskpoint/assist/pkg/pagination"
)

// System defines the public contract for employee directory operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Employee], error)

	Find(ctx context.Context, id uuid.UUID) (*Employee, error)

	// FindByName resolves a full name to an employment record using an
	// exact, case-sensitive match. Returns ErrNotFound when no record
	// matches; there is no fuzzy fallback.
	FindByName(ctx context.Context, name string) (*Employee, error)
}
