package repository

import "github.com/devyansh/etransport-api/internal/domain/entity"

// ChallanRepository defines the persistence port for Challan.
// GetByID returns (nil, nil) when no row matches; Create surfaces
// domain.ErrDuplicate on a challan_number collision.
type ChallanRepository interface {
	Create(challan *entity.Challan) error
	GetByID(id string) (*entity.Challan, error)
	Update(challan *entity.Challan) error
	Delete(id string) error
	// List returns challans in issue order, paginated. An empty userID lists
	// across all owners; callers scope to the authenticated user at the boundary.
	List(userID string, limit, offset int) ([]*entity.Challan, error)
}
