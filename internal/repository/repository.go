package repository

import (
	"github.com/yolda/logistics-api/internal/models"
)

// PageOpts carries optional pagination. Zero values mean "not provided" and
// leave the query untouched.
type PageOpts struct {
	Limit  int
	Offset int
}

// OwnedFilter scopes a listing to a single owner, optionally narrowed to one
// organization. The organization filter never widens the result set beyond
// rows the owner holds.
type OwnedFilter struct {
	OwnerUserID    uint64
	OrganizationID *uint64
	Page           PageOpts
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// CreateWithAdmin creates an organization and the owner's admin
	// membership within a single transaction.
	CreateWithAdmin(org *models.Organization, link *models.OrgUser) error

	// FindByID finds an organization by ID
	FindByID(id uint64) (*models.Organization, error)

	// ListByOwner lists organizations owned by a user, newest first
	ListByOwner(ownerUserID uint64, page PageOpts) ([]models.Organization, error)

	// Update updates an organization
	Update(org *models.Organization) error

	// Delete deletes an organization together with its membership rows
	Delete(id uint64) error
}

// OrgUserRepository defines the interface for membership data access
type OrgUserRepository interface {
	// FindLink finds the membership row for an (organization, user) pair
	FindLink(organizationID, userID uint64) (*models.OrgUser, error)

	// Upsert creates the membership row for the pair or overwrites its
	// role and status if the row already exists.
	Upsert(link *models.OrgUser) error

	// ListByOrganization lists all membership rows of an organization
	ListByOrganization(organizationID uint64) ([]models.OrgUser, error)
}

// VehicleRepository defines the interface for vehicle data access
type VehicleRepository interface {
	Create(vehicle *models.Vehicle) error
	FindByID(id uint64) (*models.Vehicle, error)
	ListOwned(filter OwnedFilter) ([]models.Vehicle, error)
	Update(vehicle *models.Vehicle) error
	Delete(id uint64) error
}

// LoadRepository defines the interface for load data access
type LoadRepository interface {
	Create(load *models.Load) error
	FindByID(id uint64) (*models.Load, error)
	ListOwned(filter OwnedFilter) ([]models.Load, error)
	Update(load *models.Load) error
	Delete(id uint64) error
}

// AddressRepository defines the interface for address data access
type AddressRepository interface {
	Create(address *models.Address) error
	FindByID(id uint64) (*models.Address, error)
	List(page PageOpts) ([]models.Address, error)
}
