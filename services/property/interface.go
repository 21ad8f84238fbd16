package property

import (
	propertyRepo "rentalite/database/repository/property"
	"rentalite/models"
)

// PropertyService defines read access to the property catalogue.
// Properties are created out-of-band; this surface is read-only.
type PropertyService interface {
	ListProperties() ([]models.Property, error)
	GetPropertyByID(id string) (*models.Property, error)
}

// DefaultPropertyService implements PropertyService.
type DefaultPropertyService struct {
	Repo propertyRepo.PropertyRepository
}
