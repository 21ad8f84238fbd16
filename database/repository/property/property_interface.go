package propertyRepo

import "rentalite/models"

// PropertyRepository defines persistence operations for properties.
// FindByID returns (nil, nil) when no property carries the given id.
type PropertyRepository interface {
	FindAll() ([]models.Property, error)
	FindByID(id string) (*models.Property, error)
	Save(property *models.Property) error
}
