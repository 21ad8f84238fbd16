package property

import (
	"fmt"

	"rentalite/models"
	"rentalite/services/faults"
)

// ListProperties returns all properties, unfiltered.
func (s *DefaultPropertyService) ListProperties() ([]models.Property, error) {
	return s.Repo.FindAll()
}

// GetPropertyByID returns the property with the given id.
func (s *DefaultPropertyService) GetPropertyByID(id string) (*models.Property, error) {
	property, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up property: %w", err)
	}
	if property == nil {
		return nil, faults.NewNotFound("property", fmt.Sprintf("property with id %s not found", id))
	}
	return property, nil
}
