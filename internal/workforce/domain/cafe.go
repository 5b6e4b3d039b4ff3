package domain

import (
	"context"
	"strings"
)

type Cafe struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Location    string `json:"location" gorm:"index"`
}

// Validate checks the writable fields of a cafe.
func (c Cafe) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrValidation
	}
	return nil
}

type CafeRepository interface {
	Save(ctx context.Context, cafe Cafe) error
	FindByID(ctx context.Context, id string) (Cafe, error)
	FindByName(ctx context.Context, name string) (Cafe, error)
	FindByLocation(ctx context.Context, location string) ([]Cafe, error)
	Update(ctx context.Context, cafe Cafe) error
	Delete(ctx context.Context, id string) error
}
