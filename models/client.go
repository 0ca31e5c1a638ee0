package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientStatus string

// Statuts possibles d'un client
const (
	ClientProspect ClientStatus = "prospect"
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

// Client représente un client dans la base de données
// @Description Modèle complet d'un client
type Client struct {
	ID           string       `json:"id" gorm:"primaryKey;type:uuid"`
	FirstName    string       `json:"firstName" gorm:"column:first_name" binding:"required"`
	LastName     string       `json:"lastName" gorm:"column:last_name" binding:"required"`
	Email        string       `json:"email" binding:"required,email"`
	Phone        string       `json:"phone" binding:"required"`
	Address      string       `json:"address" gorm:"type:text"`
	PostalCode   string       `json:"postalCode" gorm:"column:postal_code"`
	City         string       `json:"city"`
	Status       ClientStatus `json:"status" gorm:"default:prospect"`
	Notes        string       `json:"notes" gorm:"type:text"`
	AssignedToID *string      `json:"assignedToId,omitempty" gorm:"column:assigned_to_id;type:uuid"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (Client) TableName() string {
	return "clients"
}

// FullName retourne le nom complet du client
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// ClientCreate modèle pour créer un client
type ClientCreate struct {
	FirstName    string  `json:"firstName" example:"Marie"`
	LastName     string  `json:"lastName" example:"Durand"`
	Email        string  `json:"email" example:"marie.durand@email.com"`
	Phone        string  `json:"phone" example:"06 12 34 56 78"`
	Address      string  `json:"address" example:"15 rue Victor Hugo"`
	PostalCode   string  `json:"postalCode" example:"69002"`
	City         string  `json:"city" example:"Lyon"`
	Status       string  `json:"status" example:"prospect"`
	Notes        string  `json:"notes"`
	AssignedToID *string `json:"assignedToId"`
}

// ClientUpdate modèle pour modifier un client (mise à jour partielle)
type ClientUpdate struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	PostalCode   *string `json:"postalCode"`
	City         *string `json:"city"`
	Status       *string `json:"status"`
	Notes        *string `json:"notes"`
	AssignedToID *string `json:"assignedToId"`
}

func IsValidClientStatus(s string) bool {
	switch ClientStatus(s) {
	case ClientProspect, ClientActive, ClientInactive:
		return true
	}
	return false
}
