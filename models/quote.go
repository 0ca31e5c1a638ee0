package models

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "draft"
	QuoteSent     QuoteStatus = "sent"
	QuoteSigned   QuoteStatus = "signed"
	QuoteRejected QuoteStatus = "rejected"
)

// Quote représente un devis dans la base de données
// @Description Modèle complet d'un devis
type Quote struct {
	ID          string      `json:"id" gorm:"primaryKey;type:uuid"`
	Reference   string      `json:"reference" gorm:"uniqueIndex;size:50"`
	Amount      float64     `json:"amount"`
	PowerKwc    *float64    `json:"powerKwc" gorm:"column:power_kwc"`
	Status      QuoteStatus `json:"status" gorm:"default:draft"`
	Description string      `json:"description" gorm:"type:text"`
	ValidUntil  *time.Time  `json:"validUntil" gorm:"column:valid_until"`
	SignedAt    *time.Time  `json:"signedAt" gorm:"column:signed_at"`
	ClientID    string      `json:"clientId" gorm:"column:client_id;type:uuid"`
	UserID      string      `json:"userId" gorm:"column:user_id;type:uuid"`
	Client      Client      `json:"client" gorm:"foreignKey:ClientID"`
	User        User        `json:"user" gorm:"foreignKey:UserID"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

func (Quote) TableName() string {
	return "quotes"
}

// GenerateQuoteReference génère une référence de devis de la forme Q-2025-0042.
// L'unicité est garantie par la contrainte en base, pas par le générateur.
func GenerateQuoteReference() string {
	return fmt.Sprintf("Q-%d-%04d", time.Now().Year(), rand.Intn(9999)+1)
}

// QuoteCreate modèle pour créer un devis
type QuoteCreate struct {
	ClientID    string   `json:"clientId"`
	UserID      string   `json:"userId"`
	Amount      float64  `json:"amount" example:"15000.00"`
	PowerKwc    *float64 `json:"powerKwc" example:"7.5"`
	Status      string   `json:"status" example:"draft"`
	Description string   `json:"description" example:"Installation de 20 panneaux solaires"`
	ValidUntil  string   `json:"validUntil" example:"2025-12-31"`
}

// QuoteUpdate modèle pour modifier un devis (mise à jour partielle)
type QuoteUpdate struct {
	Amount      *float64 `json:"amount"`
	PowerKwc    *float64 `json:"powerKwc"`
	Status      *string  `json:"status"`
	Description *string  `json:"description"`
	ValidUntil  *string  `json:"validUntil"`
}

func IsValidQuoteStatus(s string) bool {
	switch QuoteStatus(s) {
	case QuoteDraft, QuoteSent, QuoteSigned, QuoteRejected:
		return true
	}
	return false
}
