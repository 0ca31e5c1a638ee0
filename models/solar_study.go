package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudyStatus string

const (
	StudyPending    StudyStatus = "pending"
	StudyInProgress StudyStatus = "in_progress"
	StudyCompleted  StudyStatus = "completed"
	StudyCancelled  StudyStatus = "cancelled"
)

// SolarStudy représente une étude solaire dans la base de données
// @Description Modèle complet d'une étude de faisabilité solaire
type SolarStudy struct {
	ID               string      `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectName      string      `json:"projectName" gorm:"column:project_name" binding:"required"`
	RoofSurface      *float64    `json:"roofSurface" gorm:"column:roof_surface"`
	EstimatedPower   *float64    `json:"estimatedPower" gorm:"column:estimated_power"`
	AnnualProduction *float64    `json:"annualProduction" gorm:"column:annual_production"`
	EstimatedCost    *float64    `json:"estimatedCost" gorm:"column:estimated_cost"`
	AnnualSavings    *float64    `json:"annualSavings" gorm:"column:annual_savings"`
	PaybackPeriod    *int        `json:"paybackPeriod" gorm:"column:payback_period"`
	Status           StudyStatus `json:"status" gorm:"default:pending"`
	Notes            string      `json:"notes" gorm:"type:text"`
	ClientID         string      `json:"clientId" gorm:"column:client_id;type:uuid"`
	Client           Client      `json:"client" gorm:"foreignKey:ClientID"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

func (s *SolarStudy) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (SolarStudy) TableName() string {
	return "solar_studies"
}

// SolarStudyCreate modèle pour créer une étude solaire
type SolarStudyCreate struct {
	ProjectName      string   `json:"projectName" example:"Maison Durand - toiture sud"`
	RoofSurface      *float64 `json:"roofSurface" example:"45.5"`
	EstimatedPower   *float64 `json:"estimatedPower" example:"6.0"`
	AnnualProduction *float64 `json:"annualProduction" example:"7200"`
	EstimatedCost    *float64 `json:"estimatedCost" example:"14500"`
	AnnualSavings    *float64 `json:"annualSavings" example:"1250"`
	PaybackPeriod    *int     `json:"paybackPeriod" example:"12"`
	Status           string   `json:"status" example:"pending"`
	Notes            string   `json:"notes"`
	ClientID         string   `json:"clientId"`
}

// SolarStudyUpdate modèle pour modifier une étude solaire (mise à jour partielle)
type SolarStudyUpdate struct {
	ProjectName      *string  `json:"projectName"`
	RoofSurface      *float64 `json:"roofSurface"`
	EstimatedPower   *float64 `json:"estimatedPower"`
	AnnualProduction *float64 `json:"annualProduction"`
	EstimatedCost    *float64 `json:"estimatedCost"`
	AnnualSavings    *float64 `json:"annualSavings"`
	PaybackPeriod    *int     `json:"paybackPeriod"`
	Status           *string  `json:"status"`
	Notes            *string  `json:"notes"`
}

func IsValidStudyStatus(s string) bool {
	switch StudyStatus(s) {
	case StudyPending, StudyInProgress, StudyCompleted, StudyCancelled:
		return true
	}
	return false
}
