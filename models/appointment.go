package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentUrgent    AppointmentStatus = "urgent"
)

// Types de rendez-vous acceptés
var AppointmentTypes = []string{"Installation", "Visite technique", "Signature", "SAV", "Autre"}

// Appointment représente un rendez-vous dans la base de données
// @Description Modèle complet d'un rendez-vous
type Appointment struct {
	ID              string            `json:"id" gorm:"primaryKey;type:uuid"`
	AppointmentDate time.Time         `json:"appointmentDate" gorm:"column:appointment_date" binding:"required"`
	Type            string            `json:"type" binding:"required"`
	Status          AppointmentStatus `json:"status" gorm:"default:scheduled"`
	Address         string            `json:"address" gorm:"type:text"`
	Notes           string            `json:"notes" gorm:"type:text"`
	ClientID        string            `json:"clientId" gorm:"column:client_id;type:uuid"`
	UserID          string            `json:"userId" gorm:"column:user_id;type:uuid"`
	Client          Client            `json:"client" gorm:"foreignKey:ClientID"`
	User            User              `json:"user" gorm:"foreignKey:UserID"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentCreate modèle pour créer un rendez-vous
type AppointmentCreate struct {
	AppointmentDate string `json:"appointmentDate" example:"2025-11-20T14:00:00+01:00"`
	Type            string `json:"type" example:"Visite technique"`
	Status          string `json:"status" example:"scheduled"`
	Address         string `json:"address" example:"15 rue Victor Hugo, Lyon"`
	Notes           string `json:"notes"`
	ClientID        string `json:"clientId"`
	UserID          string `json:"userId"`
}

// AppointmentUpdate modèle pour modifier un rendez-vous (mise à jour partielle)
type AppointmentUpdate struct {
	AppointmentDate *string `json:"appointmentDate"`
	Type            *string `json:"type"`
	Status          *string `json:"status"`
	Address         *string `json:"address"`
	Notes           *string `json:"notes"`
}

func IsValidAppointmentStatus(s string) bool {
	switch AppointmentStatus(s) {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled, AppointmentUrgent:
		return true
	}
	return false
}

func IsValidAppointmentType(t string) bool {
	for _, known := range AppointmentTypes {
		if t == known {
			return true
		}
	}
	return false
}
