package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityType string

const (
	ActivityRdv    ActivityType = "rdv"
	ActivityDevis  ActivityType = "devis"
	ActivityClient ActivityType = "client"
	ActivityStudy  ActivityType = "study"
	ActivityOther  ActivityType = "other"
)

type ActivityStatus string

const (
	ActivityNew        ActivityStatus = "new"
	ActivityInProgress ActivityStatus = "in_progress"
	ActivityDone       ActivityStatus = "done"
)

// Activity représente une entrée du fil d'activité du tableau de bord
// @Description Modèle complet d'une activité
type Activity struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	Type        ActivityType   `json:"type" binding:"required"`
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description" gorm:"type:text"`
	Status      ActivityStatus `json:"status" gorm:"default:new"`
	ClientID    *string        `json:"clientId,omitempty" gorm:"column:client_id;type:uuid"`
	UserID      *string        `json:"userId,omitempty" gorm:"column:user_id;type:uuid"`
	Client      *Client        `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	User        *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (Activity) TableName() string {
	return "activities"
}

// RelativeTime retourne le libellé de temps écoulé affiché dans le fil
// d'activité ("Il y a 5 minutes", "Hier", ...).
func (a *Activity) RelativeTime() string {
	return a.RelativeTimeAt(time.Now())
}

// RelativeTimeAt calcule le libellé par rapport à un instant donné.
// Les bornes sont celles du tableau de bord: moins d'une heure en minutes,
// moins d'un jour en heures, entre un et deux jours "Hier", ensuite en jours.
func (a *Activity) RelativeTimeAt(now time.Time) string {
	diff := int64(now.Sub(a.CreatedAt).Seconds())

	switch {
	case diff < 3600:
		minutes := diff / 60
		return fmt.Sprintf("Il y a %d minute%s", minutes, pluralize(minutes))
	case diff < 86400:
		hours := diff / 3600
		return fmt.Sprintf("Il y a %d heure%s", hours, pluralize(hours))
	case diff < 172800:
		return "Hier"
	default:
		days := diff / 86400
		return fmt.Sprintf("Il y a %d jour%s", days, pluralize(days))
	}
}

func pluralize(n int64) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// ActivityCreate modèle pour créer une activité
type ActivityCreate struct {
	Type        string  `json:"type" example:"rdv"`
	Title       string  `json:"title" example:"Rendez-vous confirmé"`
	Description string  `json:"description" example:"Le client a confirmé le rendez-vous"`
	Status      string  `json:"status" example:"new"`
	ClientID    *string `json:"clientId"`
	UserID      *string `json:"userId"`
}

func IsValidActivityType(t string) bool {
	switch ActivityType(t) {
	case ActivityRdv, ActivityDevis, ActivityClient, ActivityStudy, ActivityOther:
		return true
	}
	return false
}

func IsValidActivityStatus(s string) bool {
	switch ActivityStatus(s) {
	case ActivityNew, ActivityInProgress, ActivityDone:
		return true
	}
	return false
}
