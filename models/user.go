package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// Roles liste de rôles sérialisée en JSON dans la base
type Roles []string

func (r Roles) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *Roles) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		*r = nil
		return nil
	}
	return errors.New("type incompatible pour Roles")
}

func (r Roles) Has(role string) bool {
	for _, candidate := range r {
		if candidate == role {
			return true
		}
	}
	return false
}

// User représente un utilisateur (commercial) dans la base de données
// @Description Modèle complet d'un utilisateur
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Email     string    `json:"email" gorm:"uniqueIndex" binding:"required,email"`
	Password  string    `json:"-"`
	FirstName string    `json:"firstName" gorm:"column:first_name" binding:"required"`
	LastName  string    `json:"lastName" gorm:"column:last_name" binding:"required"`
	Phone     string    `json:"phone"`
	Roles     Roles     `json:"roles" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if len(u.Roles) == 0 {
		u.Roles = Roles{RoleUser}
	}
	return nil
}

func (User) TableName() string {
	return "users"
}

// FullName retourne le nom complet de l'utilisateur
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserCreate modèle pour créer un utilisateur
type UserCreate struct {
	Email     string   `json:"email" example:"marie.martin@soleil.fr"`
	Password  string   `json:"password" example:"Secret123"`
	FirstName string   `json:"firstName" example:"Marie"`
	LastName  string   `json:"lastName" example:"Martin"`
	Phone     string   `json:"phone" example:"06 98 76 54 32"`
	Roles     []string `json:"roles"`
}

// UserUpdate modèle pour modifier un utilisateur (mise à jour partielle)
type UserUpdate struct {
	Email     *string  `json:"email"`
	Password  *string  `json:"password"`
	FirstName *string  `json:"firstName"`
	LastName  *string  `json:"lastName"`
	Phone     *string  `json:"phone"`
	Roles     []string `json:"roles"`
}

// UserLogin modèle pour la connexion
type UserLogin struct {
	Email    string `json:"email" example:"marie.martin@soleil.fr"`
	Password string `json:"password" example:"Secret123"`
}
