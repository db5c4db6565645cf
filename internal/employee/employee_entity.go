package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName string    `gorm:"type:varchar(120);not null"`
	Email    string    `gorm:"uniqueIndex"`
	Active   bool      `gorm:"not null;default:true;index:idx_employees_active"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
