package leave

import (
	"time"

	"leave-report/internal/employee"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "PENDING"
	StatusSubmitted = "SUBMITTED"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCanceled  = "CANCELLED"
)

// Half-day period values, matching the halves of a business day.
const (
	PeriodMorning   = "am"
	PeriodAfternoon = "pm"
)

type Leave struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID          `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`
	Employee   *employee.Employee `gorm:"foreignKey:EmployeeID"`

	// Category is the leave type name, e.g. "Annual leave" or "Remote work".
	Category      string    `gorm:"type:varchar(60);not null;default:'Annual leave'"`
	StartDate     time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate       time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	HalfDay       bool      `gorm:"not null;default:false"`
	HalfDayPeriod string    `gorm:"type:varchar(2)"`

	Status string `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leaves_status"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_leaves_deleted_at"`
}
