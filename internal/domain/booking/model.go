package booking

import (
	"time"

	"petcare-go/internal/domain/civil"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var statuses = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

const (
	MinRating = 1
	MaxRating = 5
)

type Booking struct {
	ID            int64           `gorm:"column:bookid;primaryKey"`
	PetOwnerID    int64           `gorm:"column:poid;not null;index"`
	ServiceID     int64           `gorm:"column:svid;not null"`
	Slot          civil.TimeOfDay `gorm:"column:slot;not null"`
	BookTimestamp time.Time       `gorm:"column:book_timestamp;not null"`
	ServeDate     time.Time       `gorm:"column:servedate;type:date;not null"`
	PaymentMethod string          `gorm:"column:payment_method"`
	Status        string          `gorm:"column:status;not null"`
}

func (Booking) TableName() string { return "booking" }

type BookingPet struct {
	BookID int64 `gorm:"column:bookid;primaryKey;autoIncrement:false"`
	PetID  int64 `gorm:"column:petid;primaryKey;autoIncrement:false"`
}

func (BookingPet) TableName() string { return "booking_pet" }

type ServiceReport struct {
	BookID int64  `gorm:"column:bookid;primaryKey;autoIncrement:false"`
	Text   string `gorm:"column:text"`
	Image  []byte `gorm:"column:image"`
}

func (ServiceReport) TableName() string { return "service_report" }

type ServiceReview struct {
	BookID  int64  `gorm:"column:bookid;primaryKey;autoIncrement:false"`
	Rating  int    `gorm:"column:start;not null"`
	Comment string `gorm:"column:comment"`
}

func (ServiceReview) TableName() string { return "service_review" }

// ServiceUpdate is one progress note on a booking, numbered per booking.
type ServiceUpdate struct {
	BookID   int64  `gorm:"column:bookid;primaryKey;autoIncrement:false"`
	NoUpdate int    `gorm:"column:no_update;primaryKey;autoIncrement:false"`
	Text     string `gorm:"column:text"`
	Image    []byte `gorm:"column:image"`
}

func (ServiceUpdate) TableName() string { return "service_update" }

type BookingInput struct {
	PetOwnerID    int64
	ServiceID     int64
	Slot          civil.TimeOfDay
	ServeDate     time.Time
	PaymentMethod string
	Status        string
	PetIDs        []int64
}
