package catalog

import "petcare-go/internal/domain/civil"

type ServiceType struct {
	ID   int64  `gorm:"column:typeid;primaryKey"`
	Type string `gorm:"column:type;not null"`
}

func (ServiceType) TableName() string { return "servicetype" }

// Offering is a row of the service table: something a provider sells.
// Price is in whole currency units; Duration is the length of one
// appointment, nil when the provider did not give one.
type Offering struct {
	ID          int64            `gorm:"column:serviceid;primaryKey"`
	Name        string           `gorm:"column:name;not null"`
	Price       int              `gorm:"column:price;not null"`
	Description string           `gorm:"column:description"`
	Duration    *civil.TimeOfDay `gorm:"column:duration"`
	License     []byte           `gorm:"column:license"`
	TypeID      int64            `gorm:"column:typeid;not null;index"`
	ProviderID  int64            `gorm:"column:providerid;not null;index"`
}

func (Offering) TableName() string { return "service" }

// TimeSlot is a bookable start time of a service.
type TimeSlot struct {
	ServiceID int64           `gorm:"column:serviceid;primaryKey;autoIncrement:false"`
	Slot      civil.TimeOfDay `gorm:"column:slot;primaryKey"`
}

func (TimeSlot) TableName() string { return "timeslot" }

type OfferingInput struct {
	Name        string
	Price       int
	Description string
	Duration    *civil.TimeOfDay
	License     []byte
	TypeID      int64
	ProviderID  int64
}
