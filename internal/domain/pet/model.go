package pet

import "time"

type Pet struct {
	ID          int64      `gorm:"column:petid;primaryKey"`
	Name        string     `gorm:"column:name;not null"`
	Breed       string     `gorm:"column:breed;not null"`
	Description string     `gorm:"column:description"`
	Picture     []byte     `gorm:"column:picture;not null"`
	Age         int        `gorm:"column:age"`
	DOB         *time.Time `gorm:"column:dob;type:date"` // nil is stored as NULL
	UserID      int64      `gorm:"column:userid;not null;index"`
}

func (Pet) TableName() string { return "pet" }

type Diet struct {
	ID          int64  `gorm:"column:dietid;primaryKey"`
	Name        string `gorm:"column:name;not null"`
	Amount      string `gorm:"column:amount"`
	Description string `gorm:"column:description"`
	PetID       int64  `gorm:"column:petid;not null;index"`
}

func (Diet) TableName() string { return "diet" }

type Activity struct {
	ID          int64  `gorm:"column:activityid;primaryKey"`
	Name        string `gorm:"column:name;not null"`
	Description string `gorm:"column:description"`
	PetID       int64  `gorm:"column:petid;not null;index"`
}

func (Activity) TableName() string { return "activity" }

const RepeatNever = "never"

// PetSchedule is a recurring reminder for one diet or one activity.
type PetSchedule struct {
	ID           int64
	StartDate    time.Time
	RepeatOption string
	Hour         int
	Minute       int
	Target       ScheduleTarget
}

type PetInput struct {
	Name        string
	Breed       string
	Description string
	Picture     []byte
	Age         int
	DOB         *time.Time
	UserID      int64
}

type DietInput struct {
	Name        string
	Amount      string
	Description string
	PetID       int64
}

type ActivityInput struct {
	Name        string
	Description string
	PetID       int64
}

type PetScheduleInput struct {
	StartDate    time.Time
	RepeatOption string
	Hour         int
	Minute       int
	Target       ScheduleTarget
}
