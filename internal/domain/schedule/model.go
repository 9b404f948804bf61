package schedule

import "time"

// Schedule is a personal calendar entry.
type Schedule struct {
	ID            int64     `gorm:"column:scheduleid;primaryKey"`
	ScheduledTime time.Time `gorm:"column:scheduled_time;not null"`
	Title         string    `gorm:"column:tittle;not null"`
	Detail        string    `gorm:"column:detail"`
	UserID        int64     `gorm:"column:userid;not null;index"`
}

func (Schedule) TableName() string { return "schedule" }

type ScheduleInput struct {
	ScheduledTime time.Time
	Title         string
	Detail        string
	UserID        int64
}
