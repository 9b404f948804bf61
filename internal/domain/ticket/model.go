package ticket

import "time"

type Ticket struct {
	ID          int64      `gorm:"column:ticketid;primaryKey"`
	Subject     string     `gorm:"column:subject"`
	Description string     `gorm:"column:description"`
	Attachment  []byte     `gorm:"column:attachment"`
	Response    []byte     `gorm:"column:respone"`
	Status      Status     `gorm:"column:status;not null;default:pending"`
	UserID      int64      `gorm:"column:userid;not null;index"`
	CreateTime  time.Time  `gorm:"column:createtime;not null"`
	ManagerID   *int64     `gorm:"column:managerid;index"`
	AssignTime  *time.Time `gorm:"column:assigntime"`
}

func (Ticket) TableName() string { return "ticket" }

type CreateTicketInput struct {
	UserID      int64
	Subject     string
	Description string
	Attachment  []byte
}

type UpdateTicketInput struct {
	ID          int64
	Subject     string
	Description string
	Attachment  []byte
}

type RespondInput struct {
	ID       int64
	Response []byte
	Status   string
}
