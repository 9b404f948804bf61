package notification

type Notification struct {
	ID     int64  `gorm:"column:notiid;primaryKey"`
	UserID int64  `gorm:"column:userid;not null;index"`
	Text   string `gorm:"column:text;not null"`
}

func (Notification) TableName() string { return "notification" }
