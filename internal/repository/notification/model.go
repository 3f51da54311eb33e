package notification

import "time"

type NotificationDB struct {
	ID        int64
	UserID    string
	OrderID   *int64
	Title     string
	Message   string
	Type      string
	Priority  string
	IsRead    bool
	CreatedAt time.Time
}
