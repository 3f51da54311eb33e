package entities

import "time"

type Notification struct {
	ID        int64
	UserID    string
	OrderID   *int64
	Title     string
	Message   string
	Type      NotificationType
	Priority  NotificationPriority
	IsRead    bool
	CreatedAt time.Time
}

type NotificationType string

const (
	NotificationOrderUpdate     NotificationType = "order_update"
	NotificationDeliveryRequest NotificationType = "delivery_request"
	NotificationStockMatch      NotificationType = "stock_match"
	NotificationSystem          NotificationType = "system"
)

func (t NotificationType) String() string {
	return string(t)
}

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
)

func (p NotificationPriority) String() string {
	return string(p)
}

type NotificationModify struct {
	ID       *int64
	UserID   *string
	OrderID  *int64
	Title    *string
	Message  *string
	Type     *NotificationType
	Priority *NotificationPriority
	IsRead   *bool
}
