package dto

import "time"

type Notification struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	OrderID   *int64    `json:"order_id,omitempty"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
