package dto

import "time"

type CommunicationCreate struct {
	Message string  `json:"message"`
	Type    *string `json:"type,omitempty"`
}

type Communication struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
