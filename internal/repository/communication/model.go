package communication

import "time"

type CommunicationDB struct {
	ID        int64
	OrderID   int64
	Sender    string
	Message   string
	Type      string
	CreatedAt time.Time
}
