package entities

import "time"

type DeliveryRequest struct {
	ID                  int64
	OrderID             int64
	DeliveryAddress     string
	ContactName         string
	ContactPhone        string
	PreferredDate       time.Time
	SpecialInstructions *string
	Status              DeliveryRequestStatusType
	UserID              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type DeliveryRequestStatusType string

const (
	DeliveryRequestPending    DeliveryRequestStatusType = "pending"
	DeliveryRequestApproved   DeliveryRequestStatusType = "approved"
	DeliveryRequestRejected   DeliveryRequestStatusType = "rejected"
	DeliveryRequestInProgress DeliveryRequestStatusType = "in_progress"
	DeliveryRequestCompleted  DeliveryRequestStatusType = "completed"
)

func (s DeliveryRequestStatusType) String() string {
	return string(s)
}

type DeliveryRequestModify struct {
	ID                  *int64
	OrderID             *int64
	DeliveryAddress     *string
	ContactName         *string
	ContactPhone        *string
	PreferredDate       *time.Time
	SpecialInstructions *string
	Status              *DeliveryRequestStatusType
	UserID              *string
}
