package entities

import "time"

// Communication - запись в журнале коммуникаций по заказу.
// Append-only: после создания не изменяется и не удаляется.
type Communication struct {
	ID        int64
	OrderID   int64
	Sender    string
	Message   string
	Type      CommunicationType
	CreatedAt time.Time
}

type CommunicationType string

const (
	CommunicationNote            CommunicationType = "note"
	CommunicationStatusUpdate    CommunicationType = "status_update"
	CommunicationDeliveryRequest CommunicationType = "delivery_request"
	CommunicationCustomerInquiry CommunicationType = "customer_inquiry"
)

func (t CommunicationType) String() string {
	return string(t)
}

type CommunicationModify struct {
	ID      *int64
	OrderID *int64
	Sender  *string
	Message *string
	Type    *CommunicationType
}
