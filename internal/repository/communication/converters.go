package communication

import (
	"fleetdesk/internal/entities"
)

func ToDomain(c *CommunicationDB) *entities.Communication {
	if c == nil {
		return nil
	}

	return &entities.Communication{
		ID:        c.ID,
		OrderID:   c.OrderID,
		Sender:    c.Sender,
		Message:   c.Message,
		Type:      entities.CommunicationType(c.Type),
		CreatedAt: c.CreatedAt,
	}
}

func ToDomainList(communicationsDB []CommunicationDB) []entities.Communication {
	if len(communicationsDB) == 0 {
		return []entities.Communication{}
	}

	result := make([]entities.Communication, len(communicationsDB))
	for i, communicationDB := range communicationsDB {
		result[i] = *ToDomain(&communicationDB)
	}
	return result
}
