package notify

import (
	"encoding/json"
	"time"

	"budgetwatch/internal/core"
)

// AlertMessage is the wire form of a budget alert pushed to the notification
// queue. It denormalizes everything a consumer needs so nothing has to be
// fetched back from the engine.
type AlertMessage struct {
	AlertID    string    `json:"alertId"`
	BudgetID   string    `json:"budgetId"`
	Category   string    `json:"category"`
	Spent      float64   `json:"spent"`
	Budget     float64   `json:"budget"`
	Percentage float64   `json:"percentage"`
	Exceeded   bool      `json:"exceeded"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewAlertMessage builds a message from a generated alert.
func NewAlertMessage(a core.BudgetAlert) *AlertMessage {
	return &AlertMessage{
		AlertID:    a.ID,
		BudgetID:   a.BudgetID,
		Category:   a.Category,
		Spent:      a.Spent,
		Budget:     a.Budget,
		Percentage: a.Percentage,
		Exceeded:   a.Exceeded,
		Timestamp:  time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *AlertMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// AlertMessageFromJSON creates a message from JSON bytes.
func AlertMessageFromJSON(data []byte) (*AlertMessage, error) {
	var msg AlertMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
