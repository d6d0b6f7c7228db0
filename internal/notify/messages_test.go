package notify

import (
	"testing"
	"time"

	"budgetwatch/internal/core"
)

func TestAlertMessage_CarriesFullAlert(t *testing.T) {
	alert := core.BudgetAlert{
		ID:         "a1",
		BudgetID:   "b1",
		Category:   "Food",
		Spent:      105,
		Budget:     100,
		Percentage: 105,
		Exceeded:   true,
		CreatedAt:  time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
	}

	msg := NewAlertMessage(alert)
	if msg.AlertID != "a1" || msg.BudgetID != "b1" || msg.Category != "Food" {
		t.Errorf("message identity wrong: %+v", msg)
	}
	if msg.Spent != 105 || msg.Budget != 100 || msg.Percentage != 105 || !msg.Exceeded {
		t.Errorf("message figures wrong: %+v", msg)
	}
	if msg.Timestamp.IsZero() {
		t.Error("message timestamp not set")
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	parsed, err := AlertMessageFromJSON(body)
	if err != nil {
		t.Fatalf("AlertMessageFromJSON() error = %v", err)
	}
	if parsed.AlertID != msg.AlertID || parsed.Spent != msg.Spent {
		t.Errorf("decoded message = %+v, want %+v", parsed, msg)
	}
}

func TestAlertMessageFromJSON_Malformed(t *testing.T) {
	if _, err := AlertMessageFromJSON([]byte("{broken")); err == nil {
		t.Error("AlertMessageFromJSON() accepted malformed input")
	}
}
