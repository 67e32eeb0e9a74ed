package billing

import (
	"encoding/json"
	"fmt"
)

// Event is the envelope of a webhook delivery.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object EventObject `json:"object"`
	} `json:"data"`
}

// EventObject is the union of the object fields read across the handled
// event types. checkout.session.completed carries customer/subscription
// references; customer.subscription.* events carry the subscription itself.
type EventObject struct {
	ID                 string            `json:"id"`
	Customer           *string           `json:"customer"`
	Subscription       *string           `json:"subscription"`
	ClientReferenceID  *string           `json:"client_reference_id"`
	Metadata           map[string]string `json:"metadata"`
	Status             *string           `json:"status"`
	Items              Items             `json:"items"`
	CurrentPeriodStart *int64            `json:"current_period_start"`
	CurrentPeriodEnd   *int64            `json:"current_period_end"`
}

// ParseEvent decodes a raw webhook payload.
func ParseEvent(payload []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return Event{}, fmt.Errorf("billing: parse event: %w", err)
	}
	return ev, nil
}

// UserID resolves the platform user a checkout session belongs to:
// client_reference_id first, then the user_id metadata entry. Empty when the
// session carries neither.
func (o EventObject) UserID() string {
	if o.ClientReferenceID != nil && *o.ClientReferenceID != "" {
		return *o.ClientReferenceID
	}
	return o.Metadata["user_id"]
}
