package event

import (
	"encoding/json"
	"fmt"
)

// Envelope is the JSON form of an event, intended for diagnostic dumps
// and log attachment. The source is stringified because owners are
// opaque values with no canonical wire form.
type Envelope struct {
	Type    string          `json:"type"`
	Source  string          `json:"source,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewEnvelope converts an event to its serializable form. It fails if
// the payload cannot be marshaled to JSON.
func NewEnvelope(ev *Event) (Envelope, error) {
	env := Envelope{
		Type: string(ev.Type),
	}
	if ev.Source != nil {
		env.Source = fmt.Sprint(ev.Source)
	}
	if ev.Payload != nil {
		data, err := json.Marshal(ev.Payload)
		if err != nil {
			return Envelope{}, fmt.Errorf("marshal payload for %q: %w", ev.Type, err)
		}
		env.Payload = data
	}
	return env, nil
}

// Decode unmarshals the envelope's payload into the given value.
func (e Envelope) Decode(into any) error {
	if len(e.Payload) == 0 {
		return nil
	}
	return json.Unmarshal(e.Payload, into)
}

// MarshalEvent renders an event as a JSON document.
func MarshalEvent(ev *Event) ([]byte, error) {
	env, err := NewEnvelope(ev)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}
