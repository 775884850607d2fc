package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DecodePayload returns input as T. In-process publishers hand over the
// struct itself or a pointer to it; payloads read back from the dead-letter
// file are generic maps and go through a JSON round trip.
func DecodePayload[T any](input interface{}) (T, error) {
	var out T
	switch v := input.(type) {
	case nil:
		return out, errors.New(ErrMsgMissingPayload)
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, errors.New(ErrMsgMissingPayload)
		}
		return *v, nil
	}

	data, err := json.Marshal(input)
	if err != nil {
		return out, fmt.Errorf("%s: %w", ErrMsgDecodePayload, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%s: %w", ErrMsgDecodePayload, err)
	}
	return out, nil
}

// userScoped is the field every payload of this package shares
type userScoped struct {
	UserID string `json:"user_id"`
}

// PayloadUserID returns the user an event belongs to, or "" when the payload
// does not name one.
func PayloadUserID(evt Event) string {
	switch p := evt.Payload.(type) {
	case ItemPayloadV1:
		return p.UserID
	case CategoryPayloadV1:
		return p.UserID
	}
	p, err := DecodePayload[userScoped](evt.Payload)
	if err != nil {
		return ""
	}
	return p.UserID
}
