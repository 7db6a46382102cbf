package event

import "encoding/json"

// DecodePayload returns the payload as T. In-process events already carry T;
// replayed dead letters carry raw JSON or a generic map.
func DecodePayload[T any](input interface{}) (T, error) {
	var out T
	switch v := input.(type) {
	case T:
		return v, nil
	case json.RawMessage:
		return out, json.Unmarshal(v, &out)
	case []byte:
		return out, json.Unmarshal(v, &out)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return out, err
	}
	return out, json.Unmarshal(data, &out)
}
