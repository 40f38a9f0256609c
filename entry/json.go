package entry

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type envelope struct {
	Kind Kind `json:"kind"`
}

func (s Symbolic) MarshalJSON() ([]byte, error) {
	type plain Symbolic
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		plain
	}{KindSymbolic, plain(s)})
}

func (c Custom) MarshalJSON() ([]byte, error) {
	type plain Custom
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		plain
	}{KindCustom, plain(c)})
}

// UnmarshalEntry decodes a single entry, picking its type from "kind".
// A missing kind is read as symbolic and a missing id is generated.
func UnmarshalEntry(data []byte) (Entry, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	switch env.Kind {
	case KindSymbolic, "":
		var s Symbolic
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		return s, nil
	case KindCustom:
		var c Custom
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, env.Kind)
	}
}

func (l *List) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	res := make(List, 0, len(raw))
	for i, r := range raw {
		e, err := UnmarshalEntry(r)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		res = append(res, e)
	}
	*l = res
	return nil
}
