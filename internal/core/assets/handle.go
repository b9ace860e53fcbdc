package assets

import (
	"github.com/google/uuid"
)

// Handle identifies one asset for the lifetime of the project. Handles are
// value types, comparable and usable as map keys. The zero Handle refers to
// nothing.
type Handle struct {
	id uuid.UUID
}

// NewHandle returns a fresh, unique handle.
func NewHandle() Handle {
	return Handle{id: uuid.New()}
}

// ParseHandle parses the canonical UUID string form.
func ParseHandle(s string) (Handle, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Handle{}, err
	}
	return Handle{id: id}, nil
}

func (h Handle) IsZero() bool {
	return h.id == uuid.Nil
}

func (h Handle) String() string {
	return h.id.String()
}

func (h Handle) MarshalText() ([]byte, error) {
	return []byte(h.id.String()), nil
}

func (h *Handle) UnmarshalText(text []byte) error {
	id, err := uuid.Parse(string(text))
	if err != nil {
		return err
	}
	h.id = id
	return nil
}
