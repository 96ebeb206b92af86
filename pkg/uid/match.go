package uid

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateMatchID returns a random match ID without dashes
func GenerateMatchID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// IsMatchID reports whether id has the shape GenerateMatchID produces.
func IsMatchID(id string) bool {
	if len(id) != 32 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
