package draft

import (
	"strings"

	"github.com/google/uuid"
)

// tempIDPrefix marks identifiers minted client-side for modules and lessons
// that have never been persisted. They are stripped from the wire document so
// the upstream API assigns real ids.
const tempIDPrefix = "tmp-"

// NewTempID returns a fresh temporary identifier.
func NewTempID() string {
	return tempIDPrefix + uuid.NewString()
}

// IsTempID reports whether id was minted by NewTempID.
func IsTempID(id string) bool {
	return strings.HasPrefix(id, tempIDPrefix)
}
