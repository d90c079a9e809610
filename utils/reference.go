package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateReference returns a short confirmation code customers quote when
// calling the salon, e.g. "BK-9F2C41A7".
func GenerateReference() string {
	id := uuid.New().String()
	return "BK-" + strings.ToUpper(id[:8])
}
