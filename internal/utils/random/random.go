package random

import (
	"math/rand"

	"github.com/google/uuid"
)

func GenerateRandomString(charset string, length int) string {
	if length <= 0 || len(charset) == 0 {
		return ""
	}

	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}

// GenerateUUID returns a random (v4) UUID string used as an analysis identifier.
func GenerateUUID() string {
	return uuid.NewString()
}
