package session

import (
	"fmt"
	"strings"
)

// NewStore picks a session backend from the configured location: redis
// URLs get the redis store, anything else is treated as a file path.
func NewStore(location string) (Store, error) {
	if location == "" {
		return nil, fmt.Errorf("session location is not specified")
	}

	if strings.HasPrefix(location, "redis://") || strings.HasPrefix(location, "rediss://") {
		return NewRedisStore(location)
	}

	return NewFileStore(location)
}
