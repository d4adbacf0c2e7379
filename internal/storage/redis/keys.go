package redis

import (
	"fmt"

	"github.com/mcoot/banker/internal/model"
)

// Key prefix for all banker data
const keyPrefix = "banker"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionIndexKey returns the Redis key for the SET of known session IDs
func sessionIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions", keyPrefix)
}

// tileLogKey returns the Redis key for the tile log LIST
func tileLogKey() string {
	return fmt.Sprintf("%s:tiles", keyPrefix)
}
