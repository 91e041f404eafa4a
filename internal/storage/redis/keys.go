package redis

import (
	"fmt"

	"github.com/rpsgame/rpsgame-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "rpsgame"

// sessionKey returns the Redis key for a Session
func sessionKey(code model.SessionCode) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, code)
}
