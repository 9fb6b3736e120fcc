package redis

// Key prefix for all game-related data
const keyPrefix = "geofinder"

// historyKey returns the Redis key for the completed-game list
func historyKey() string {
	return keyPrefix + ":history"
}
