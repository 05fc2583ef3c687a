package pkg

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateGameID - returns a short random identifier for a game session.
func GenerateGameID() string {
	return randomID()
}

// GeneratePlayerID - returns a short random identifier for a player.
func GeneratePlayerID() string {
	return randomID()
}

func randomID() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken anyway
		panic(err)
	}

	return hex.EncodeToString(buf)
}
