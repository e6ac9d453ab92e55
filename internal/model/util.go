package model

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/google/uuid"
)

// CreateToken generates an opaque session token. The token carries no
// structure or expiry; it only has to be unique per login.
func CreateToken() string {
	uuid, _ := uuid.NewRandom()
	return base58.Encode(uuid[:])
}
