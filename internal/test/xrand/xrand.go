package xrand

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

// Bytes generates random bytes with length n.
func Bytes(n int) []byte {
	b := make([]byte, n)
	_, err := rand.Reader.Read(b)
	if err != nil {
		panic(fmt.Sprintf("failed to generate rand bytes: %v", err))
	}
	return b
}

// Base64 generates n random bytes and returns them base64 encoded,
// shaped like a client Sec-WebSocket-Key.
func Base64(n int) string {
	return base64.StdEncoding.EncodeToString(Bytes(n))
}

// Int returns a randomly generated integer between [0, max).
func Int(max int) int {
	x, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(fmt.Sprintf("failed to get random int: %v", err))
	}
	return int(x.Int64())
}
