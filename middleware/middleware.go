package middleware

import (
	"crypto/rand"

	"github.com/gorilla/securecookie"
)

type Middleware struct {
	csrfKey      []byte
	secureCookie *securecookie.SecureCookie
}

func NewMiddleware() *Middleware {
	csrfKey := randomKey(32)

	return &Middleware{
		csrfKey:      csrfKey,
		secureCookie: securecookie.New(randomKey(64), randomKey(32)),
	}
}

func randomKey(length int) []byte {
	key := make([]byte, length)
	n, err := rand.Read(key)
	if err != nil {
		panic(err)
	}
	if n != length {
		panic("unable to read enough random bytes for key")
	}
	return key
}
