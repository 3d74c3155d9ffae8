package utils

import (
	"errors"

	"github.com/matthewhartstonge/argon2"
)

// HashAdminKey produces the encoded argon2 hash stored in ADMIN_KEY_HASH.
func HashAdminKey(key string) (string, error) {
	if key == "" {
		return "", errors.New("admin key is empty")
	}
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(key))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func VerifyAdminKey(encodedHash, key string) (bool, error) {
	if encodedHash == "" || key == "" {
		return false, nil
	}
	return argon2.VerifyEncoded([]byte(key), []byte(encodedHash))
}
