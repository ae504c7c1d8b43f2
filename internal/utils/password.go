package utils

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyPasswordHash is compared against when a login email is unknown, so both failed-login
// paths cost one bcrypt comparison at the stored cost.
func DummyPasswordHash() string {
	dummyHashOnce.Do(func() {
		b, err := bcrypt.GenerateFromPassword([]byte("jobportal-unknown-account"), bcrypt.DefaultCost)
		if err != nil {
			panic(err)
		}
		dummyHash = string(b)
	})
	return dummyHash
}
