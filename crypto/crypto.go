// SPDX-License-Identifier: GPL-3.0-only

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"

	"greetme-server/commons"

	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = 12

func NewCrypto() *Crypto {
	cost := defaultBcryptCost
	if v := commons.GetEnv("BCRYPT_COST", strconv.Itoa(defaultBcryptCost)); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cost = i
		}
	}
	return &Crypto{
		BcryptCost: cost,
	}
}

func (c *Crypto) HashPassword(password string) (string, error) {
	commons.Logger.Debug("Hashing password")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.BcryptCost)
	if err != nil {
		return "", err
	}
	commons.Logger.Debug("Password hashed")
	return string(hash), nil
}

func (c *Crypto) VerifyPassword(password, encodedHash string) error {
	commons.Logger.Debug("Verifying password")
	if err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)); err != nil {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

func GenerateRandomString(prefix string, length int, encoding string) (string, error) {
	supported_encodings := []string{"hex", "base64"}

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	switch encoding {
	case "hex":
		return prefix + hex.EncodeToString(b), nil
	case "base64":
		return prefix + base64.StdEncoding.EncodeToString(b), nil
	default:
		return "", fmt.Errorf("unsupported encoding: %s, Supported encodings are: %s", encoding, supported_encodings)
	}
}

// GenerateVerificationToken returns a single-use 32-byte hex token used to
// prove email ownership.
func GenerateVerificationToken() (string, error) {
	return GenerateRandomString("", 32, "hex")
}
