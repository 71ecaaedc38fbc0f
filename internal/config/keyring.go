package config

import (
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

const (
	// ServiceName is the name used for keyring storage
	ServiceName = "gitlab-snippet"
)

// SetToken stores a private token in the system keyring, keyed by host
func SetToken(host, token string) error {
	return keyring.Set(ServiceName, host, token)
}

// GetToken retrieves a private token from the system keyring
func GetToken(host string) (string, error) {
	token, err := keyring.Get(ServiceName, host)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", fmt.Errorf("no token stored for %s", host)
		}
		return "", fmt.Errorf("could not retrieve token: %w", err)
	}
	return token, nil
}

// DeleteToken removes a private token from the system keyring
func DeleteToken(host string) error {
	err := keyring.Delete(ServiceName, host)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("could not delete token: %w", err)
	}
	return nil
}

// HasToken checks if a token exists in the keyring for a host
func HasToken(host string) bool {
	_, err := GetToken(host)
	return err == nil
}

// TokenFromEnvOrKeyring returns a token and its source, checking the
// environment before the keyring
func TokenFromEnvOrKeyring(host string) (string, string, error) {
	if token := os.Getenv(EnvToken); token != "" {
		return token, "environment", nil
	}

	token, err := GetToken(host)
	if err != nil {
		return "", "", err
	}

	return token, "keyring", nil
}
