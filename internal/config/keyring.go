package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "workbrief"
	keyringUser    = "llm-api-key"
)

var (
	// ErrKeyNotFound is returned when no API key is stored.
	ErrKeyNotFound = errors.New("api key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring cannot be used.
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// KeyStore persists the LLM API key outside the config file.
type KeyStore interface {
	Get() (string, error)
	Set(key string) error
	Delete() error
}

// OSKeyring stores the key in the operating system's credential store.
type OSKeyring struct{}

func (OSKeyring) Get() (string, error) {
	key, err := keyring.Get(keyringService, keyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return key, nil
}

func (OSKeyring) Set(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("api key cannot be empty")
	}
	if err := keyring.Set(keyringService, keyringUser, key); err != nil {
		return fmt.Errorf("storing api key in keyring: %w", err)
	}
	return nil
}

func (OSKeyring) Delete() error {
	if err := keyring.Delete(keyringService, keyringUser); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrKeyNotFound
		}
		return fmt.Errorf("deleting api key from keyring: %w", err)
	}
	return nil
}
