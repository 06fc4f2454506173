package data

import (
	"github.com/VinothKuppanna/routemap-go/pkg/domain/definition"
	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
)

type keychainStore struct{}

// NewKeychainStore returns the operating system credential store
// (Keychain on macOS, Secret Service on Linux, Credential Manager on
// Windows).
func NewKeychainStore() definition.SecretStore {
	return &keychainStore{}
}

func (keychainStore) Get(service, username string) (string, error) {
	secret, err := keyring.Get(service, username)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", errors.Wrapf(definition.ErrCredentialNotFound, "KeychainStore.Get: no entry for user %q in service %q", username, service)
		}
		return "", errors.Wrap(err, "KeychainStore.Get")
	}
	return secret, nil
}
