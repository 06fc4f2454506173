package domain

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/VinothKuppanna/routemap-go/pkg/domain/definition"
)

type credentialsService struct {
	store  definition.SecretStore
	vault  definition.VaultClient // nil when the vault capability is absent
	logger *slog.Logger
}

func NewCredentialsService(store definition.SecretStore, vault definition.VaultClient, logger *slog.Logger) definition.CredentialsService {
	return &credentialsService{store: store, vault: vault, logger: logger}
}

// Resolve turns the chosen source into the API key. Exactly one store is
// consulted per run; the local keystore is never touched on the vault path.
func (s *credentialsService) Resolve(ctx context.Context, source definition.CredentialSource) (string, error) {
	switch src := source.(type) {
	case definition.RemoteVault:
		if s.vault == nil {
			return "", errors.Wrap(definition.ErrVaultUnavailable, "CredentialsService.Resolve")
		}
		record, err := s.vault.FetchRecord(ctx, src.UID)
		if err != nil {
			return "", err
		}
		secret := extractSecret(record)
		if secret == "" {
			return "", errors.Wrapf(definition.ErrCredentialNotFound, "CredentialsService.Resolve: record %s has no usable secret field", src.UID)
		}
		s.logger.Debug("credential resolved", slog.String("source", "vault"))
		return secret, nil
	case definition.LocalKeystore:
		secret, err := s.store.Get(src.Service, src.Username)
		if err != nil {
			return "", err
		}
		s.logger.Debug("credential resolved", slog.String("source", "keychain"))
		return secret, nil
	default:
		return "", errors.Wrap(definition.ErrMissingCredentialSource, "CredentialsService.Resolve")
	}
}

// extractSecret returns the first populated of: the password field, the
// notes, then any custom field declared as free text.
func extractSecret(record *definition.VaultRecord) string {
	if record.Password != "" {
		return record.Password
	}
	if record.Notes != "" {
		return record.Notes
	}
	for _, field := range record.Custom {
		if field.Type != "text" && field.Type != "multiline" {
			continue
		}
		if len(field.Values) > 0 && field.Values[0] != "" {
			return field.Values[0]
		}
	}
	return ""
}
