package data

import (
	"context"
	"os"

	ksm "github.com/keeper-security/secrets-manager-go/core"
	"github.com/pkg/errors"

	"github.com/VinothKuppanna/routemap-go/pkg/domain/definition"
)

type keeperVault struct {
	sm *ksm.SecretsManager
}

// NewKeeperVault opens a vault session from a local Keeper Secrets Manager
// config file. A missing or unreadable config means the vault capability
// is absent for this run; callers must not fall back to another source.
func NewKeeperVault(configPath string) (definition.VaultClient, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, errors.Wrapf(definition.ErrVaultUnavailable, "KeeperVault: config %s: %v", configPath, err)
	}
	sm := ksm.NewSecretsManager(&ksm.ClientOptions{
		Config: ksm.NewFileKeyValueStorage(configPath),
	})
	return &keeperVault{sm: sm}, nil
}

// FetchRecord logs in, syncs and pulls one record. The SDK performs the
// session handshake inside GetSecrets, so any failure there is treated as
// an authentication failure rather than a lookup miss.
func (v *keeperVault) FetchRecord(_ context.Context, uid string) (*definition.VaultRecord, error) {
	records, err := v.sm.GetSecrets([]string{uid})
	if err != nil {
		return nil, errors.Wrapf(definition.ErrAuthenticationFailed, "KeeperVault.FetchRecord: %v", err)
	}
	if len(records) == 0 {
		return nil, errors.Wrapf(definition.ErrCredentialNotFound, "KeeperVault.FetchRecord: record %s", uid)
	}
	return vaultRecordFromDict(records[0].RecordDict), nil
}

// vaultRecordFromDict picks the resolver-relevant parts out of the raw
// record payload: the primary password field, the notes, and every custom
// field with its declared type.
func vaultRecordFromDict(dict map[string]interface{}) *definition.VaultRecord {
	record := &definition.VaultRecord{}
	if notes, ok := dict["notes"].(string); ok {
		record.Notes = notes
	}
	for _, field := range fieldList(dict["fields"]) {
		if field.Type == "password" && len(field.Values) > 0 {
			record.Password = field.Values[0]
			break
		}
	}
	record.Custom = fieldList(dict["custom"])
	return record
}

func fieldList(raw interface{}) []definition.VaultField {
	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	var fields []definition.VaultField
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		field := definition.VaultField{}
		if t, ok := entry["type"].(string); ok {
			field.Type = t
		}
		if values, ok := entry["value"].([]interface{}); ok {
			for _, v := range values {
				if s, ok := v.(string); ok {
					field.Values = append(field.Values, s)
				}
			}
		}
		fields = append(fields, field)
	}
	return fields
}
