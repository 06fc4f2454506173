package data

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinothKuppanna/routemap-go/pkg/domain/definition"
)

func TestNewKeeperVault_MissingConfig(t *testing.T) {
	_, err := NewKeeperVault(filepath.Join(t.TempDir(), "absent.json"))

	require.ErrorIs(t, err, definition.ErrVaultUnavailable)
}

func TestVaultRecordFromDict(t *testing.T) {
	tests := []struct {
		name string
		dict map[string]interface{}
		want definition.VaultRecord
	}{
		{
			name: "full record",
			dict: map[string]interface{}{
				"notes": "note-secret",
				"fields": []interface{}{
					map[string]interface{}{"type": "login", "value": []interface{}{"jane"}},
					map[string]interface{}{"type": "password", "value": []interface{}{"pw-secret"}},
				},
				"custom": []interface{}{
					map[string]interface{}{"type": "url", "value": []interface{}{"https://example.com"}},
					map[string]interface{}{"type": "text", "value": []interface{}{"custom-secret"}},
				},
			},
			want: definition.VaultRecord{
				Password: "pw-secret",
				Notes:    "note-secret",
				Custom: []definition.VaultField{
					{Type: "url", Values: []string{"https://example.com"}},
					{Type: "text", Values: []string{"custom-secret"}},
				},
			},
		},
		{
			name: "no password field",
			dict: map[string]interface{}{
				"notes": "note-secret",
				"fields": []interface{}{
					map[string]interface{}{"type": "login", "value": []interface{}{"jane"}},
				},
			},
			want: definition.VaultRecord{Notes: "note-secret"},
		},
		{
			name: "empty dict",
			dict: map[string]interface{}{},
			want: definition.VaultRecord{},
		},
		{
			name: "malformed field entries are skipped",
			dict: map[string]interface{}{
				"fields": []interface{}{"not-a-map", map[string]interface{}{"type": "password"}},
			},
			want: definition.VaultRecord{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vaultRecordFromDict(tt.dict)
			assert.Equal(t, tt.want.Password, got.Password)
			assert.Equal(t, tt.want.Notes, got.Notes)
			assert.Equal(t, tt.want.Custom, got.Custom)
		})
	}
}
