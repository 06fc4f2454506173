package definition

import "context"

// CredentialSource is the single secret source chosen for a run. It is
// resolved once from command-line input; the pipeline never re-derives it.
type CredentialSource interface {
	credentialSource()
}

// LocalKeystore identifies an entry in the operating system credential
// store by (username, service) pair.
type LocalKeystore struct {
	Username string
	Service  string
}

func (LocalKeystore) credentialSource() {}

// RemoteVault identifies a record in the Keeper vault by its UID.
type RemoteVault struct {
	UID string
}

func (RemoteVault) credentialSource() {}

// SourceFromFlags validates the credential flags into a single source.
// A vault UID takes precedence over the local pair: when both are given
// the keystore arguments are ignored. This is a policy choice, kept so
// that scripted vault runs are not derailed by stale local flags.
func SourceFromFlags(username, service, keeperUID string) (CredentialSource, error) {
	if keeperUID != "" {
		return RemoteVault{UID: keeperUID}, nil
	}
	if username != "" && service != "" {
		return LocalKeystore{Username: username, Service: service}, nil
	}
	return nil, ErrMissingCredentialSource
}

type CredentialsService interface {
	Resolve(ctx context.Context, source CredentialSource) (string, error)
}

// SecretStore is the local operating system credential store.
type SecretStore interface {
	Get(service, username string) (string, error)
}

type VaultField struct {
	Type   string
	Values []string
}

// VaultRecord is the slice of a vault record the resolver cares about.
type VaultRecord struct {
	Password string
	Notes    string
	Custom   []VaultField
}

type VaultClient interface {
	FetchRecord(ctx context.Context, uid string) (*VaultRecord, error)
}
