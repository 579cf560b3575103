package genesis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/axiom-labs-org/core/pkg/state"
	"github.com/axiom-labs-org/core/pkg/types"
)

// Manifest is the YAML genesis definition seeding initial state.
type Manifest struct {
	// ChainName is informational only.
	ChainName string `yaml:"chainName,omitempty"`

	// Accounts to fund at genesis.
	Accounts []Account `yaml:"accounts"`
}

// Account funds one address with an initial balance.
type Account struct {
	// Address is the hex-encoded 32-byte account address.
	Address string `yaml:"address"`

	// Balance is the initial balance, in fee units.
	Balance uint64 `yaml:"balance"`
}

// Load reads and parses a genesis manifest from a YAML file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read genesis file: %w", err)
	}
	return Parse(data)
}

// Parse parses a genesis manifest from YAML bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse genesis YAML: %w", err)
	}

	seen := make(map[string]bool, len(m.Accounts))
	for i, account := range m.Accounts {
		if _, err := types.AddressFromHex(account.Address); err != nil {
			return nil, fmt.Errorf("account %d: %w", i, err)
		}
		if seen[account.Address] {
			return nil, fmt.Errorf("account %d: duplicate address %s", i, account.Address)
		}
		seen[account.Address] = true
	}

	return &m, nil
}

// Apply seeds a store with the manifest's balance objects. Seeding order
// does not affect the resulting state root.
func (m *Manifest) Apply(store *state.Store) error {
	for _, account := range m.Accounts {
		addr, err := types.AddressFromHex(account.Address)
		if err != nil {
			return err
		}

		obj := state.NewStateObject(
			state.BalanceObjectID(addr),
			addr,
			state.EncodeBalance(account.Balance),
		)
		if err := store.Insert(obj); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", addr.Short(), err)
		}
	}
	return nil
}
