package config

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const wildcard = "*"

// NetworkID is the network_id of a profile: a concrete chain id or the
// wildcard "*" that accepts any chain.
type NetworkID struct {
	id  uint64
	any bool
}

func AnyNetwork() NetworkID {
	return NetworkID{any: true}
}

func NewNetworkID(id uint64) NetworkID {
	return NetworkID{id: id}
}

func (n NetworkID) Wildcard() bool {
	return n.any
}

// ID returns the concrete chain id. ok is false for the wildcard.
func (n NetworkID) ID() (id uint64, ok bool) {
	return n.id, !n.any
}

// Matches reports whether a node reporting chainID satisfies this profile.
func (n NetworkID) Matches(chainID uint64) bool {
	return n.any || n.id == chainID
}

func (n NetworkID) String() string {
	if n.any {
		return wildcard
	}
	return strconv.FormatUint(n.id, 10)
}

func (n NetworkID) MarshalJSON() ([]byte, error) {
	if n.any {
		return json.Marshal(wildcard)
	}
	return json.Marshal(n.id)
}

func (n *NetworkID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return n.parse(s)
	}
	var id uint64
	if err := json.Unmarshal(data, &id); err != nil {
		return errors.Wrapf(ErrInvalidNetworkID, "%s", string(data))
	}
	*n = NewNetworkID(id)
	return nil
}

func (n NetworkID) MarshalYAML() (interface{}, error) {
	if n.any {
		return wildcard, nil
	}
	return n.id, nil
}

func (n *NetworkID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Wrapf(ErrInvalidNetworkID, "line %d", value.Line)
	}
	return n.parse(value.Value)
}

func (n *NetworkID) parse(s string) error {
	if s == wildcard {
		*n = AnyNetwork()
		return nil
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return errors.Wrapf(ErrInvalidNetworkID, "%q", s)
	}
	*n = NewNetworkID(id)
	return nil
}
