package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	mask "github.com/showa-93/go-mask"
)

var masker = newMasker()

func newMasker() *mask.Masker {
	m := mask.NewMasker()
	m.RegisterMaskStringFunc(mask.MaskTypeFilled, m.MaskFilledString)
	m.RegisterMaskStringFunc(mask.MaskTypeFixed, m.MaskFixedString)
	return m
}

// Secrets holds key material that must never live in a descriptor file.
// Keys maps a profile name to a hex encoded secp256k1 private key and is read
// from <PREFIX>_KEYS as "ropsten:c599...,other:ab12...".
type Secrets struct {
	Keys map[string]string `envconfig:"KEYS"`
}

func LoadSecrets(prefix string) (Secrets, error) {
	var s Secrets
	if err := envconfig.Process(prefix, &s); err != nil {
		return Secrets{}, errors.Wrap(err, "load secrets")
	}
	if s.Keys == nil {
		s.Keys = make(map[string]string)
	}
	return s, nil
}

func (s Secrets) String() string {
	masked := make(map[string]string, len(s.Keys))
	for name, key := range s.Keys {
		v, err := masker.String(mask.MaskTypeFixed, key)
		if err != nil {
			v = ""
		}
		masked[name] = v
	}
	return fmt.Sprintf("%v", masked)
}
