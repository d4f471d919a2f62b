package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/ChainSafe/log15"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// Config is the deployment descriptor consumed by the contract toolchain.
// It is built once at startup and passed by pointer; nothing mutates it
// after Default or LoadFile return.
type Config struct {
	Solc      CompilerOptions    `json:"solc" yaml:"solc"`
	Networks  map[string]Network `json:"networks" yaml:"networks"`
	Compilers Compilers          `json:"compilers" yaml:"compilers"`
}

type Optimizer struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs"`
}

type CompilerOptions struct {
	Optimizer Optimizer `json:"optimizer" yaml:"optimizer"`
}

type Compilers struct {
	Solc SolcSettings `json:"solc" yaml:"solc"`
}

type SolcSettings struct {
	Version   string    `json:"version" yaml:"version"`
	Docker    bool      `json:"docker" yaml:"docker"`
	Optimizer Optimizer `json:"optimizer" yaml:"optimizer"`
}

// Network is a named deployment target. A local profile sets Host and Port,
// a remote-signed profile sets Provider.
type Network struct {
	Host      string    `json:"host,omitempty" yaml:"host,omitempty"`
	Port      int       `json:"port,omitempty" yaml:"port,omitempty"`
	Provider  *Provider `json:"provider,omitempty" yaml:"provider,omitempty"`
	NetworkID NetworkID `json:"network_id" yaml:"network_id"`
	GasPrice  uint64    `json:"gasPrice" yaml:"gasPrice"`
	Gas       uint64    `json:"gas" yaml:"gas"`
}

// Provider is a credentialed connection: an RPC endpoint and the key used to
// sign outgoing transactions. The key only ever comes from Secrets.
type Provider struct {
	Endpoint   string `json:"endpoint" yaml:"endpoint"`
	PrivateKey string `json:"-" yaml:"-" mask:"fixed"`
}

func (n Network) IsLocal() bool {
	return n.Host != "" || n.Port != 0
}

func (n Network) IsRemote() bool {
	return n.Provider != nil
}

func (n Network) clone() Network {
	if n.Provider != nil {
		p := *n.Provider
		n.Provider = &p
	}
	return n
}

func (p *Provider) UnmarshalJSON(data []byte) error {
	var raw struct {
		Endpoint   string `json:"endpoint"`
		PrivateKey string `json:"privateKey"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.PrivateKey != "" {
		return ErrPlaintextKey
	}
	p.Endpoint = raw.Endpoint
	return nil
}

func (p *Provider) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Endpoint   string `yaml:"endpoint"`
		PrivateKey string `yaml:"privateKey"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.PrivateKey != "" {
		return ErrPlaintextKey
	}
	p.Endpoint = raw.Endpoint
	return nil
}

// providerView drops the Stringer so masked values print field by field
type providerView Provider

func (p Provider) String() string {
	masked, _ := masker.Mask(providerView(p))
	return fmt.Sprintf("%+v", masked)
}

// DockerImage returns the solc image to compile with, or "" when the native
// compiler is used.
func (s SolcSettings) DockerImage() string {
	if !s.Docker {
		return ""
	}
	return fmt.Sprintf("%s:%s", SolcImage, s.Version)
}

// StandardJSONSettings returns the "settings" fragment of a solc
// --standard-json input for these compiler settings.
func (s SolcSettings) StandardJSONSettings() map[string]interface{} {
	return map[string]interface{}{
		"optimizer": map[string]interface{}{
			"enabled": s.Optimizer.Enabled,
			"runs":    s.Optimizer.Runs,
		},
	}
}

// Default returns the built-in descriptor. Key material for remote profiles
// is taken from secrets.
func Default(secrets Secrets) *Config {
	c := &Config{
		Solc: CompilerOptions{
			Optimizer: Optimizer{Enabled: true, Runs: DefaultOptimizerRuns},
		},
		Networks: map[string]Network{
			Development: {
				Host:      DefaultHost,
				Port:      9545,
				NetworkID: NewNetworkID(4447),
				GasPrice:  LocalGasPrice,
				Gas:       DevelopmentGasLimit,
			},
			Local: {
				Host:      DefaultHost,
				Port:      8547,
				NetworkID: AnyNetwork(),
				GasPrice:  LocalGasPrice,
				Gas:       LocalGasLimit,
			},
			Ropsten: {
				Provider:  &Provider{Endpoint: RopstenEndpoint},
				NetworkID: NewNetworkID(3),
				GasPrice:  RopstenGasPrice,
				Gas:       RopstenGasLimit,
			},
		},
		Compilers: Compilers{
			Solc: SolcSettings{
				Version:   SolcVersion,
				Docker:    false,
				Optimizer: Optimizer{Enabled: true, Runs: SolcOptimizerRuns},
			},
		},
	}
	c.attach(secrets)
	return c
}

// envRef matches ${VAR}; a bare $ is left alone
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

func expandEnv(data []byte) []byte {
	return envRef.ReplaceAllFunc(data, func(ref []byte) []byte {
		return []byte(os.Getenv(string(envRef.FindSubmatch(ref)[1])))
	})
}

// LoadFile reads a JSON or YAML descriptor. ${VAR} references in the file
// are expanded before decoding.
func LoadFile(file string, secrets Secrets) (*Config, error) {
	fp, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}

	log15.Debug("Loading configuration", "path", filepath.Clean(fp))

	data, err := os.ReadFile(filepath.Clean(fp))
	if err != nil {
		return nil, err
	}
	data = expandEnv(data)

	var c Config
	switch ext := filepath.Ext(file); ext {
	case ".json":
		if err = json.NewDecoder(bytes.NewReader(data)).Decode(&c); err != nil {
			return nil, errors.Wrapf(err, "decode %s", file)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &c); err != nil {
			return nil, errors.Wrapf(err, "decode %s", file)
		}
	default:
		return nil, fmt.Errorf("unrecognized extention: %s", ext)
	}
	if c.Networks == nil {
		c.Networks = make(map[string]Network)
	}
	c.attach(secrets)
	return &c, nil
}

// GetConfig loads the descriptor selected on the command line, falling back
// to the built-in one, and validates it.
func GetConfig(ctx *cli.Context) (*Config, error) {
	secrets, err := LoadSecrets(DefaultEnvPrefix)
	if err != nil {
		return nil, err
	}
	log15.Debug("Loaded secrets", "secrets", secrets)

	var fig *Config
	if file := ctx.String(FileFlag.Name); file != "" {
		fig, err = LoadFile(file, secrets)
		if err != nil {
			log15.Warn("err loading config file", "err", err.Error())
			return nil, err
		}
		log15.Debug("Loaded config", "path", file)
	} else {
		fig = Default(secrets)
		log15.Debug("Using built-in config")
	}

	if err = fig.Validate(); err != nil {
		return nil, err
	}
	return fig, nil
}

func (c *Config) attach(secrets Secrets) {
	for name, n := range c.Networks {
		if n.Provider == nil {
			continue
		}
		if key, ok := secrets.Keys[name]; ok {
			n.Provider.PrivateKey = key
			c.Networks[name] = n
		}
	}
}

// Names returns the profile names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Network returns a copy of the named profile.
func (c *Config) Network(name string) (Network, bool) {
	n, ok := c.Networks[name]
	if !ok {
		return Network{}, false
	}
	return n.clone(), true
}

func (c *Config) Clone() *Config {
	cp := *c
	cp.Networks = make(map[string]Network, len(c.Networks))
	for name, n := range c.Networks {
		cp.Networks[name] = n.clone()
	}
	return &cp
}
