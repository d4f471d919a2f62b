package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func testSecrets() Secrets {
	return Secrets{Keys: map[string]string{Ropsten: testKey}}
}

func TestDefault_LocalProfile(t *testing.T) {
	cfg := Default(testSecrets())

	local, ok := cfg.Network(Local)
	require.True(t, ok)
	assert.Equal(t, "localhost", local.Host)
	assert.Equal(t, 8547, local.Port)
	assert.True(t, local.NetworkID.Wildcard())
	assert.Equal(t, "*", local.NetworkID.String())
	assert.Equal(t, uint64(1), local.GasPrice)
	assert.Equal(t, uint64(6712390), local.Gas)
	assert.Nil(t, local.Provider)
}

func TestDefault_RopstenProfile(t *testing.T) {
	cfg := Default(testSecrets())

	ropsten, ok := cfg.Network(Ropsten)
	require.True(t, ok)
	id, concrete := ropsten.NetworkID.ID()
	assert.True(t, concrete)
	assert.Equal(t, uint64(3), id)
	assert.Equal(t, uint64(10000000000), ropsten.GasPrice)
	assert.Equal(t, uint64(4712394), ropsten.Gas)
	require.NotNil(t, ropsten.Provider)
	assert.Equal(t, "https://ropsten.infura.io/", ropsten.Provider.Endpoint)
	assert.Equal(t, testKey, ropsten.Provider.PrivateKey)
	assert.False(t, ropsten.IsLocal())
}

func TestDefault_Compilers(t *testing.T) {
	cfg := Default(Secrets{})

	assert.Equal(t, Optimizer{Enabled: true, Runs: 200}, cfg.Solc.Optimizer)
	assert.Equal(t, "0.5.6", cfg.Compilers.Solc.Version)
	assert.False(t, cfg.Compilers.Solc.Docker)
	assert.Equal(t, Optimizer{Enabled: true, Runs: 400}, cfg.Compilers.Solc.Optimizer)
	assert.Equal(t, []string{Development, Local, Ropsten}, cfg.Names())
}

func TestDefault_Idempotent(t *testing.T) {
	assert.Equal(t, Default(testSecrets()), Default(testSecrets()))
	assert.Equal(t, Default(Secrets{}), Default(Secrets{}))
}

func TestDefault_OneShapePerProfile(t *testing.T) {
	cfg := Default(testSecrets())
	for _, name := range cfg.Names() {
		n, _ := cfg.Network(name)
		assert.True(t, n.IsLocal() != n.IsRemote(), name)
	}
	require.NoError(t, cfg.Validate())
}

func TestNetwork_ReturnsCopy(t *testing.T) {
	cfg := Default(testSecrets())

	n, ok := cfg.Network(Ropsten)
	require.True(t, ok)
	n.Provider.Endpoint = "https://changed.example/"
	n.Gas = 1

	again, _ := cfg.Network(Ropsten)
	assert.Equal(t, RopstenEndpoint, again.Provider.Endpoint)
	assert.Equal(t, uint64(RopstenGasLimit), again.Gas)

	_, ok = cfg.Network("mainnet")
	assert.False(t, ok)
}

func TestClone(t *testing.T) {
	cfg := Default(testSecrets())
	cp := cfg.Clone()
	require.Equal(t, cfg, cp)

	cp.Networks[Ropsten].Provider.Endpoint = "wss://other.example/"
	delete(cp.Networks, Local)
	assert.Equal(t, RopstenEndpoint, cfg.Networks[Ropsten].Provider.Endpoint)
	assert.Contains(t, cfg.Networks, Local)
}

func TestMarshal_NeverLeaksKey(t *testing.T) {
	data, err := json.Marshal(Default(testSecrets()))
	require.NoError(t, err)
	assert.NotContains(t, string(data), testKey)
	assert.Contains(t, string(data), `"network_id":"*"`)
	assert.Contains(t, string(data), `"network_id":3`)

	p := Provider{Endpoint: RopstenEndpoint, PrivateKey: testKey}
	assert.NotContains(t, p.String(), testKey)
	assert.Contains(t, p.String(), RopstenEndpoint)
}

func TestSolcSettings(t *testing.T) {
	s := SolcSettings{Version: "0.5.6", Optimizer: Optimizer{Enabled: true, Runs: 400}}
	assert.Equal(t, "", s.DockerImage())
	s.Docker = true
	assert.Equal(t, "ethereum/solc:0.5.6", s.DockerImage())

	assert.Equal(t, map[string]interface{}{
		"optimizer": map[string]interface{}{"enabled": true, "runs": 400},
	}, s.StandardJSONSettings())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const jsonDescriptor = `{
  "solc": {"optimizer": {"enabled": true, "runs": 200}},
  "networks": {
    "local": {"host": "localhost", "port": 8547, "network_id": "*", "gasPrice": 1, "gas": 6712390},
    "ropsten": {"provider": {"endpoint": "${ROPSTEN_RPC}"}, "network_id": 3, "gasPrice": 10000000000, "gas": 4712394}
  },
  "compilers": {"solc": {"version": "0.5.6", "docker": false, "optimizer": {"enabled": true, "runs": 400}}}
}`

const yamlDescriptor = `
solc:
  optimizer: {enabled: true, runs: 200}
networks:
  local: {host: localhost, port: 8547, network_id: "*", gasPrice: 1, gas: 6712390}
  ropsten:
    provider: {endpoint: "${ROPSTEN_RPC}"}
    network_id: 3
    gasPrice: 10000000000
    gas: 4712394
compilers:
  solc:
    version: 0.5.6
    docker: false
    optimizer: {enabled: true, runs: 400}
`

func TestLoadFile(t *testing.T) {
	t.Setenv("ROPSTEN_RPC", RopstenEndpoint)

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "json", file: "deploy.json", content: jsonDescriptor},
		{name: "yaml", file: "deploy.yaml", content: yamlDescriptor},
		{name: "yml", file: "deploy.yml", content: yamlDescriptor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFile(writeFile(t, tt.file, tt.content), testSecrets())
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())

			want := Default(testSecrets())
			delete(want.Networks, Development)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{
			name:    "inline json key",
			file:    "deploy.json",
			content: `{"networks": {"ropsten": {"provider": {"endpoint": "https://x.example/", "privateKey": "abcd"}, "network_id": 3}}}`,
			wantErr: ErrPlaintextKey,
		},
		{
			name:    "inline yaml key",
			file:    "deploy.yaml",
			content: "networks:\n  ropsten:\n    provider: {endpoint: 'https://x.example/', privateKey: abcd}\n    network_id: 3\n",
			wantErr: ErrPlaintextKey,
		},
		{
			name:    "bad network id",
			file:    "deploy.json",
			content: `{"networks": {"local": {"host": "localhost", "port": 1, "network_id": "any"}}}`,
			wantErr: ErrInvalidNetworkID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, tt.file, tt.content), Secrets{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestLoadFile_UnknownExtension(t *testing.T) {
	_, err := LoadFile(writeFile(t, "deploy.toml", "x = 1"), Secrets{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".toml")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"), Secrets{})
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestLoadFile_KeepsBareDollar(t *testing.T) {
	t.Setenv("ROPSTEN_RPC", "https://ropsten.example/v3")
	t.Setenv("abc", "expanded")

	path := writeFile(t, "deploy.json", `{
  "solc": {"optimizer": {"enabled": true, "runs": 200}},
  "networks": {
    "ropsten": {"provider": {"endpoint": "${ROPSTEN_RPC}?token=$abc&sig=$"}, "network_id": 3, "gasPrice": 1, "gas": 1}
  },
  "compilers": {"solc": {"version": "0.5.6", "optimizer": {"enabled": true, "runs": 400}}}
}`)
	cfg, err := LoadFile(path, Secrets{})
	require.NoError(t, err)

	n, ok := cfg.Network(Ropsten)
	require.True(t, ok)
	assert.Equal(t, "https://ropsten.example/v3?token=$abc&sig=$", n.Provider.Endpoint)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("DEPLOY_HOST", "node.example")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "braced", input: "http://${DEPLOY_HOST}:8545", want: "http://node.example:8545"},
		{name: "unset", input: "${DEPLOY_UNSET_VAR}", want: ""},
		{name: "bare", input: "$DEPLOY_HOST", want: "$DEPLOY_HOST"},
		{name: "unterminated", input: "${DEPLOY_HOST", want: "${DEPLOY_HOST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(expandEnv([]byte(tt.input))))
		})
	}
}
