package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/dynserde/configuration"
	"github.com/iotaledger/dynserde/de"
	"github.com/iotaledger/dynserde/logger"
	"github.com/iotaledger/dynserde/value"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFetchFlagset(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.String("A", "123", "test")
	testFlagSet.Int8("small", 1, "test")
	testFlagSet.IntSlice("ports", []int{1, 2}, "test")
	require.NoError(t, testFlagSet.Set("A", "321"))

	config := configuration.New()
	require.NoError(t, config.LoadFlagSet(testFlagSet))

	assert.Equal(t, "321", config.String("A"))
	assert.Equal(t, 1, config.Int("small"))
	assert.Equal(t, []interface{}{int64(1), int64(2)}, config.Get("ports"))
}

// switchValue is a flag value that claims the bool type but accepts words pflag cannot parse.
type switchValue string

func (s *switchValue) String() string { return string(*s) }
func (s *switchValue) Type() string   { return "bool" }

func (s *switchValue) Set(v string) error {
	*s = switchValue(v)

	return nil
}

func TestFetchFlagsetTypedValues(t *testing.T) {
	mode := switchValue("off")

	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.Float32("ratio", 0.5, "test")
	testFlagSet.Bool("verbose", false, "test")
	testFlagSet.Var(&mode, "mode", "test")
	require.NoError(t, testFlagSet.Set("verbose", "true"))
	require.NoError(t, testFlagSet.Set("mode", "auto"))

	config := configuration.New()
	require.NoError(t, config.LoadFlagSet(testFlagSet))

	assert.InDelta(t, 0.5, config.Float64("ratio"), 0)
	assert.True(t, config.Bool("verbose"))
	assert.Equal(t, "auto", config.Get("mode"))
}

func TestFetchEnvVars(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.String("B", "322", "test")

	t.Setenv("TEST_B", "321")
	t.Setenv("TEST_C", "321")

	config := configuration.New()
	require.NoError(t, config.LoadFlagSet(testFlagSet))
	require.NoError(t, config.LoadEnvironmentVars("TEST"))

	assert.Equal(t, "321", config.String("B"))

	_, exists := config.All()["c"]
	assert.False(t, exists, "expected read config value to not exist")
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json", "config.json", `{"Node": {"Alias": "a", "Port": 15600, "Peers": ["x", "y"], "TLS": {"Enabled": true}}}`},
		{"yaml", "config.yaml", "Node:\n  Alias: a\n  Port: 15600\n  Peers: [\"x\", \"y\"]\n  TLS:\n    Enabled: true\n"},
		{"toml", "config.toml", "[Node]\nAlias = \"a\"\nPort = 15600\nPeers = [\"x\", \"y\"]\n\n[Node.TLS]\nEnabled = true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := configuration.New()
			require.NoError(t, config.LoadFile(writeFile(t, tt.file, tt.content)))

			assert.Equal(t, "a", config.String("node.alias"))
			assert.Equal(t, 15600, config.Int("node.port"))
			assert.Equal(t, []string{"x", "y"}, config.Strings("node.peers"))
			assert.True(t, config.Bool("node.tls.enabled"))
			assert.True(t, config.Exists("Node.TLS.Enabled"))

			_, exists := config.All()["Node.Alias"]
			assert.False(t, exists, "keys should be lower cased")
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	config := configuration.New()

	err := config.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, configuration.ErrConfigDoesNotExist)

	err = config.LoadFile(writeFile(t, "config.ini", "a=1"))
	assert.ErrorIs(t, err, configuration.ErrUnknownConfigFormat)

	err = config.LoadFile(writeFile(t, "config.json", `[1, 2]`))
	assert.ErrorIs(t, err, configuration.ErrInvalidRoot)

	err = config.LoadFile(writeFile(t, "broken.json", `{"a": }`))
	assert.Error(t, err)
}

func TestMergeParameters(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.Int("F", 321, "test")
	testFlagSet.Int("E", 1, "test")

	t.Setenv("TEST_F", "322")

	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.json", `{"E": 321}`)))
	require.NoError(t, config.LoadFlagSet(testFlagSet))
	require.NoError(t, config.LoadEnvironmentVars("TEST"))

	all := config.All()
	for _, key := range []string{"e", "f"} {
		_, exists := all[key]
		assert.True(t, exists, "expected %s to exist", key)
	}
	for _, key := range []string{"E", "F", "g"} {
		_, exists := all[key]
		assert.False(t, exists, "expected %s to not exist", key)
	}

	// the file wins over the flag default
	assert.Equal(t, 321, config.Int("E"))
	assert.Equal(t, "322", config.String("F"))
	assert.Equal(t, 322, config.Int("F"))
}

func TestStoreFile(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.yaml", "b:\n  secret: s\n  kept: 1\na: [true]\n")))

	for _, name := range []string{"out.json", "out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, config.StoreFile(path, "B.Secret"))

			stored := configuration.New()
			require.NoError(t, stored.LoadFile(path))
			assert.False(t, stored.Exists("b.secret"))
			assert.Equal(t, 1, stored.Int("b.kept"))
			assert.True(t, stored.Exists("a"))
		})
	}
}

func TestStoreJSONIsSorted(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.yaml", "z: 1\nm: x\na: [1, 2]\n")))

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, config.StoreFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2],"m":"x","z":1}`, string(data))
}

func TestValueAndDecode(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.json", `{"node": {"peers": ["x", "y"], "port": 1}}`)))

	v, err := config.Value("Node")
	require.NoError(t, err)
	assert.Equal(t, []string{"peers", "port"}, v.Keys())

	// settings hold numbers the way encoding/json decodes them
	port, ok := v.Lookup("port")
	require.True(t, ok)
	assert.True(t, value.Equal(value.Float(1), port))

	peers, err := configuration.Decode(config, "node.peers", de.SliceOf(de.String()))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, peers)

	_, err = config.Value("node.missing")
	assert.ErrorIs(t, err, configuration.ErrConfigDoesNotExist)

	_, err = configuration.Decode(config, "node.port", de.String())
	assert.Error(t, err)
}

func TestLoggerFromConfiguration(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.json",
		`{"logger": {"level": "warn", "disableCaller": true, "outputPaths": ["stderr"]}}`)))

	cfg := logger.ConfigFromSource(config)
	assert.Equal(t, "warn", cfg.Level)
	assert.True(t, cfg.DisableCaller)
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
	assert.Equal(t, logger.DefaultCfg.Encoding, cfg.Encoding)

	root, err := logger.NewRootLoggerFromConfiguration(config)
	require.NoError(t, err)
	assert.NotNil(t, root)
}
