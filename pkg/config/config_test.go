package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	// Default config
	defaults, err := Process([]string{})
	require.NoError(t, err)
	require.Equal(t, 1233, defaults.Server.Ingress.Web.Port)

	dir := t.TempDir()

	// yaml config
	{
		yaml := filepath.Join(dir, "config.yaml")
		err = os.WriteFile(yaml, []byte(`
server:
  ingress:
    web:
      port: 1234
`), 0644)
		require.NoError(t, err)
		config, err := Process([]string{yaml})
		require.NoError(t, err)
		require.Equal(t, 1234, config.Server.Ingress.Web.Port)
		// Settings absent from the file come from the defaults
		require.Equal(t, defaults.Server.Field.Width, config.Server.Field.Width)
	}

	// json config
	{
		json := filepath.Join(dir, "config.json")
		err = os.WriteFile(json, []byte(`{
  "server": {
    "ingress": {
      "web": {
        "port": 1235
      }
    }
  }
}`), 0644)
		require.NoError(t, err)
		config, err := Process([]string{json})
		require.NoError(t, err)
		require.Equal(t, 1235, config.Server.Ingress.Web.Port)
	}

	// later files override earlier ones
	{
		yaml1 := filepath.Join(dir, "config1.yaml")
		err = os.WriteFile(yaml1, []byte(`
server:
  coin:
    value: 25
`), 0644)
		require.NoError(t, err)

		yaml2 := filepath.Join(dir, "config2.yaml")
		err = os.WriteFile(yaml2, []byte(`
server:
  coin:
    value: 50
`), 0644)
		require.NoError(t, err)

		config, err := Process([]string{yaml1, yaml2})
		require.NoError(t, err)
		require.Equal(t, int32(50), config.Server.Coin.Value)
	}

	// unknown extension
	{
		toml := filepath.Join(dir, "config.toml")
		err = os.WriteFile(toml, []byte(`port = 1234`), 0644)
		require.NoError(t, err)
		_, err = Process([]string{toml})
		require.Error(t, err)
	}
}

func TestValidate(t *testing.T) {
	broken := []string{
		`
server:
  field:
    width: 0
`,
		`
server:
  coin:
    footprint: 600
`,
		`
server:
  coin:
    sprites: 0
`,
		`
server:
  coin:
    value: 0
`,
		`
server:
  ingress:
    web:
      port: 0
`,
	}

	dir := t.TempDir()
	for i, body := range broken {
		path := filepath.Join(dir, "broken.yaml")
		err := os.WriteFile(path, []byte(body), 0644)
		require.NoError(t, err)
		_, err = Process([]string{path})
		require.Error(t, err, "case %d should fail validation", i)
	}
}
