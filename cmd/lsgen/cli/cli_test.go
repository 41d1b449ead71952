//go:build !wasm

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `<View><Image name="img" value="$image"/><Choices name="sentiment" toName="img"><Choice value="Positive"/><Choice value="Negative"/></Choices></View>`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand("1.2.3")
	assert.Equal(t, "lsgen", cmd.Use)
	assert.Equal(t, "1.2.3", cmd.Version)

	for _, name := range []string{"fetch", "generate", "format", "validate", "tags"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
	for _, flag := range []string{"config", "verbose", "json"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestFormatCommand(t *testing.T) {
	out, err := run(t, sampleConfig, "format", "--indent", "2", "-")
	require.NoError(t, err)

	want := `<View>
  <Image name="img" value="$image"/>
  <Choices name="sentiment" toName="img">
    <Choice value="Positive"/>
    <Choice value="Negative"/>
  </Choices>
</View>
`
	assert.Equal(t, want, out)
}

func TestFormatCommandWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<View><Header value="Hi"/></View>`), 0644))

	_, err := run(t, "", "format", "-w", path)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<View>\n    <Header value=\"Hi\"/>\n</View>\n", string(got))
}

func TestFormatCommandMalformed(t *testing.T) {
	_, err := run(t, "<View>", "format", "-")
	assert.ErrorContains(t, err, "error parsing XML")
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, sampleConfig, "validate", "-")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	bad := strings.Replace(sampleConfig, `toName="img"`, `toName="missing"`, 1)
	_, err = run(t, bad, "validate", "-")
	assert.ErrorContains(t, err, "unknown toName target")
}

func TestTagsCommand(t *testing.T) {
	out, err := run(t, "", "tags", "--category", "object")
	require.NoError(t, err)
	assert.Contains(t, out, "Image")
	assert.Contains(t, out, "object")
	assert.NotContains(t, out, "Choices")

	out, err = run(t, "", "tags", "Rating")
	require.NoError(t, err)
	assert.Contains(t, out, "maxRating")
	assert.Contains(t, out, "star")

	_, err = run(t, "", "tags", "Nope")
	assert.ErrorContains(t, err, "unknown tag")

	_, err = run(t, "", "tags", "--category", "widgets")
	assert.ErrorContains(t, err, "unknown category")
}
