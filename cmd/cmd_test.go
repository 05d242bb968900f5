package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rhr/internal/config"
	"github.com/abhisek/rhr/internal/games"
	"github.com/abhisek/rhr/internal/statecodec"
)

const wireEnvelope = `{"type":"wire-field","state":{"currentDirection":"out-of-page","radiusDirection":"right","px":160,"py":100}}`

// execute runs the root command with args and returns its stdout. Flag
// values are reset first since the command tree is package-level.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, env := range []string{config.EnvAddr, config.EnvLogLevel, config.EnvLogFormat, config.EnvLogFile, config.EnvPool, config.EnvSeed} {
		t.Setenv(env, "")
	}

	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		reset := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeState(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "", "list")
	require.NoError(t, err)
	for _, id := range games.IDs() {
		assert.Contains(t, out, id)
	}
}

func TestNewCommand(t *testing.T) {
	first, err := execute(t, "", "new", "dual-wire-fields", "--seed", "7")
	require.NoError(t, err)
	second, err := execute(t, "", "new", "dual-wire-fields", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed gives the same state")

	st, err := statecodec.Decode([]byte(first))
	require.NoError(t, err)
	assert.Equal(t, "dual-wire-fields", st.ProblemType())

	_, err = execute(t, "", "new", "nope")
	assert.ErrorIs(t, err, games.ErrUnknownGenerator)

	_, err = execute(t, "", "new", "wire-field", "--seed", "abc")
	assert.Error(t, err)
}

func TestAnswerCommand(t *testing.T) {
	path := writeState(t, wireEnvelope)

	tests := []struct {
		name    string
		stdin   string
		args    []string
		want    string
		wantErr bool
	}{
		{"from file", "", []string{"answer", "--state", path}, "(up)", false},
		{"from stdin", wireEnvelope, []string{"answer", "--state", "-"}, "(up)", false},
		{"correct choice", "", []string{"answer", "--state", path, "--choice", "up"}, "correct", false},
		{"wrong choice", "", []string{"answer", "--state", path, "--choice", "down"}, "incorrect", true},
		{"bad choice", "", []string{"answer", "--state", path, "--choice", "sideways"}, "", true},
		{"missing state flag", "", []string{"answer"}, "", true},
		{"bad envelope", "{", []string{"answer", "--state", "-"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestDiagramCommand(t *testing.T) {
	path := writeState(t, wireEnvelope)

	out, err := execute(t, "", "diagram", "--state", path)
	require.NoError(t, err)
	assert.Contains(t, out, "⊙")

	svgPath := filepath.Join(t.TempDir(), "out.svg")
	_, err = execute(t, "", "diagram", "--state", path, "--format", "svg", "-o", svgPath)
	require.NoError(t, err)
	svg, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(svg, []byte("<svg")))

	out, err = execute(t, "", "diagram", "--state", path, "--format", "png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\x89PNG"))

	out, err = execute(t, "", "diagram", "--state", path, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"width": 200`)

	_, err = execute(t, "", "diagram", "--state", path, "--format", "gif")
	assert.ErrorContains(t, err, "unknown format")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "rhr "+buildVersion()+"\n", out)
}

func TestResolveConfig(t *testing.T) {
	t.Setenv(config.EnvAddr, "0.0.0.0:9000")
	t.Setenv(config.EnvPool, "wire-field")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvLogFile, "")
	t.Setenv(config.EnvSeed, "")

	c := &cobra.Command{}
	c.Flags().AddFlagSet(rootCmd.PersistentFlags())
	require.NoError(t, c.Flags().Parse([]string{"--pool", "particle-launch", "--seed", "5"}))
	t.Cleanup(func() {
		for _, name := range []string{"pool", "seed"} {
			f := rootCmd.PersistentFlags().Lookup(name)
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})

	cfg, err := resolveConfig(c)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.ListenAddr, "env applies without a flag")
	assert.Equal(t, "particle-launch", cfg.Pool, "flag beats env")
	assert.True(t, cfg.HasSeed)
	assert.Equal(t, uint64(5), cfg.Seed)
}
