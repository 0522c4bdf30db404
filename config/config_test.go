package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/shaowei-cai-group/Local-MIP/config"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	return fs
}

func TestResolveUsesBuiltinDefaultsWithNoFileOrFlags(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse(nil))

	settings, err := config.Resolve(fs, nil)
	require.NoError(t, err)

	require.Equal(t, 10*time.Second, settings.Driver.TimeLimit)
	require.Equal(t, 1e-6, settings.Tolerances.Feas)
	require.True(t, settings.Preprocess.SplitEq)
}

func TestResolveAppliesParameterFileOverDefaults(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse(nil))

	file := strings.NewReader(`
# comment line
time_limit = 30s
smooth_prob 250
weight = monotone
`)
	settings, err := config.Resolve(fs, file)
	require.NoError(t, err)

	require.Equal(t, 30*time.Second, settings.Driver.TimeLimit)
	require.Equal(t, 0, settings.Driver.SmoothProb) // monotone forces smoothProb to 0
}

func TestResolveFlagsOverrideParameterFile(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--time_limit=5s"}))

	file := strings.NewReader("time_limit = 30s\n")
	settings, err := config.Resolve(fs, file)
	require.NoError(t, err)

	require.Equal(t, 5*time.Second, settings.Driver.TimeLimit)
}

func TestResolveRejectsUnknownParameterInFile(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse(nil))

	file := strings.NewReader("not_a_real_parameter = 1\n")
	_, err := config.Resolve(fs, file)
	require.ErrorIs(t, err, config.ErrInvalidParameter)
}

func TestResolveRejectsOutOfRangeParameterInFile(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse(nil))

	file := strings.NewReader("bound_strengthen = 9\n")
	_, err := config.Resolve(fs, file)
	require.ErrorIs(t, err, config.ErrInvalidParameter)
}

func TestResolveNormalizesEnumCasing(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--start=Best"}))

	settings, err := config.Resolve(fs, nil)
	require.NoError(t, err)
	require.NotNil(t, settings.Driver)
}

func TestResolveRejectsUnrecognisedEnumValue(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--restart=chaotic"}))

	_, err := config.Resolve(fs, nil)
	require.ErrorIs(t, err, config.ErrInvalidParameter)
}
