package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/invertedv/housing"
	"github.com/invertedv/housing/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Nil(t, c.Validate())

	opts, e := c.Options()
	require.Nil(t, e)
	assert.Equal(t, housing.PolicyStructure, opts.Policy)
	assert.Equal(t, ',', opts.Sep)
	assert.False(t, opts.ZeroAssessment)
	assert.Equal(t, store.Lite, c.Conn().Dialect)
	assert.Equal(t, 1, c.Database.BufferMB)
}

func TestLoad(t *testing.T) {
	c, e := Load(filepath.Join("testdata", "housing.yaml"))
	require.Nil(t, e)

	assert.Equal(t, "data/census.csv", c.Pipeline().Census)
	assert.Equal(t, 450000.0, c.Threshold)
	assert.Equal(t, filepath.Join("out", "calgary_housing_cleaned.csv"), c.OutputPath(c.Output.CSV))
	assert.Equal(t, "public.calgary_housing", c.Database.Table)
	assert.Equal(t, 4, c.Database.BufferMB)
	assert.Equal(t, "%.4f", c.Output.FloatFormat)
	assert.Len(t, c.CSVOptions(), 1)
	assert.Nil(t, c.Validate())

	opts, e := c.Options()
	require.Nil(t, e)
	assert.Equal(t, housing.PolicyCategory, opts.Policy)
	assert.True(t, opts.ZeroAssessment)

	_, e = Load(filepath.Join("testdata", "bad.yaml"))
	assert.ErrorIs(t, e, ErrConfig)

	_, e = Load(filepath.Join("testdata", "none.yaml"))
	assert.ErrorIs(t, e, os.ErrNotExist)
}

func TestLoadEnv(t *testing.T) {
	for _, env := range []string{EnvHost, EnvUser, EnvPassword, EnvName} {
		t.Setenv(env, "")
		require.Nil(t, os.Unsetenv(env))
	}
	t.Setenv(EnvHost, "db.example")

	c := Default()
	require.Nil(t, c.LoadEnv(filepath.Join("testdata", "test.env")))
	assert.Equal(t, "db.example", c.Database.Host)
	assert.Equal(t, "analyst", c.Database.User)
	assert.Equal(t, "secret", c.Conn().Password)

	assert.Nil(t, Default().LoadEnv(filepath.Join("testdata", "missing.env")))
}

func TestValidate(t *testing.T) {
	cases := []func(c *Config){
		func(c *Config) { c.Sources.Ward = "" },
		func(c *Config) { c.Policy = "c" },
		func(c *Config) { c.Separator = "" },
		func(c *Config) { c.Separator = ";;" },
		func(c *Config) { c.Threshold = -1 },
		func(c *Config) { c.Database.Dialect = "mysql" },
		func(c *Config) { c.Database.Dialect = store.CH },
		func(c *Config) { c.Database.Path = "" },
		func(c *Config) { c.Database.Table = "" },
		func(c *Config) { c.LogLevel = "loud" },
		func(c *Config) { c.Database.BufferMB = -1 },
		func(c *Config) { c.Output.FloatFormat = "2f" },
	}

	for ind, change := range cases {
		c := Default()
		change(c)
		assert.ErrorIs(t, c.Validate(), ErrConfig, "case %d", ind)
	}
}
