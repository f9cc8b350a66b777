package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invertedv/housing"
	"github.com/invertedv/housing/config"
	"github.com/invertedv/housing/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig points a configuration at the test sources and a temporary output directory
func writeConfig(t *testing.T) (cfgFile, dir string) {
	dir = t.TempDir()
	src, e := filepath.Abs(filepath.Join("..", "..", "testdata"))
	require.Nil(t, e)

	yml := fmt.Sprintf(`sources:
  census: %s
  assessment: %s
  ward: %s
output:
  dir: %s
database:
  dialect: sqlite
  path: %s
log_level: error
`, filepath.Join(src, "census.csv"), filepath.Join(src, "assessment.csv"), filepath.Join(src, "ward.csv"),
		dir, filepath.Join(dir, "housing.db"))

	cfgFile = filepath.Join(dir, "housing.yaml")
	require.Nil(t, os.WriteFile(cfgFile, []byte(yml), 0o644))

	return cfgFile, dir
}

func execute(t *testing.T, input string, args ...string) (string, error) {
	var out bytes.Buffer
	a := newApp(strings.NewReader(input), &out)

	root := a.rootCmd()
	root.SetArgs(append([]string{"--env", ""}, args...))
	root.SetOut(&out)
	root.SetErr(&out)

	e := root.Execute()

	return out.String(), e
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{wrapExit(ExitUsage, "flags", errors.New("bad")), ExitUsage},
		{fmt.Errorf("config: %w", config.ErrConfig), ExitUsage},
		{fmt.Errorf("x: %w", housing.ErrYear), ExitUsage},
		{fmt.Errorf("x: %w", housing.ErrNoRecord), ExitUsage},
		{fmt.Errorf("x: %w", housing.ErrCardinality), ExitData},
		{wrapExit(ExitData, "load", housing.ErrCommunity), ExitData},
		{errors.New("other"), ExitData},
	}

	for _, c := range cases {
		assert.Equal(t, c.code, exitCode(c.err), c.err.Error())
	}

	assert.Equal(t, "load: community not found", wrapExit(ExitData, "load", housing.ErrCommunity).Error())
}

func TestProfile(t *testing.T) {
	cfgFile, _ := writeConfig(t)

	out, e := execute(t, "", "--config", cfgFile, "profile", "--community", " abc", "--year", "2016")
	require.Nil(t, e)
	assert.Contains(t, out, "ABC (2016)")
	assert.Contains(t, out, "$480,000")

	_, e = execute(t, "", "--config", cfgFile, "profile", "--community", "abc", "--year", "2015")
	assert.ErrorIs(t, e, housing.ErrYear)
	assert.Equal(t, ExitUsage, exitCode(e))

	_, e = execute(t, "", "--config", cfgFile, "profile", "--community", "nowhere", "--year", "2016")
	assert.ErrorIs(t, e, housing.ErrCommunity)
}

func TestBadConfig(t *testing.T) {
	_, e := execute(t, "", "--config", filepath.Join(t.TempDir(), "none.yaml"), "clean")
	assert.Equal(t, ExitUsage, exitCode(e))
}

func TestMissingSource(t *testing.T) {
	cfgFile, dir := writeConfig(t)
	yml, e := os.ReadFile(cfgFile)
	require.Nil(t, e)

	yml = []byte(strings.Replace(string(yml), "ward.csv", "absent.csv", 1))
	require.Nil(t, os.WriteFile(filepath.Join(dir, "absent.yaml"), yml, 0o644))

	_, e = execute(t, "", "--config", filepath.Join(dir, "absent.yaml"), "clean")
	assert.ErrorIs(t, e, housing.ErrMissingSource)
	assert.Equal(t, ExitData, exitCode(e))
}

func TestClean(t *testing.T) {
	cfgFile, dir := writeConfig(t)

	out, e := execute(t, "", "--config", cfgFile, "clean")
	require.Nil(t, e)
	assert.Contains(t, out, string(housing.InnerCity))

	assert.FileExists(t, filepath.Join(dir, config.Default().Output.CSV))
}

func TestAnalyze(t *testing.T) {
	cfgFile, dir := writeConfig(t)

	out, e := execute(t, "nowhere\nxyz\n2016\n", "--config", cfgFile, "analyze")
	require.Nil(t, e)
	assert.Contains(t, out, "XYZ (2016)")
	assert.Contains(t, out, housing.PatternSprawl)

	def := config.Default().Output
	for _, fileName := range []string{def.CSV, def.Workbook, def.Panel} {
		assert.FileExists(t, filepath.Join(dir, fileName))
	}

	_, e = execute(t, "", "--config", cfgFile, "analyze")
	assert.Equal(t, ExitUsage, exitCode(e))
}

func TestAnalyzeShow(t *testing.T) {
	browser, e := exec.LookPath("true")
	if e != nil {
		t.Skip("no true command")
	}

	cfgFile, _ := writeConfig(t)

	out, e := execute(t, "", "--config", cfgFile, "analyze", "--community", "newtown", "--year", "2017",
		"--show", "--browser", browser)
	require.Nil(t, e)
	assert.Contains(t, out, "NEWTOWN (2017)")

	_, e = execute(t, "", "--config", cfgFile, "analyze", "--community", "newtown", "--show",
		"--browser", filepath.Join(t.TempDir(), "no-browser"))
	assert.Equal(t, ExitData, exitCode(e))
}

func TestSave(t *testing.T) {
	cfgFile, dir := writeConfig(t)

	_, e := execute(t, "", "--config", cfgFile, "save")
	require.Nil(t, e)

	// the table exists and overwrite is off
	_, e = execute(t, "", "--config", cfgFile, "save")
	assert.Equal(t, ExitData, exitCode(e))

	d, e := store.Connect(store.Conn{Dialect: store.Lite, Path: filepath.Join(dir, "housing.db")})
	require.Nil(t, e)
	defer func() { _ = d.Close() }()

	ds, e := store.LoadDataset(d, store.DefaultTable)
	require.Nil(t, e)
	assert.Equal(t, 7, ds.Len())
}
