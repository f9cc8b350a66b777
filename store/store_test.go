package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/invertedv/housing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// environment variables for the ClickHouse and Postgres tests, which are skipped without host:
//   - host database IP address
//   - user database user
//   - password database password
//   - db Postgres database

func loadDataset(t *testing.T) *housing.Dataset {
	src := housing.Sources{
		Census:     filepath.Join("..", "testdata", "census.csv"),
		Assessment: filepath.Join("..", "testdata", "assessment.csv"),
		Ward:       filepath.Join("..", "testdata", "ward.csv"),
	}

	ds, _, e := housing.Run(src, housing.Options{})
	require.Nil(t, e)

	return ds
}

func roundTrip(t *testing.T, d *Dialect, table string) {
	ds := loadDataset(t)

	require.Nil(t, SaveDataset(d, table, ds, true))

	exists, e := d.Exists(table)
	assert.Nil(t, e)
	assert.True(t, exists)

	// no overwrite
	assert.NotNil(t, SaveDataset(d, table, ds, false))

	back, e := LoadDataset(d, table)
	require.Nil(t, e)

	back, e = housing.NewDataset(back.Records())
	require.Nil(t, e)

	if diff := cmp.Diff(ds.Records(), back.Records(), cmpopts.IgnoreFields(housing.Record{}, "DwellingTypes")); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	assert.Nil(t, d.DropTable(table))
	exists, e = d.Exists(table)
	assert.Nil(t, e)
	assert.False(t, exists)
}

func TestSQLite(t *testing.T) {
	d, e := Connect(Conn{Dialect: Lite, Path: filepath.Join(t.TempDir(), "housing.db")})
	require.Nil(t, e)
	defer func() { _ = d.Close() }()

	roundTrip(t, d, DefaultTable)

	// one INSERT for the whole table
	d.SetBufSize(0)
	assert.Equal(t, 0, d.BufSize())
	roundTrip(t, d, DefaultTable)
}

func TestClickHouse(t *testing.T) {
	host := os.Getenv("host")
	if host == "" {
		t.Skip("host not set")
	}

	d, e := Connect(Conn{Dialect: CH, Host: host, User: os.Getenv("user"), Password: os.Getenv("password")})
	require.Nil(t, e)
	defer func() { _ = d.Close() }()

	roundTrip(t, d, "default."+DefaultTable)
}

func TestPostgres(t *testing.T) {
	host := os.Getenv("host")
	if host == "" {
		t.Skip("host not set")
	}

	d, e := Connect(Conn{Dialect: PG, Host: host, User: os.Getenv("user"), Password: os.Getenv("password"),
		Database: os.Getenv("db")})
	require.Nil(t, e)
	defer func() { _ = d.Close() }()

	roundTrip(t, d, "public."+DefaultTable)
}

func TestDialect(t *testing.T) {
	_, e := NewDialect("mysql", nil)
	assert.NotNil(t, e)

	d, e := NewDialect(PG, nil)
	require.Nil(t, e)
	assert.Equal(t, "'O''Brien'", d.ToString("O'Brien"))
	assert.Equal(t, "NULL", d.ToString(nil))
	assert.Equal(t, "0.1", d.ToString(0.1))
	assert.Equal(t, "2016", d.ToString(2016))

	dbType, e := d.dbtype(housing.DTfloat)
	assert.Nil(t, e)
	assert.Equal(t, "double precision", dbType)

	assert.Equal(t, 3, normalize(int64(3)))
	assert.Equal(t, "x", normalize([]byte("x")))
}
