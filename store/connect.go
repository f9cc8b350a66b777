package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	_ "github.com/jackc/pgx/stdlib"
	_ "modernc.org/sqlite"
)

// Conn describes a database to connect to.
type Conn struct {
	Dialect  string
	Host     string
	User     string
	Password string
	Database string
	Path     string // sqlite file
}

// Connect opens the database described by c and wraps it in a Dialect.
func Connect(c Conn) (*Dialect, error) {
	var (
		db *sql.DB
		e  error
	)
	switch c.Dialect {
	case CH:
		db, e = ConnectClickHouse(c.Host, c.User, c.Password, c.Database)
	case PG:
		db, e = ConnectPostgres(c.Host, c.User, c.Password, c.Database)
	case Lite:
		db, e = ConnectSQLite(c.Path)
	default:
		return nil, fmt.Errorf("unsupported database %q", c.Dialect)
	}

	if e != nil {
		return nil, e
	}

	return NewDialect(c.Dialect, db)
}

// ConnectClickHouse connects to ClickHouse on host, port 9000.
func ConnectClickHouse(host, user, password, dbName string) (*sql.DB, error) {
	if dbName == "" {
		dbName = "default"
	}

	db := clickhouse.OpenDB(
		&clickhouse.Options{
			Addr: []string{host + ":9000"},
			Auth: clickhouse.Auth{
				Database: dbName,
				Username: user,
				Password: password,
			},
			DialTimeout: 300 * time.Second,
			Compression: &clickhouse.Compression{
				Method: clickhouse.CompressionLZ4,
				Level:  0,
			},
		})

	if e := db.Ping(); e != nil {
		return nil, fmt.Errorf("clickhouse %s: %w", host, e)
	}

	return db, nil
}

// ConnectPostgres connects to Postgres on host, port 5432.
func ConnectPostgres(host, user, password, dbName string) (*sql.DB, error) {
	connectionStr := fmt.Sprintf("postgres://%s:%s@%s:5432/%s", user, password, host, dbName)
	var (
		db *sql.DB
		e  error
	)
	if db, e = sql.Open("pgx", connectionStr); e != nil {
		return nil, e
	}

	if e := db.Ping(); e != nil {
		return nil, fmt.Errorf("postgres %s: %w", host, e)
	}

	return db, nil
}

// ConnectSQLite opens (creating if needed) the sqlite database at path.
func ConnectSQLite(path string) (*sql.DB, error) {
	db, e := sql.Open("sqlite", path)
	if e != nil {
		return nil, e
	}

	if e := db.Ping(); e != nil {
		return nil, fmt.Errorf("sqlite %s: %w", path, e)
	}

	return db, nil
}
