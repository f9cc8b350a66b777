package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/invertedv/housing"
)

// All code interacting with a database is here

var (
	//go:embed skeletons/clickhouse/create.txt
	chCreate string
	//go:embed skeletons/postgres/create.txt
	pgCreate string
	//go:embed skeletons/sqlite/create.txt
	liteCreate string

	//go:embed skeletons/clickhouse/types.txt
	chTypes string
	//go:embed skeletons/postgres/types.txt
	pgTypes string
	//go:embed skeletons/sqlite/types.txt
	liteTypes string

	//go:embed skeletons/clickhouse/fields.txt
	chFields string
	//go:embed skeletons/postgres/fields.txt
	pgFields string
	//go:embed skeletons/sqlite/fields.txt
	liteFields string

	//go:embed skeletons/clickhouse/dropIf.txt
	chDropIf string
	//go:embed skeletons/postgres/dropIf.txt
	pgDropIf string
	//go:embed skeletons/sqlite/dropIf.txt
	liteDropIf string
)

const (
	CH   = "clickhouse"
	PG   = "postgres"
	Lite = "sqlite"
)

// Dialect holds a connection and the SQL skeletons of its database.
type Dialect struct {
	db      *sql.DB
	dialect string

	dtTypes []string
	dbTypes []string

	create string
	fields string
	dropIf string

	bufSize int // in MB
}

func NewDialect(dialect string, db *sql.DB) (*Dialect, error) {
	dialect = strings.ToLower(dialect)

	d := &Dialect{db: db, dialect: dialect, bufSize: 1}

	var types string
	switch d.dialect {
	case CH:
		d.create, d.fields, d.dropIf = chCreate, chFields, chDropIf
		types = chTypes
	case PG:
		d.create, d.fields, d.dropIf = pgCreate, pgFields, pgDropIf
		types = pgTypes
	case Lite:
		d.create, d.fields, d.dropIf = liteCreate, liteFields, liteDropIf
		types = liteTypes
	default:
		return nil, fmt.Errorf("no skeletons for database %s", dialect)
	}

	for _, lm := range strings.Split(types, "\n") {
		if strings.TrimSpace(lm) == "" {
			continue
		}

		t := strings.Split(lm, ",")
		if len(t) != 2 {
			return nil, fmt.Errorf("bad type line in %s skeleton: %s", dialect, lm)
		}

		if housing.DTFromString(t[0]) == housing.DTunknown {
			return nil, fmt.Errorf("unknown data type in NewDialect")
		}

		d.dtTypes = append(d.dtTypes, t[0])
		d.dbTypes = append(d.dbTypes, t[1])
	}

	return d, nil
}

// ***************** Methods *****************

func (d *Dialect) BufSize() int {
	return d.bufSize
}

// SetBufSize sets the size, in MB, of each INSERT sent by IterSave. 0 sends one INSERT.
func (d *Dialect) SetBufSize(mb int) {
	d.bufSize = mb
}

func (d *Dialect) Close() error {
	return d.db.Close()
}

func (d *Dialect) DialectName() string {
	return d.dialect
}

// Create makes tableName with the given fields. orderBy is a comma separated list of fields.
func (d *Dialect) Create(tableName, orderBy string, fields []string, types []housing.DataTypes, overwrite bool) error {
	if len(fields) == 0 || len(fields) != len(types) {
		return fmt.Errorf("create %s: %d fields, %d types", tableName, len(fields), len(types))
	}

	exists, e := d.Exists(tableName)
	if e != nil {
		return e
	}

	if exists && !overwrite {
		return fmt.Errorf("table %s exists", tableName)
	}

	if orderBy == "" {
		orderBy = fields[0]
	}

	create := strings.ReplaceAll(d.create, "?TableName", tableName)
	create = strings.ReplaceAll(create, "?OrderBy", orderBy)
	create = strings.ReplaceAll(create, "?IndexName", "idx"+housing.RandomLetters(4))

	var flds []string
	for ind := 0; ind < len(fields); ind++ {
		var dbType string
		if dbType, e = d.dbtype(types[ind]); e != nil {
			return e
		}

		field := strings.ReplaceAll(d.fields, "?Field", fields[ind])
		field = strings.ReplaceAll(field, "?Type", dbType)
		flds = append(flds, field)
	}

	create = strings.Replace(create, "?fields", strings.Join(flds, ","), 1)

	if strings.Contains(create, "?") {
		return fmt.Errorf("create still has placeholders: %s", create)
	}

	for _, stmt := range strings.Split(create, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}

		if _, e = d.db.Exec(stmt); e != nil {
			return fmt.Errorf("create %s: %w", tableName, e)
		}
	}

	return nil
}

func (d *Dialect) DropTable(tableName string) error {
	qry := strings.ReplaceAll(d.dropIf, "?TableName", tableName)
	_, e := d.db.Exec(qry)

	return e
}

func (d *Dialect) Exists(tableName string) (bool, error) {
	var qry string
	switch d.dialect {
	case CH:
		qry = fmt.Sprintf("EXISTS TABLE %s", tableName)
	case PG:
		qry = fmt.Sprintf("SELECT to_regclass('%s') IS NOT NULL", tableName)
	case Lite:
		qry = fmt.Sprintf("SELECT count(*) > 0 FROM sqlite_master WHERE type = 'table' AND name = '%s'", tableName)
	}

	res, e := d.db.Query(qry)
	if e != nil {
		return false, e
	}
	defer func() { _ = res.Close() }()

	var exist any
	if res.Next() {
		if e = res.Scan(&exist); e != nil {
			return false, e
		}
	}

	switch x := exist.(type) {
	case bool:
		return x, nil
	case nil:
		return false, res.Err()
	default:
		n, _ := housing.ParseInt(normalize(x))
		return n == 1, res.Err()
	}
}

func (d *Dialect) InsertValues(tableName string, values []byte) error {
	qry := fmt.Sprintf("INSERT INTO %s VALUES ", tableName) + string(values)
	_, e := d.db.Exec(qry)

	return e
}

// IterSave inserts the rows of t, bufSize MB at a time.
func (d *Dialect) IterSave(tableName string, t *housing.Table) error {
	const (
		bSep   = byte(',')
		bOpen  = byte('(')
		bClose = byte(')')
	)

	var buffer []byte
	bsize := d.bufSize * 1024 * 1024

	names := t.ColumnNames()
	for row := 0; row < t.RowCount(); row++ {
		r := t.Row(row)
		if buffer != nil {
			buffer = append(buffer, bSep)
		}

		buffer = append(buffer, bOpen)
		for _, nm := range names {
			buffer = append(append(buffer, []byte(d.ToString(r[nm]))...), bSep)
		}

		buffer[len(buffer)-1] = bClose

		if bsize > 0 && len(buffer) >= bsize {
			if e := d.InsertValues(tableName, buffer); e != nil {
				return e
			}

			buffer = nil
		}
	}

	if buffer != nil {
		if e := d.InsertValues(tableName, buffer); e != nil {
			return e
		}
	}

	return nil
}

// Load runs qry and returns the result as a table. Text and numbers come back as the
// driver returns them; NULL is a missing value.
func (d *Dialect) Load(qry string) (*housing.Table, error) {
	rows, e := d.db.Query(qry)
	if e != nil {
		return nil, e
	}
	defer func() { _ = rows.Close() }()

	var names []string
	if names, e = rows.Columns(); e != nil {
		return nil, e
	}

	data := make([][]any, len(names))
	row2read := make([]any, len(names))
	for rows.Next() {
		vals := make([]any, len(names))
		for ind := range vals {
			row2read[ind] = &vals[ind]
		}

		if e = rows.Scan(row2read...); e != nil {
			return nil, e
		}

		for ind, v := range vals {
			data[ind] = append(data[ind], normalize(v))
		}
	}

	if e = rows.Err(); e != nil {
		return nil, e
	}

	var cols []*housing.Column
	for ind, nm := range names {
		var col *housing.Column
		if col, e = housing.NewColumn(data[ind], housing.ColName(nm)); e != nil {
			return nil, e
		}

		cols = append(cols, col)
	}

	return housing.NewTable(qry, cols...)
}

// Save writes t to tableName, replacing it if overwrite is set.
func (d *Dialect) Save(tableName, orderBy string, overwrite bool, t *housing.Table) error {
	exists, e := d.Exists(tableName)
	if e != nil {
		return e
	}

	if exists && !overwrite {
		return fmt.Errorf("table %s exists", tableName)
	}

	if exists {
		if e = d.DropTable(tableName); e != nil {
			return e
		}
	}

	var types []housing.DataTypes
	for _, nm := range t.ColumnNames() {
		col, _ := t.Column(nm)
		dt := col.DataType()
		if dt == housing.DTunknown {
			dt = housing.DTstring
		}

		types = append(types, dt)
	}

	if e = d.Create(tableName, orderBy, t.ColumnNames(), types, overwrite); e != nil {
		return e
	}

	if t.RowCount() == 0 {
		return nil
	}

	return d.IterSave(tableName, t)
}

// ToString returns a string version of val that can be placed into SQL
func (d *Dialect) ToString(val any) string {
	switch x := val.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprintf("'%v'", x)
	}
}

func (d *Dialect) dbtype(dt housing.DataTypes) (string, error) {
	for ind, nm := range d.dtTypes {
		if nm == dt.String() {
			return d.dbTypes[ind], nil
		}
	}

	return "", fmt.Errorf("cannot find type %s to map to DB type", dt.String())
}

// normalize converts what a driver scans into the cell types of a housing.Table
func normalize(x any) any {
	switch v := x.(type) {
	case nil:
		return nil
	case []byte:
		return string(v)
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint8:
		return int(v)
	case float32:
		return float64(v)
	case *float64:
		if v == nil {
			return nil
		}
		return *v
	case *int64:
		if v == nil {
			return nil
		}
		return int(*v)
	case *string:
		if v == nil {
			return nil
		}
		return *v
	default:
		return v
	}
}
