package store

import (
	"fmt"
	"strings"

	"github.com/invertedv/housing"
)

// DefaultTable is the table a dataset is saved to when none is configured.
const DefaultTable = "calgary_housing"

var orderBy = strings.Join([]string{housing.ColCommunity, housing.ColYear}, ",")

// SaveDataset writes ds to tableName. An existing table is an error unless overwrite is set.
func SaveDataset(d *Dialect, tableName string, ds *housing.Dataset, overwrite bool) error {
	if e := d.Save(tableName, orderBy, overwrite, ds.Table()); e != nil {
		return fmt.Errorf("saving dataset to %s %s: %w", d.DialectName(), tableName, e)
	}

	return nil
}

// LoadDataset reads a table written by SaveDataset.
func LoadDataset(d *Dialect, tableName string) (*housing.Dataset, error) {
	qry := fmt.Sprintf("SELECT %s FROM %s", strings.Join(housing.Columns, ","), tableName)

	t, e := d.Load(qry)
	if e != nil {
		return nil, fmt.Errorf("loading dataset from %s %s: %w", d.DialectName(), tableName, e)
	}

	return housing.FromTable(t)
}
