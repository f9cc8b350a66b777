package housing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiles_Save(t *testing.T) {
	name, e := NewColumn([]any{"A", `say "hi"`, nil}, ColName("name"))
	assert.Nil(t, e)
	x, e := NewColumn([]any{1.0 / 3, nil, 2.5}, ColName("x"))
	assert.Nil(t, e)
	tab, e := NewTable("t", name, x)
	assert.Nil(t, e)

	f, e := NewFiles(FileFloatFormat("%.2f"))
	assert.Nil(t, e)

	fileName := filepath.Join(t.TempDir(), "t.csv")
	assert.Nil(t, f.Save(fileName, tab))

	data, e := os.ReadFile(fileName)
	assert.Nil(t, e)
	assert.Equal(t, "name,x\n\"A\",0.33\n\"say \"\"hi\"\"\",\n,2.50\n", string(data))

	back, e := ReadTable(fileName)
	assert.Nil(t, e)
	col, _ := back.Column("name")
	assert.Equal(t, []any{"A", `say "hi"`, nil}, col.Data())

	// no such directory
	f, _ = NewFiles()
	assert.NotNil(t, f.Save(filepath.Join(t.TempDir(), "missing", "t.csv"), tab))
}

func TestFileOpts(t *testing.T) {
	_, e := NewFiles(FileFloatFormat("2f"))
	assert.NotNil(t, e)

	_, e = NewFiles(FileSep('"'))
	assert.NotNil(t, e)

	f, e := NewFiles(FileSep(';'), FileFloatFormat(""))
	assert.Nil(t, e)
	assert.Equal(t, ';', f.Sep)
	assert.Equal(t, "0.1", f.float(0.1))
}
