package table

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "DSCP Class,DSCP (bin),DSCP (hex),DSCP (dec),ToS (dec),ToS (hex),ToS (bin)," +
	"ToS Prec. (bin),ToS Prec. (dec),ToS Delay Flag,ToS Throughput Flag,ToS Reliability Flag,TOS String Format"

func TestWriteCSV(t *testing.T) {
	tbl, err := GenerateFor([]uint8{0, 46, 48})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl))

	want := csvHeader + "\n" +
		"cs0,000000,0x00,0,0,0x00,00000000,000,0,0,0,0,Routine\n" +
		"ef,101110,0x2e,46,184,0xb8,10111000,101,5,1,1,0,Critical\n" +
		"cs6,110000,0x30,48,192,0xc0,11000000,110,6,0,0,0,Internetwork Control\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVNoBlankLines(t *testing.T) {
	tbl, err := Generate()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl))

	out := buf.String()
	assert.NotContains(t, out, "\r")
	assert.NotContains(t, out, "\n\n")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, len(tbl)+1)
	assert.Equal(t, csvHeader, lines[0])
}

func TestWriteFile(t *testing.T) {
	tbl, err := Generate()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, WriteFile(path, tbl))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl))
	assert.Equal(t, buf.String(), string(data))
}

func TestWriteFileReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("stale contents that are longer than the new table\n"), 0644))

	tbl, err := GenerateFor([]uint8{0})
	require.NoError(t, err)
	require.NoError(t, WriteFile(path, tbl))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, csvHeader+"\ncs0,000000,0x00,0,0,0x00,00000000,000,0,0,0,0,Routine\n", string(data))
}

func TestWriteFileMissingDirectory(t *testing.T) {
	tbl, err := Generate()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "missing", DefaultFileName)
	err = WriteFile(path, tbl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
