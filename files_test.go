/*
 * files_test.go, part of geomcalc.
 *
 * Copyright 2026 The geomcalc authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chem

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rightXYZ = "3\ntitle\nH 0.0 0.0 0.0\nO 1.0 0.0 0.0\nH 1.0 1.0 0.0\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestXYZFileRead(Te *testing.T) {
	S, err := XYZFileRead("testdata/water.xyz")
	require.NoError(Te, err)
	assert.Equal(Te, 3, S.Len())
	assert.Equal(Te, 3, S.Declared)
	assert.Equal(Te, "water, HF/6-31G*", S.Comment)
	assert.Equal(Te, []string{"O", "H", "H"}, S.Symbols)
	assert.Equal(Te, 3, S.Coords.NVecs())
	assert.Equal(Te, []float64{0, 0.75545, -0.47116}, S.Coords.RawRowView(1))
	assert.Equal(Te, "H", S.Symbol(2))
	assert.Equal(Te, "", S.Symbol(3))
}

func TestXYZReadHeaderIgnored(Te *testing.T) {
	//The header is skipped whatever it says.
	in := "not a number\n\nC 1 2 3\nN 4 5 6\n"
	S, err := XYZRead(strings.NewReader(in), "inline")
	require.NoError(Te, err)
	assert.Equal(Te, 2, S.Len())
	assert.Equal(Te, -1, S.Declared)
	assert.Equal(Te, []float64{4, 5, 6}, S.Coords.RawRowView(1))

	in = "10\ncomment\nC 1 2 3\n"
	S, err = XYZRead(strings.NewReader(in), "inline")
	require.NoError(Te, err)
	assert.Equal(Te, 1, S.Len())
	assert.Equal(Te, 10, S.Declared)
}

func TestXYZReadLayout(Te *testing.T) {
	cases := []struct {
		name  string
		in    string
		atoms int
	}{
		{"no final newline", "2\n\nH 0 0 0\nH 0 0 0.74", 2},
		{"crlf", "2\r\n\r\nH 0 0 0\r\nH 0 0 0.74\r\n", 2},
		{"tabs and extra columns", "1\n\nFe\t1.0\t2.0\t3.0\t0.5 extra\n", 1},
		{"header only", "0\nempty\n", 0},
		{"empty input", "", 0},
		{"scientific notation", "1\n\nC 1e-3 -2.5E+1 .5\n", 1},
	}
	for _, c := range cases {
		Te.Run(c.name, func(t *testing.T) {
			S, err := XYZRead(strings.NewReader(c.in), c.name)
			require.NoError(t, err)
			assert.Equal(t, c.atoms, S.Len())
			if c.atoms == 0 {
				assert.Nil(t, S.Coords)
			} else {
				assert.Equal(t, c.atoms, S.Coords.NVecs())
			}
		})
	}
}

func TestXYZReadParseErrors(Te *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
	}{
		{"too few fields", "2\n\nH 0 0 0\nH 0 0\n", 4},
		{"label only", "1\n\nH\n", 3},
		{"bad x", "1\n\nH a 0 0\n", 3},
		{"bad z", "2\n\nH 0 0 0\nH 0 0 0,5\n", 4},
		{"nan", "1\n\nH NaN 0 0\n", 3},
		{"inf", "1\n\nH 0 +Inf 0\n", 3},
		{"blank line in the middle", "2\n\nH 0 0 0\n\nH 0 0 1\n", 4},
		{"trailing blank line", "1\n\nO 0 0 0\n\n", 4},
		{"trailing whitespace line", "1\n\nO 0 0 0\n   \n", 4},
	}
	for _, c := range cases {
		Te.Run(c.name, func(t *testing.T) {
			_, err := XYZRead(strings.NewReader(c.in), "broken.xyz")
			require.Error(t, err)
			assert.True(t, IsKind(err, ParseError), "got %v", err)
			var cerr *Error
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, c.line, cerr.Line())
			assert.Equal(t, "broken.xyz", cerr.FileName())
			assert.Contains(t, err.Error(), "broken.xyz:")
		})
	}
}

func TestXYZReadExtraColumns(Te *testing.T) {
	in := "3\n\nFe 1 2 3 0.5\nO 0 0 0\nC 1 1 1 a b\n"
	S, err := XYZRead(strings.NewReader(in), "extended")
	require.NoError(Te, err)
	assert.Equal(Te, 3, S.Len())
	assert.Equal(Te, 2, S.Extra)
	assert.Equal(Te, []float64{1, 1, 1}, S.Coords.RawRowView(2))

	S, err = XYZRead(strings.NewReader(rightXYZ), "right")
	require.NoError(Te, err)
	assert.Equal(Te, 0, S.Extra)
}

func TestXYZFileReadNotFound(Te *testing.T) {
	_, err := XYZFileRead(filepath.Join(Te.TempDir(), "missing.xyz"))
	require.Error(Te, err)
	assert.True(Te, IsKind(err, FileNotFound))
	assert.ErrorIs(Te, err, os.ErrNotExist)

	_, err = XYZFileRead(Te.TempDir())
	assert.True(Te, IsKind(err, FileNotFound), "a directory is not a readable file")
}

func TestXYZFileReadCompressed(Te *testing.T) {
	var gzbuf bytes.Buffer
	gw := gzip.NewWriter(&gzbuf)
	_, err := gw.Write([]byte(rightXYZ))
	require.NoError(Te, err)
	require.NoError(Te, gw.Close())

	var zbuf bytes.Buffer
	zw, err := zstd.NewWriter(&zbuf)
	require.NoError(Te, err)
	_, err = zw.Write([]byte(rightXYZ))
	require.NoError(Te, err)
	require.NoError(Te, zw.Close())

	for name, data := range map[string][]byte{"right.xyz.gz": gzbuf.Bytes(), "right.xyz.zst": zbuf.Bytes()} {
		S, err := XYZFileRead(writeFile(Te, name, data))
		require.NoError(Te, err, name)
		assert.Equal(Te, []string{"H", "O", "H"}, S.Symbols, name)
		assert.Equal(Te, []float64{1, 1, 0}, S.Coords.RawRowView(2), name)
	}

	//plain text with a .gz name is not valid gzip
	_, err = XYZFileRead(writeFile(Te, "plain.xyz.gz", []byte(rightXYZ)))
	require.Error(Te, err)
	assert.True(Te, IsKind(err, ParseError), "got %v", err)
}
