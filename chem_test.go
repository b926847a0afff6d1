/*
 * chem_test.go, part of geomcalc.
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
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection(Te *testing.T) {
	sel := NewSelection([]int{1, 2, 3})
	assert.Equal(Te, Selection{0, 1, 2}, sel)
	assert.Equal(Te, "1-2-3", sel.Label())
	assert.Equal(Te, AngleQuantity, sel.Quantity())
	assert.Equal(Te, DistanceQuantity, NewSelection([]int{4, 1}).Quantity())
	assert.Equal(Te, DihedralQuantity, NewSelection([]int{1, 2, 3, 4}).Quantity())
	assert.Equal(Te, Unrecognized, NewSelection([]int{1}).Quantity())
	assert.Equal(Te, Unrecognized, NewSelection([]int{1, 2, 3, 4, 5}).Quantity())
	assert.Equal(Te, "dihedral", DihedralQuantity.String())

	S, err := XYZRead(strings.NewReader(rightXYZ), "right")
	require.NoError(Te, err)
	assert.Equal(Te, []string{"O", "H"}, NewSelection([]int{2, 3}).Symbols(S))
	vecs, err := NewSelection([]int{3, 1}).Vecs(S)
	require.NoError(Te, err)
	assert.Equal(Te, 2, vecs.NVecs())
	assert.Equal(Te, []float64{1, 1, 0}, vecs.RawRowView(0))
	assert.Equal(Te, []float64{0, 0, 0}, vecs.RawRowView(1))
	//Vecs returns a copy.
	vecs.Set(1, 0, 10)
	assert.Equal(Te, 0.0, S.Coords.At(0, 0))
}

func TestParseSelection(Te *testing.T) {
	sel, err := ParseSelection([]string{"1", "2,3", " 4 "})
	require.NoError(Te, err)
	assert.Equal(Te, Selection{0, 1, 2, 3}, sel)
	sel, err = ParseSelection([]string{"1,", "2"})
	require.NoError(Te, err)
	assert.Equal(Te, Selection{0, 1}, sel)
	_, err = ParseSelection([]string{"1", "two"})
	assert.Error(Te, err)
}

func TestSelectionVecsBounds(Te *testing.T) {
	S, err := XYZRead(strings.NewReader(rightXYZ), "right")
	require.NoError(Te, err)
	v, err := Selection{1}.Vecs(S)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{1, 0, 0}, v.RawRowView(0))
	_, err = Selection{0, 3}.Vecs(S)
	require.Error(Te, err)
	assert.True(Te, IsKind(err, IndexOutOfRange))
	assert.Contains(Te, err.Error(), "atom 4 requested, but the structure has 3 atoms")
	_, err = Selection{-1, 0}.Vecs(S)
	assert.True(Te, IsKind(err, IndexOutOfRange))
	_, err = Selection{}.Vecs(S)
	assert.Error(Te, err)
	empty, err := XYZRead(strings.NewReader("0\nnothing\n"), "empty")
	require.NoError(Te, err)
	_, err = Selection{0, 1}.Vecs(empty)
	assert.True(Te, IsKind(err, IndexOutOfRange))
}

func TestErrors(Te *testing.T) {
	err := &Error{kind: ParseError, filename: "a.xyz", line: 7, text: "H 1 2", message: "expected a label and 3 coordinates, got 3 fields", deco: []string{"XYZRead"}}
	assert.Equal(Te, `parse error: a.xyz:7: expected a label and 3 coordinates, got 3 fields: "H 1 2"`, err.Error())
	assert.Equal(Te, []string{"XYZRead", "XYZFileRead"}, err.Decorate("XYZFileRead"))
	assert.Equal(Te, []string{"XYZRead", "XYZFileRead"}, err.Decorate(""))

	wrapped := fmt.Errorf("reading input: %w", err)
	assert.True(Te, IsKind(wrapped, ParseError))
	assert.False(Te, IsKind(wrapped, FileNotFound))
	assert.False(Te, IsKind(errors.New("plain"), ParseError))
	assert.False(Te, IsKind(nil, ParseError))

	assert.Equal(Te, "ErrorKind(99)", ErrorKind(99).String())
	assert.Nil(Te, errDecorate(nil, "nobody"))
	plain := errors.New("plain")
	assert.Equal(Te, plain, errDecorate(plain, "nobody"))
}

func TestOptions(Te *testing.T) {
	O := DefaultOptions()
	assert.Equal(Te, DefaultPrecision, O.Precision())
	assert.Equal(Te, DefaultPrecision, O.Precision(5))
	assert.Equal(Te, 5, O.Precision(-1), "negative precisions are ignored")
	assert.Equal(Te, 5, O.Precision())
	assert.Equal(Te, 5, O.Precision(0))
	assert.Equal(Te, 0, O.Precision())
}
