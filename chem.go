/*
 * chem.go, part of geomcalc.
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
	"fmt"
	"strconv"
	"strings"

	v3 "github.com/rmera/geomcalc/v3"
)

//Structure contains the atoms read from a coordinate file, in file order.
//It is not modified after being read.
type Structure struct {
	Symbols []string   //The label in the first column of each atom line
	Coords  *v3.Matrix //nil if the file had no atoms
	//The atom count in the header, or -1 if the header line is not an integer.
	//It is informative only, and may not match Len().
	Declared int
	Comment  string //The second line of the file
	Extra    int    //Number of atom lines with more columns than the label and 3 coordinates
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.Symbols)
}

//Symbol returns the label of atom i, or an empty string if i is out of range.
func (S *Structure) Symbol(i int) string {
	if i < 0 || i >= S.Len() {
		return ""
	}
	return S.Symbols[i]
}

//CoordMatrix returns the coordinates of all the atoms, or nil if there are none.
func (S *Structure) CoordMatrix() *v3.Matrix {
	return S.Coords
}

//Selection is a list of zero-based atom indexes.
type Selection []int

//NewSelection returns a Selection from one-based atom numbers, i.e. the
//numbers that a user would read from the file.
func NewSelection(oneBased []int) Selection {
	sel := make(Selection, len(oneBased))
	for i, v := range oneBased {
		sel[i] = v - 1
	}
	return sel
}

//ParseSelection parses one-based atom numbers from strings, each of which can
//also be a comma-separated list.
func ParseSelection(fields []string) (Selection, error) {
	var oneBased []int
	for _, f := range fields {
		for _, s := range strings.Split(f, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("invalid atom number %q: %w", s, err)
			}
			oneBased = append(oneBased, n)
		}
	}
	return NewSelection(oneBased), nil
}

//Quantity returns what is measured on the selection.
func (sel Selection) Quantity() Quantity {
	switch len(sel) {
	case 2:
		return DistanceQuantity
	case 3:
		return AngleQuantity
	case 4:
		return DihedralQuantity
	}
	return Unrecognized
}

//Label returns the one-based atom numbers joined by dashes, i.e. "1-2-3".
func (sel Selection) Label() string {
	s := make([]string, len(sel))
	for i, v := range sel {
		s[i] = strconv.Itoa(v + 1)
	}
	return strings.Join(s, "-")
}

//Symbols returns the labels of the selected atoms.
func (sel Selection) Symbols(mol Labeler) []string {
	s := make([]string, len(sel))
	for i, v := range sel {
		s[i] = mol.Symbol(v)
	}
	return s
}

//Vecs returns a copy of the coordinates of the selected atoms, one row per atom
//in selection order. The first out-of-range index is reported as an IndexOutOfRange error.
func (sel Selection) Vecs(mol Coorder) (*v3.Matrix, error) {
	if len(sel) == 0 {
		return nil, newError(UnrecognizedSelection, "no atoms selected", "Selection.Vecs")
	}
	for _, v := range sel {
		if v < 0 || v >= mol.Len() {
			return nil, newError(IndexOutOfRange, fmt.Sprintf("atom %d requested, but the structure has %d atoms", v+1, mol.Len()), "Selection.Vecs")
		}
	}
	ret := v3.Zeros(len(sel))
	if err := ret.SomeVecsSafe(mol.CoordMatrix(), sel); err != nil {
		return nil, errDecorate(err, "Selection.Vecs")
	}
	return ret, nil
}
