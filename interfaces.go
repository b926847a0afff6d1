/*
 * interfaces.go, part of geomcalc.
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

import v3 "github.com/rmera/geomcalc/v3"

//Coorder is anything that keeps the coordinates of its atoms in a v3.Matrix,
//one row per atom.
type Coorder interface {
	//CoordMatrix returns the coordinates, or nil if Len() is 0.
	CoordMatrix() *v3.Matrix

	Len() int
}

//Labeler gives the label (usually the element symbol) of the ith atom.
type Labeler interface {
	Symbol(i int) string

	Len() int
}

//Errors

//Decorator is implemented by all the errors in this package and in v3. The Decorate method allows to add and retrieve info from the
//error, without changing its type or wrapping it around something else.
type Decorator interface {
	Error() string
	Decorate(string) []string //Adds a function name, or "FunctionName: Extra info" to the trail of the error and returns the trail. An empty string only returns the trail.
	Critical() bool
}
