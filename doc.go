/*
 * doc.go, part of geomcalc.
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

/*
Package chem is the main package of geomcalc. It reads molecular structures from XYZ files
and measures simple internal coordinates on them.


	**Capabilities**


    Reads XYZ files, plain or compressed with gzip (.gz) or zstd (.zst).

    Selects atoms with a go slice of zero-based indexes, checking bounds.

    Measures interatomic distances (Angstroms), bond angles and dihedral angles
	(degrees), rounded half to even to a given number of decimal places.

    Reports degenerate geometries (coincident or collinear atoms) as errors
	instead of returning NaN.


The coordinates of a Structure are kept in a v3.Matrix, a Nx3 gonum Dense
(see the v3 package). Every error returned by the package is a *chem.Error,
whose Kind can be checked with IsKind.

*/
package chem
