/*
 * geometric.go, part of geomcalc.
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
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"

	v3 "github.com/rmera/geomcalc/v3"
)

const rad2deg = 180 / math.Pi

//Quantity is the internal coordinate measured on a selection.
type Quantity int

const (
	Unrecognized Quantity = iota
	DistanceQuantity
	AngleQuantity
	DihedralQuantity
)

func (q Quantity) String() string {
	switch q {
	case DistanceQuantity:
		return "distance"
	case AngleQuantity:
		return "angle"
	case DihedralQuantity:
		return "dihedral"
	}
	return "unrecognized"
}

//round rounds x half to even, to precision decimal places.
func round(x float64, precision int) float64 {
	return scalar.RoundEven(x, precision)
}

//Distance returns the euclidean distance between the points a and b, rounded to
//precision decimal places.
func Distance(a, b *v3.Matrix, precision int) float64 {
	d := v3.Zeros(1)
	d.Sub(a, b)
	return round(d.Norm(2), precision)
}

//Angle returns the angle in degrees between the points a, vertex and c, with
//vertex as the vertex, rounded to precision decimal places. The result is in [0, 180].
//If a or c coincide with vertex, a DegenerateGeometry error is returned.
func Angle(a, vertex, c *v3.Matrix, precision int) (float64, error) {
	v1 := v3.Zeros(1)
	v2 := v3.Zeros(1)
	v1.Sub(a, vertex)
	v2.Sub(c, vertex)
	if v1.IsZero() || v2.IsZero() {
		return 0, newError(DegenerateGeometry, "the vertex of the angle coincides with one of the other atoms", "Angle")
	}
	return round(vecAngle(v1, v2)*rad2deg, precision), nil
}

//vecAngle takes 2 vectors and calculate the angle in radians between them
//It does not check for zero vectors.
func vecAngle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm(2) * v2.Norm(2)
	argument := v1.Dot(v2) / normproduct
	//Take care of floating point math errors
	if argument > 1 {
		argument = 1
	} else if argument < -1 {
		argument = -1
	}
	return math.Acos(argument)
}

//Dihedral returns the dihedral angle in degrees between the points a, b, c, d, where the first plane
//is defined by abc and the second by bcd, i.e. the torsion around the b-c bond. The result is rounded
//to precision decimal places and lies in (-180, 180]. The sign follows atan2 on the projections of
//a-b and d-c on the plane normal to the b-c bond.
//A DegenerateGeometry error is returned if b and c coincide, or if either a, b, c or b, c, d are collinear,
//since the torsion is undefined then.
func Dihedral(a, b, c, d *v3.Matrix, precision int) (float64, error) {
	amb := v3.Zeros(1) //a minus b
	bond := v3.Zeros(1)
	dmc := v3.Zeros(1)
	amb.Sub(a, b)
	bond.Sub(c, b)
	dmc.Sub(d, c)
	if !bond.Unit(bond) {
		return 0, newError(DegenerateGeometry, "the two central atoms of the dihedral coincide", "Dihedral")
	}
	v := perpendicular(amb, bond)
	w := perpendicular(dmc, bond)
	if v.IsZero() || w.IsZero() {
		return 0, newError(DegenerateGeometry, "three consecutive atoms of the dihedral are collinear", "Dihedral")
	}
	x := v.Dot(w)
	bxv := v3.Zeros(1)
	bxv.Cross(bond, v)
	y := bxv.Dot(w)
	dihedral := round(math.Atan2(y, x)*rad2deg, precision)
	if dihedral <= -180 {
		dihedral += 360
	}
	if dihedral == 0 {
		dihedral = 0 //no negative zeros
	}
	return dihedral, nil
}

//perpendicular returns the component of vec perpendicular to the unit vector unit.
func perpendicular(vec, unit *v3.Matrix) *v3.Matrix {
	proj := v3.Zeros(1)
	proj.Scale(vec.Dot(unit), unit)
	ret := v3.Zeros(1)
	ret.Sub(vec, proj)
	return ret
}

//Measurement is the result of measuring an internal coordinate on a selection of atoms.
type Measurement struct {
	Quantity  Quantity
	Atoms     Selection
	Precision int
	Value     float64    //Angstroms for distances, degrees for angles and dihedrals
	Coords    *v3.Matrix //the coordinates of Atoms, in the same order
}

//String returns a human-readable description of the measurement, with one-based
//atom numbers, i.e. "1-2 distance is 1.093"
func (M *Measurement) String() string {
	return fmt.Sprintf("%s %s is %s", M.Atoms.Label(), M.Quantity, FormatValue(M.Value))
}

//FormatValue returns the shortest representation of v that reads back to the same value,
//always with a decimal point, i.e. "1.0" and "1.093".
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

//Measure measures on mol the quantity that corresponds to the length of sel: the distance
//for 2 atoms, the angle for 3 and the dihedral for 4. Any other length returns an
//UnrecognizedSelection error. The result is rounded to precision decimal places.
func Measure(mol Coorder, sel Selection, precision int) (*Measurement, error) {
	if precision < 0 {
		return nil, newError(InvalidPrecision, fmt.Sprintf("precision must be zero or positive, got %d", precision), "Measure")
	}
	q := sel.Quantity()
	if q == Unrecognized {
		return nil, newError(UnrecognizedSelection, fmt.Sprintf("%d atoms given, need 2 (distance), 3 (angle) or 4 (dihedral)", len(sel)), "Measure")
	}
	coords, err := sel.Vecs(mol)
	if err != nil {
		return nil, errDecorate(err, "Measure")
	}
	M := &Measurement{Quantity: q, Atoms: append(Selection(nil), sel...), Precision: precision, Coords: coords}
	vecs := make([]*v3.Matrix, coords.NVecs())
	for i := range vecs {
		vecs[i] = coords.VecView(i)
	}
	switch q {
	case DistanceQuantity:
		M.Value = Distance(vecs[0], vecs[1], precision)
	case AngleQuantity:
		M.Value, err = Angle(vecs[0], vecs[1], vecs[2], precision)
	case DihedralQuantity:
		M.Value, err = Dihedral(vecs[0], vecs[1], vecs[2], vecs[3], precision)
	}
	if err != nil {
		return nil, errDecorate(err, "Measure")
	}
	return M, nil
}
