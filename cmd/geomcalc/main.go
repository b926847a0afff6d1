/*
 * main.go, part of geomcalc.
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

//geomcalc measures a distance, an angle or a dihedral angle on the atoms of an XYZ file.
//
//Usage:
//
//	geomcalc -f water.xyz -g 1 2        # distance between atoms 1 and 2, in Angstroms
//	geomcalc -f water.xyz -g 2 1 3      # angle 2-1-3, with atom 1 as the vertex, in degrees
//	geomcalc -f butane.xyz -g 1 2 3 4   # dihedral around the 2-3 bond, in degrees
//
//Atoms are numbered from 1, in the order in which they appear in the file.
//The result is rounded to 3 decimal places unless -p is given.
package main

import "os"

//Exit codes
const (
	ExitSuccess      = 0
	ExitFailure      = 1 //unreadable input, bad atom numbers or degenerate geometry
	ExitUsage        = 2
	ExitUnrecognized = 3 //the selection is not 2, 3 or 4 atoms long
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
