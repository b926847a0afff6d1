/*
 * options.go, part of geomcalc.
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

//DefaultPrecision is the number of decimal places used when none is given.
const DefaultPrecision = 3

//Options holds the settings for a measurement.
type Options struct {
	precision int
}

//DefaultOptions returns an Options with the default values.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.precision = DefaultPrecision
	return ret
}

//Precision returns the current number of decimal places to which
//results are rounded, and sets it to the given value, if a valid (non-negative)
//one is given. The value returned is always the one prior to the call.
func (O *Options) Precision(precision ...int) int {
	ret := O.precision
	if len(precision) > 0 && precision[0] >= 0 {
		O.precision = precision[0]
	}
	return ret
}
