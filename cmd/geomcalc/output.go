/*
 * output.go, part of geomcalc.
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

package main

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}
	return log.New(w, "geomcalc: ", 0)
}

//report writes err to stderr after a colored prefix.
func (a *app) report(err error, usage bool) {
	prefix := color.New(color.FgRed, color.Bold)
	if a.noColor {
		prefix.DisableColor()
	}
	prefix.Fprint(a.stderr, "error:")
	fmt.Fprintf(a.stderr, " %v\n", err)
	if usage {
		fmt.Fprintln(a.stderr, "Run 'geomcalc --help' for usage.")
	}
}
