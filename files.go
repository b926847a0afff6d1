/*
 * files.go, part of geomcalc.
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
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	v3 "github.com/rmera/geomcalc/v3"
)

//XYZFileRead opens the xyz file xyzname and reads it with XYZRead. Files
//ending in ".gz" are decompressed with gzip, and files ending in ".zst", with zstd.
func XYZFileRead(xyzname string) (*Structure, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, &Error{kind: FileNotFound, filename: xyzname, deco: []string{"XYZFileRead"}, err: err}
	}
	defer xyzfile.Close()
	if info, err := xyzfile.Stat(); err == nil && info.IsDir() {
		return nil, &Error{kind: FileNotFound, filename: xyzname, message: "is a directory", deco: []string{"XYZFileRead"}}
	}
	var in io.Reader = xyzfile
	switch {
	case strings.HasSuffix(xyzname, ".gz"):
		gz, err := gzip.NewReader(xyzfile)
		if err != nil {
			return nil, &Error{kind: ParseError, filename: xyzname, message: "unable to start gzip decompression", deco: []string{"XYZFileRead"}, err: err}
		}
		defer gz.Close()
		in = gz
	case strings.HasSuffix(xyzname, ".zst"):
		zr, err := zstd.NewReader(xyzfile)
		if err != nil {
			return nil, &Error{kind: ParseError, filename: xyzname, message: "unable to start zstd decompression", deco: []string{"XYZFileRead"}, err: err}
		}
		defer zr.Close()
		in = zr
	}
	S, err := XYZRead(in, xyzname)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead")
	}
	return S, nil
}

//XYZRead reads a structure in xyz format from xyz. name is only used in error messages.
//The first two lines (atom count and comment) are not used to read the coordinates,
//regardless of their content. Each following line must have a label and 3 coordinates.
//Extra fields are ignored, but counted in the Extra field of the returned Structure.
//Any empty line after the header is an error.
func XYZRead(xyz io.Reader, name string) (*Structure, error) {
	in := bufio.NewReader(xyz)
	S := &Structure{Declared: -1}
	coords := make([]float64, 0, 3*32)
	lineno := 0
	for {
		line, err := in.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, &Error{kind: ParseError, filename: name, line: lineno + 1, message: "unable to read line", deco: []string{"XYZRead"}, err: err}
		}
		if line == "" && err == io.EOF {
			break
		}
		lineno++
		switch lineno {
		case 1:
			if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
				S.Declared = n
			}
		case 2:
			S.Comment = strings.TrimSpace(line)
		default:
			fields := strings.Fields(line)
			c, perr := parseXYZFields(fields)
			if perr != nil {
				return nil, &Error{kind: ParseError, filename: name, line: lineno, text: strings.TrimRight(line, "\r\n"), message: perr.Error(), deco: []string{"XYZRead"}}
			}
			if len(fields) > 4 {
				S.Extra++
			}
			S.Symbols = append(S.Symbols, fields[0])
			coords = append(coords, c[:]...)
		}
		if err == io.EOF {
			break
		}
	}
	if len(coords) > 0 {
		var err error
		S.Coords, err = v3.NewMatrix(coords)
		if err != nil {
			return nil, errDecorate(err, "XYZRead")
		}
	}
	return S, nil
}

var axes = [3]string{"x", "y", "z"}

//parseXYZFields reads the 3 coordinates following the label in an atom line.
func parseXYZFields(fields []string) ([3]float64, error) {
	var c [3]float64
	if len(fields) == 0 {
		return c, fmt.Errorf("empty line")
	}
	if len(fields) < 4 {
		return c, fmt.Errorf("expected a label and 3 coordinates, got %d fields", len(fields))
	}
	for k := 0; k < 3; k++ {
		f, err := strconv.ParseFloat(fields[k+1], 64)
		if err != nil {
			return c, fmt.Errorf("invalid %s coordinate %q", axes[k], fields[k+1])
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return c, fmt.Errorf("%s coordinate %q is not a finite number", axes[k], fields[k+1])
		}
		c[k] = f
	}
	return c, nil
}
