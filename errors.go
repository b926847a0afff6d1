/*
 * errors.go, part of geomcalc.
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
)

//ErrorKind tells apart the different ways in which reading a structure or measuring on it
//can fail.
type ErrorKind int

const (
	FileNotFound          ErrorKind = iota + 1 //input can't be opened
	ParseError                                 //malformed coordinate line or unreadable content
	IndexOutOfRange                            //selected atom beyond the structure
	UnrecognizedSelection                      //selection that is not 2, 3 or 4 atoms long
	DegenerateGeometry                         //coincident or collinear atoms
	InvalidPrecision                           //negative rounding precision
)

var kindNames = map[ErrorKind]string{
	FileNotFound:          "file not found",
	ParseError:            "parse error",
	IndexOutOfRange:       "index out of range",
	UnrecognizedSelection: "unrecognized selection",
	DegenerateGeometry:    "degenerate geometry",
	InvalidPrecision:      "invalid precision",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

//Error is the general structure for errors in this package. It fulfills Decorator.
type Error struct {
	kind     ErrorKind
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //1-based line in filename, or 0 if it doesn't apply.
	text     string //offending line, if any.
	deco     []string
	err      error
}

func newError(kind ErrorKind, message, caller string) *Error {
	return &Error{kind: kind, message: message, deco: []string{caller}}
}

func (err *Error) Error() string {
	parts := []string{err.kind.String()}
	if err.filename != "" {
		loc := err.filename
		if err.line > 0 {
			loc = fmt.Sprintf("%s:%d", loc, err.line)
		}
		parts = append(parts, loc)
	}
	if err.message != "" {
		parts = append(parts, err.message)
	}
	if err.text != "" {
		parts = append(parts, fmt.Sprintf("%q", err.text))
	}
	if err.err != nil {
		parts = append(parts, err.err.Error())
	}
	return strings.Join(parts, ": ")
}

//Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Kind returns the kind of the error
func (err *Error) Kind() ErrorKind { return err.kind }

//FileName returns the file to which the error is associated, if any.
func (err *Error) FileName() string { return err.filename }

//Line returns the 1-based line of the file where the error was found, or 0.
func (err *Error) Line() int { return err.line }

//Critical returns false only for an unrecognized selection, which is reported
//but is not a failure of the reading or the computation.
func (err *Error) Critical() bool { return err.kind != UnrecognizedSelection }

func (err *Error) Unwrap() error { return err.err }

//IsKind returns true if err is, or wraps, a *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.kind == kind
	}
	return false
}

//errDecorate is a helper function that asserts that the error
//implements Decorator and decorates the error with the caller's name before returning it.
//if used with a non-Decorator error, it will just return the error.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(Decorator)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
