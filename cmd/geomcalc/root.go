/*
 * root.go, part of geomcalc.
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
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	chem "github.com/rmera/geomcalc"
)

//usageError marks errors in the command line or the configuration, as opposed
//to errors in the input file or in the measurement.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func usagef(format string, a ...any) error {
	return usageError{fmt.Errorf(format, a...)}
}

type app struct {
	stdout, stderr io.Writer
	opts           *chem.Options
	log            *log.Logger

	file       string
	geometry   []string
	precision  int
	configPath string
	verbose    bool
	noColor    bool
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		opts:   chem.DefaultOptions(),
		log:    newLogger(stderr, false),
	}
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geomcalc -f file.xyz -g atom1 atom2 [atom3 [atom4]] [-p precision]",
		Short: "Measure a distance, angle or dihedral on the atoms of an XYZ file",
		Long: `geomcalc reads an XYZ file and measures one internal coordinate on it.

Two atoms give their distance in Angstroms, three atoms the angle with the
second one as the vertex, and four atoms the dihedral angle around the bond
between the second and the third, both in degrees. Atoms are numbered from 1
in file order, and may be given as "-g 1 2 3", "-g 1,2,3" or "-g 1 -g 2 -g 3".

Files ending in .gz or .zst are decompressed on the fly.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          a.run,
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	f := cmd.Flags()
	f.StringVarP(&a.file, "file", "f", "", "XYZ file to read (required)")
	f.StringSliceVarP(&a.geometry, "geometry", "g", nil, "numbers of the 2, 3 or 4 atoms to measure, starting from 1")
	f.IntVarP(&a.precision, "precision", "p", a.opts.Precision(), "decimal places of the result")
	f.StringVar(&a.configPath, "config", "", "YAML configuration file (default $"+configEnv+")")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "log details about the input to stderr")
	f.BoolVar(&a.noColor, "no-color", false, "disable colored error messages")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return usageError{err}
	}
	if cfg.Precision != nil && !flags.Changed("precision") {
		a.precision = *cfg.Precision
	}
	if cfg.Verbose != nil && !flags.Changed("verbose") {
		a.verbose = *cfg.Verbose
	}
	if cfg.Color != nil && !flags.Changed("no-color") {
		a.noColor = !*cfg.Color
	}
	a.log = newLogger(a.stderr, a.verbose)

	if a.file == "" {
		return usagef("required flag \"file\" (-f) not set")
	}
	if len(a.geometry) == 0 {
		return usagef("no atoms given, use -g")
	}
	if a.precision < 0 {
		return usagef("precision must be zero or positive, got %d", a.precision)
	}
	a.opts.Precision(a.precision)
	//"-g 1 2 3" leaves 2 and 3 as arguments.
	sel, err := chem.ParseSelection(append(a.geometry, args...))
	if err != nil {
		return usageError{err}
	}

	mol, err := chem.XYZFileRead(a.file)
	if err != nil {
		return err
	}
	a.log.Printf("read %d atoms from %s", mol.Len(), a.file)
	switch {
	case mol.Declared < 0:
		a.log.Printf("the first line of %s is not an atom count", a.file)
	case mol.Declared != mol.Len():
		a.log.Printf("the header of %s declares %d atoms", a.file, mol.Declared)
	}
	if mol.Extra > 0 {
		a.log.Printf("%d atom lines of %s have extra columns, ignored", mol.Extra, a.file)
	}

	M, err := chem.Measure(mol, sel, a.opts.Precision())
	if chem.IsKind(err, chem.UnrecognizedSelection) {
		fmt.Fprintln(a.stdout, "Not recognized")
		a.log.Print(err)
		return err
	}
	if err != nil {
		return err
	}
	a.log.Printf("atoms %s are %s", sel.Label(), strings.Join(sel.Symbols(mol), "-"))
	a.log.Printf("coordinates:%v", M.Coords)
	fmt.Fprintln(a.stdout, M)
	return nil
}

func exitCode(err error) int {
	var uerr usageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &uerr), chem.IsKind(err, chem.InvalidPrecision):
		return ExitUsage
	case chem.IsKind(err, chem.UnrecognizedSelection):
		return ExitUnrecognized
	}
	return ExitFailure
}

//run executes geomcalc with the given arguments and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	cmd := a.command()
	cmd.SetArgs(args)
	err := cmd.Execute()
	code := exitCode(err)
	if code != ExitSuccess && code != ExitUnrecognized {
		a.report(err, code == ExitUsage)
	}
	return code
}
