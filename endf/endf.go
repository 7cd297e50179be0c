// Package endf reads nuclear data from ENDF flat files and feeds it into the
// nucleardata containers. Files compressed with gzip (the form ENDF tapes are commonly
// distributed in) are decompressed transparently based on the .gz file extension.
package endf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/gostonefire/nucleardata"
)

// NeutronMassAMU - The neutron rest mass in atomic mass units
const NeutronMassAMU float32 = 1.008664916

// open - Opens an ENDF file for line oriented reading, decompressing .gz files on the fly.
// The returned closer releases both the decompressor and the underlying file.
func open(filename string) (r io.Reader, closer func() error, err error) {
	file, err := os.Open(filename)
	if err != nil {
		err = fmt.Errorf("unable to open file %s: %w", filename, err)
		return
	}

	if strings.HasSuffix(filename, ".gz") {
		var gz *gzip.Reader
		gz, err = gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			err = fmt.Errorf("unable to open gzip stream in %s: %w", filename, err)
			return
		}
		r = gz
		closer = func() error {
			_ = gz.Close()
			return file.Close()
		}
		return
	}

	r = file
	closer = file.Close
	return
}

// ReadAMU - Reads the atomic mass from the head line of an ENDF tape and converts it to
// atomic mass units. The first line of a tape is the tape identification and is skipped;
// the second line starts with the ZAID followed by the atomic mass expressed as a ratio
// to the neutron mass.
//   - filename is the path to the ENDF file, optionally gzip compressed with a .gz extension
//   - neutronMass is the neutron mass in atomic mass units, typically NeutronMassAMU
//
// It returns:
//   - amu is the atomic mass in atomic mass units, or -1.0 on error
//   - err is a standard error if the file can not be opened, read or parsed
func ReadAMU(filename string, neutronMass float32) (amu float32, err error) {
	amu = -1.0

	r, closer, err := open(filename)
	if err != nil {
		return
	}
	defer func() { _ = closer() }()

	scanner := bufio.NewScanner(r)

	// Skip the tape identification line
	if !scanner.Scan() {
		err = fmt.Errorf("unable to read the first line from %s", filename)
		return
	}

	if !scanner.Scan() {
		err = fmt.Errorf("unable to read the second line from %s", filename)
		return
	}

	fields := strings.Fields(scanner.Text())
	if len(fields) < 2 {
		err = fmt.Errorf("unable to parse atomic mass from the second line of %s", filename)
		return
	}

	ratio, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		err = fmt.Errorf("unable to parse atomic mass from the second line of %s: %w", filename, err)
		return
	}

	amu = float32(ratio) * neutronMass
	return
}

// ReadXsecTable - Reads a two column energy/cross-section file into a new Xsec table.
// Each data line holds an energy in eV followed by a cross section in barns, whitespace
// delimited. Blank lines and lines starting with # are skipped. The file must hold its
// energies in ascending order, which the table requires but does not verify.
//   - filename is the path to the data file, optionally gzip compressed with a .gz extension
//   - initialAlloc is the initial table capacity in pairs
//
// It returns:
//   - xsec is a pointer to a new Xsec table holding every pair in the file
//   - err is a standard error if the file can not be opened, read or parsed
func ReadXsecTable(filename string, initialAlloc int) (xsec *nucleardata.Xsec, err error) {
	r, closer, err := open(filename)
	if err != nil {
		return
	}
	defer func() { _ = closer() }()

	xsec, err = nucleardata.NewXsec(initialAlloc)
	if err != nil {
		return
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			xsec.Free()
			xsec = nil
			err = fmt.Errorf("line %d of %s does not hold an energy and a cross section", lineNo, filename)
			return
		}

		var energy, xs float64
		energy, err = strconv.ParseFloat(fields[0], 32)
		if err == nil {
			xs, err = strconv.ParseFloat(fields[1], 32)
		}
		if err != nil {
			xsec.Free()
			xsec = nil
			err = fmt.Errorf("unable to parse line %d of %s: %w", lineNo, filename, err)
			return
		}

		err = xsec.Push(float32(xs), float32(energy))
		if err != nil {
			xsec.Free()
			xsec = nil
			return
		}
	}

	if err = scanner.Err(); err != nil {
		xsec.Free()
		xsec = nil
		err = fmt.Errorf("unable to read %s: %w", filename, err)
		return
	}

	return
}
