//go:build unit

package endf

import (
	"testing"

	"github.com/gostonefire/nucleardata"
	"github.com/stretchr/testify/assert"
)

func TestReadAMU(t *testing.T) {
	t.Run("reads the atomic mass from the head line", func(t *testing.T) {
		// Execute
		amu, err := ReadAMU("testdata/h1.endf", NeutronMassAMU)

		// Check
		assert.NoError(t, err, "reads tape")
		assert.InDelta(t, 0.999167*1.008664916, amu, 1e-5, "mass ratio times neutron mass")
	})

	t.Run("reads a gzip compressed tape transparently", func(t *testing.T) {
		// Prepare
		plain, err := ReadAMU("testdata/h1.endf", NeutronMassAMU)
		assert.NoError(t, err, "reads plain tape")

		// Execute
		compressed, err := ReadAMU("testdata/h1.endf.gz", NeutronMassAMU)

		// Check
		assert.NoError(t, err, "reads compressed tape")
		assert.Equal(t, plain, compressed, "same mass from both forms")
	})

	t.Run("error when the file does not exist", func(t *testing.T) {
		// Execute
		amu, err := ReadAMU("testdata/missing.endf", NeutronMassAMU)

		// Check
		assert.Error(t, err)
		assert.Equal(t, float32(-1.0), amu, "sentinel returned")
	})

	t.Run("error when the head line lacks the mass field", func(t *testing.T) {
		// Execute
		amu, err := ReadAMU("testdata/short.endf", NeutronMassAMU)

		// Check
		assert.Error(t, err)
		assert.Equal(t, float32(-1.0), amu, "sentinel returned")
	})
}

func TestReadXsecTable(t *testing.T) {
	t.Run("loads energy and cross-section pairs skipping comments", func(t *testing.T) {
		// Execute
		xsec, err := ReadXsecTable("testdata/h1_elastic.dat", 4)

		// Check
		assert.NoError(t, err, "reads table")
		assert.Equal(t, 5, xsec.Size(), "five data lines, comments and blanks skipped")

		data, err := xsec.GetData(0)
		assert.NoError(t, err, "gets first pair")
		assert.Equal(t, float32(1.0e-5), data.Energy, "first energy")
		assert.Equal(t, float32(20.436), data.XS, "first cross section")

		xs, err := xsec.Interp(1.0)
		assert.NoError(t, err, "looks up stored energy")
		assert.Equal(t, float32(20.1), xs, "exact stored value")

		// Clean up
		xsec.Free()
	})

	t.Run("loads a gzip compressed table transparently", func(t *testing.T) {
		// Execute
		xsec, err := ReadXsecTable("testdata/h1_elastic.dat.gz", 4)

		// Check
		assert.NoError(t, err, "reads compressed table")
		assert.Equal(t, 5, xsec.Size(), "all pairs loaded")

		// Clean up
		xsec.Free()
	})

	t.Run("error when a line does not parse", func(t *testing.T) {
		// Execute
		xsec, err := ReadXsecTable("testdata/broken.dat", 4)

		// Check
		assert.Error(t, err)
		assert.Nil(t, xsec, "no table returned on failure")
	})

	t.Run("error when the file does not exist", func(t *testing.T) {
		// Execute
		_, err := ReadXsecTable("testdata/missing.dat", 4)

		// Check
		assert.Error(t, err)
	})

	t.Run("loaded table feeds the generic dispatch", func(t *testing.T) {
		// Prepare
		xsec, err := ReadXsecTable("testdata/h1_elastic.dat", 4)
		assert.NoError(t, err, "reads table")

		// Execute and Check
		assert.Equal(t, 5, nucleardata.Size(xsec), "generic size")
		assert.LessOrEqual(t, nucleardata.Size(xsec), nucleardata.Alloc(xsec), "length within capacity")

		// Clean up
		nucleardata.FreeData(xsec)
	})
}
