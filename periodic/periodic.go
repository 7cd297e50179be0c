// Package periodic loads periodic table data from JSON and feeds it into the
// nucleardata containers.
package periodic

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/gostonefire/nucleardata"
)

// Element - One element record from a periodic table JSON file
type Element struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	AtomicNumber int     `json:"atomicNumber"`
	AtomicMass   float32 `json:"atomicMass"`
}

// Load - Reads a periodic table JSON file holding an array of element records.
//   - filename is the path to the JSON file
//
// It returns:
//   - elements is the decoded element records in file order
//   - err is a standard error if the file can not be opened or decoded
func Load(filename string) (elements []Element, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		err = fmt.Errorf("unable to open file %s: %w", filename, err)
		return
	}

	err = json.Unmarshal(data, &elements)
	if err != nil {
		err = fmt.Errorf("unable to decode element table in %s: %w", filename, err)
		return
	}

	return
}

// LoadMasses - Reads a periodic table JSON file and populates a new Dict with atomic
// masses keyed by element symbol. A duplicate symbol in the input surfaces as the Dict's
// duplicate insert error.
//   - filename is the path to the JSON file
//
// It returns:
//   - dict is a pointer to a new Dict mapping element symbols to atomic masses
//   - err is a standard error if the file can not be opened, decoded or inserted
func LoadMasses(filename string) (dict *nucleardata.Dict, err error) {
	elements, err := Load(filename)
	if err != nil {
		return
	}

	dict = nucleardata.NewDict(nil)
	for _, element := range elements {
		err = dict.Insert(element.Symbol, element.AtomicMass)
		if err != nil {
			dict.Free()
			dict = nil
			err = fmt.Errorf("unable to insert element %q: %w", element.Symbol, err)
			return
		}
	}

	return
}
