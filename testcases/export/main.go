// Command export writes the test case definitions to JSON, for use by
// external reference generators. Run from the scanfill module root
// directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/scanfill/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string      `json:"name"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Simple   bool        `json:"simple"`
	Vertices [][]float64 `json:"vertices"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Simple:   tc.Simple,
		Vertices: make([][]float64, len(tc.Vertices)),
	}
	for i, v := range tc.Vertices {
		jtc.Vertices[i] = []float64{v.X, v.Y}
	}
	return jtc
}
