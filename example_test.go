package housing_test

import (
	"fmt"
	"path/filepath"

	"github.com/invertedv/housing"
)

func ExampleRun() {
	src := housing.Sources{
		Census:     filepath.Join("testdata", "census.csv"),
		Assessment: filepath.Join("testdata", "assessment.csv"),
		Ward:       filepath.Join("testdata", "ward.csv"),
	}

	ds, _, e := housing.Run(src, housing.Options{})
	if e != nil {
		panic(e)
	}

	for _, r := range ds.Year(2016).Records() {
		vacancy := "n/a"
		if r.VacancyRate != nil {
			vacancy = fmt.Sprintf("%.2f", *r.VacancyRate)
		}

		fmt.Println(r.Community, r.AreaType, r.Residents, vacancy)
	}
	// Output:
	// ABC Inner-City 1200 0.10
	// NEWTOWN Suburban 300 n/a
	// XYZ Inner-City 0 0.10
}

func ExamplePolicy_Classify() {
	fmt.Println(housing.PolicyStructure.Classify("1950s"))
	fmt.Println(housing.PolicyCategory.Classify("Established"))
	fmt.Println(housing.PolicyCategory.Classify(nil))
	// Output:
	// Inner-City
	// Inner-City
	// Suburban
}
