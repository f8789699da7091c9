package ontology_test

import (
	"fmt"

	"github.com/phenokit/phenokit/ontology"
)

// ExampleBuild demonstrates loading a miniature ontology and walking
// the path between two phenotypes through their common ancestor.
func ExampleBuild() {
	ont, err := ontology.Build(ontology.Source{
		Version: "2024-04-26",
		Terms: []ontology.TermRecord{
			{ID: 1, Name: "All"},
			{ID: 118, Name: "Phenotypic abnormality", Parents: []ontology.TermID{1}},
			{ID: 924, Name: "Abnormality of the skeletal system", Parents: []ontology.TermID{118}},
			{ID: 707, Name: "Abnormality of the nervous system", Parents: []ontology.TermID{118}},
			{ID: 2650, Name: "Scoliosis", Parents: []ontology.TermID{924}},
			{ID: 1250, Name: "Seizure", Parents: []ontology.TermID{707}},
		},
	})
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	fmt.Println(ont.Root().ID, ont.Root().Name)

	path, _ := ont.Path(2650, 1250)
	fmt.Println(path)

	// Output:
	// HP:0000001 All
	// [HP:0002650 HP:0000924 HP:0000118 HP:0000707 HP:0001250]
}

// ExampleOntology_Search demonstrates ranked name lookup.
func ExampleOntology_Search() {
	ont, err := ontology.Build(ontology.Source{
		Terms: []ontology.TermRecord{
			{ID: 1, Name: "All"},
			{ID: 707, Name: "Abnormality of the nervous system", Parents: []ontology.TermID{1}},
			{ID: 1250, Name: "Seizure", Parents: []ontology.TermID{707}},
			{ID: 2373, Name: "Febrile seizure", Parents: []ontology.TermID{1250}},
			{ID: 2197, Name: "Seizure precipitated by fever", Parents: []ontology.TermID{1250}},
		},
	})
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	for _, term := range ont.Search("Seizure") {
		fmt.Println(term.ID, term.Name)
	}

	// Output:
	// HP:0001250 Seizure
	// HP:0002197 Seizure precipitated by fever
}
