package predict_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qats/dataset"
	"github.com/katalvlaran/qats/predict"
)

// ExampleAtomChargeQC demonstrates a direct first ionization energy.
//
// Scenario:
//
//	The dataset holds carbon at charges 0 and +1; the ionization energy
//	is the lambda=0 energy difference, final minus initial.
//
// Complexity: O(n) over the table, one state selection per endpoint.
func ExampleAtomChargeQC() {
	qc := dataset.QCTable{
		{System: "c", AtomicNumbers: []int{6}, Charge: 0, Multiplicity: 3, NElectrons: 6,
			BasisSet: "aug-cc-pV5Z", LambdaValue: 0, ElectronicEnergy: -37.8},
		{System: "c", AtomicNumbers: []int{6}, Charge: 1, Multiplicity: 2, NElectrons: 5,
			BasisSet: "aug-cc-pV5Z", LambdaValue: 0, ElectronicEnergy: -37.4},
	}

	ie, ok, err := predict.AtomChargeQC(qc, "c", 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("ok=%v IE=%.1f\n", ok, ie)
	// Output:
	// ok=true IE=0.4
}

// ExampleAtomChargeQA demonstrates per-order alchemical predictions.
//
// Scenario:
//
//	Nitrogen holds fitted expansions at both of carbon's endpoint
//	electron counts, so it predicts carbon's ionization energy at
//	lambda -1, order by order.
//
// Use case:
//
//	Scanning references and orders shows which alchemical paths
//	converge for a target before trusting any single prediction.
func ExampleAtomChargeQA() {
	qc := dataset.QCTable{
		{System: "c", AtomicNumbers: []int{6}, Charge: 0, Multiplicity: 3, NElectrons: 6,
			BasisSet: "aug-cc-pV5Z", LambdaValue: 0, ElectronicEnergy: -37.8},
	}
	qats := dataset.QATSTable{
		{System: "n", AtomicNumbers: []int{7}, Charge: 1, Multiplicity: 3, NElectrons: 6,
			BasisSet: "aug-cc-pV5Z", PolyCoeffs: []float64{-53.9, -16.0, 0.35}},
		{System: "n", AtomicNumbers: []int{7}, Charge: 2, Multiplicity: 2, NElectrons: 5,
			BasisSet: "aug-cc-pV5Z", PolyCoeffs: []float64{-53.0, -15.5, 0.60}},
	}

	preds, err := predict.AtomChargeQA(qc, qats, "c", 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	labels := make([]string, 0, len(preds))
	for label := range preds {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		p := preds[label]
		fmt.Printf("%s (lambda %+d):", p.Reference, p.Lambda)
		for order, e := range p.Energies {
			fmt.Printf(" QATS-%d=%.2f", order, e)
		}
		fmt.Println()
	}
	// Output:
	// n (lambda -1): QATS-0=0.90 QATS-1=0.40 QATS-2=0.65
}
