package prover

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// Prover holds the compiled solution circuit and its Groth16 keys.
type Prover struct {
	cs    constraint.ConstraintSystem
	pk    groth16.ProvingKey
	vk    groth16.VerifyingKey
	curve ecc.ID
}

// New compiles the solution circuit and runs trusted setup.
// In production the setup would come from a ceremony; here it is local.
func New() (*Prover, error) {
	curve := ecc.BN254

	cs, err := frontend.Compile(curve.ScalarField(), r1cs.NewBuilder, &SolutionCircuit{})
	if err != nil {
		return nil, fmt.Errorf("circuit compilation failed: %w", err)
	}

	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}

	return &Prover{cs: cs, pk: pk, vk: vk, curve: curve}, nil
}

// Constraints returns the number of constraints in the compiled circuit.
func (p *Prover) Constraints() int {
	return p.cs.GetNbConstraints()
}

// Prove generates a Groth16 proof for the given assignment.
func (p *Prover) Prove(assignment *SolutionCircuit) (groth16.Proof, error) {
	witness, err := frontend.NewWitness(assignment, p.curve.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness creation failed: %w", err)
	}

	proof, err := groth16.Prove(p.cs, p.pk, witness)
	if err != nil {
		return nil, fmt.Errorf("proof generation failed: %w", err)
	}
	return proof, nil
}

// Verify checks a proof against the public assignment.
func (p *Prover) Verify(proof groth16.Proof, public *SolutionCircuit) error {
	witness, err := frontend.NewWitness(public, p.curve.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("public witness creation failed: %w", err)
	}

	if err := groth16.Verify(proof, p.vk, witness); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	return nil
}
