package ledger

// ValidateChain walks the candidate chain from its first block forward and
// checks every consecutive pair: the stored previous hash must match the
// recomputed hash of the predecessor and the proof must solve the puzzle
// against the predecessor's proof. The walk stops at the first violation.
// The first block itself is taken as given; it has no predecessor to
// check against.
func ValidateChain(chain []Block) bool {
	for i := 1; i < len(chain); i++ {
		prevBlock := chain[i-1]
		block := chain[i]

		if block.PrevHash != prevBlock.Hash() {
			return false
		}

		if !ValidateProof(prevBlock.Proof, block.Proof) {
			return false
		}
	}

	return true
}
