package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Difficulty is the number of leading zero characters a solution digest
// must carry. It is fixed for the life of the network; there is no
// difficulty adjustment.
const Difficulty = 4

// zeroPrefix is the digest prefix a valid proof must produce.
var zeroPrefix = strings.Repeat("0", Difficulty)

// ValidateProof reports whether proof solves the puzzle for lastProof.
// The SHA-256 hex digest of the decimal concatenation of both values
// must begin with Difficulty zero characters.
func ValidateProof(lastProof uint64, proof uint64) bool {
	guess := fmt.Sprintf("%d%d", lastProof, proof)
	digest := sha256.Sum256([]byte(guess))

	return hex.EncodeToString(digest[:])[:Difficulty] == zeroPrefix
}

// ProofOfWork searches for the first proof that validates against
// lastProof, starting at 0 and incrementing by 1. The search is CPU
// bound, roughly 16^Difficulty attempts on average, and can be stopped
// through the context.
func ProofOfWork(ctx context.Context, lastProof uint64) (uint64, error) {
	for proof := uint64(0); ; proof++ {

		// Checking the context on every attempt would dominate the
		// hashing. Once every 1024 attempts keeps cancellation prompt.
		if proof%1024 == 0 && ctx.Err() != nil {
			return 0, ctx.Err()
		}

		if ValidateProof(lastProof, proof) {
			return proof, nil
		}
	}
}
