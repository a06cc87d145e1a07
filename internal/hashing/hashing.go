// Package hashing provides position hashing and duplicate detection for
// replayed games.
package hashing

import "github.com/lgbarn/chessmatch-go/internal/chess"

// DuplicateDetector tracks final positions for duplicate game detection.
// It is not safe for concurrent use.
type DuplicateDetector struct {
	// hashTable stores seen signatures keyed by position hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires equal ply counts
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// MoveCount is the number of plies in the game
	MoveCount int
	// WeakHash is the material signature of the final position
	WeakHash uint64
}

// Signature builds the signature of a game ending on snap with toMove to
// play after plies moves. Castling and en passant rights are left out, so
// games count as duplicates when their final placements agree.
func Signature(snap chess.Snapshot, toMove chess.Colour, plies int) GameSignature {
	return GameSignature{
		Hash:      PositionHash(snap, toMove, chess.Rights{}),
		MoveCount: plies,
		WeakHash:  WeakHash(snap),
	}
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
	}
}

// CheckAndAdd checks if a game is a duplicate and records it.
// Returns true if the game is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.MoveCount != b.MoveCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}

// RepetitionTracker counts how often each position occurs during a game.
type RepetitionTracker struct {
	counts map[uint64]int
	max    int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{counts: make(map[uint64]int)}
}

// Add records one occurrence of the position and returns its count so far.
func (r *RepetitionTracker) Add(snap chess.Snapshot, toMove chess.Colour, rights chess.Rights) int {
	hash := PositionHash(snap, toMove, rights)
	r.counts[hash]++
	n := r.counts[hash]
	if n > r.max {
		r.max = n
	}
	return n
}

// MaxRepetitions returns the highest count of any position.
func (r *RepetitionTracker) MaxRepetitions() int {
	return r.max
}
