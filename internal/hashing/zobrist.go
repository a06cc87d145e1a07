package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable between runs.
const zobristSeed = 0x2545F4914F6CDD1D

var (
	pieceKeys     [chess.BoardSize][chess.BoardSize][2][chess.NumKinds]uint64
	blackToMove   uint64
	castlingKeys  [2][2]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for row := range pieceKeys {
		for col := range pieceKeys[row] {
			for colour := range pieceKeys[row][col] {
				for kind := range pieceKeys[row][col][colour] {
					pieceKeys[row][col][colour][kind] = r.Uint64()
				}
			}
		}
	}
	blackToMove = r.Uint64()
	for colour := range castlingKeys {
		for side := range castlingKeys[colour] {
			castlingKeys[colour][side] = r.Uint64()
		}
	}
	for col := range enPassantKeys {
		enPassantKeys[col] = r.Uint64()
	}
}

// PositionHash returns the Zobrist hash of the placement in snap with toMove
// to play and rights in force. Two positions hash alike only when they are
// the same position for threefold repetition.
func PositionHash(snap chess.Snapshot, toMove chess.Colour, rights chess.Rights) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			occ := snap[row][col]
			if occ.IsEmpty() {
				continue
			}
			hash ^= pieceKeys[row][col][occ.Colour][occ.Kind]
		}
	}
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	for colour := range rights.Castling {
		for side, ok := range rights.Castling[colour] {
			if ok {
				hash ^= castlingKeys[colour][side]
			}
		}
	}
	if rights.EnPassant {
		hash ^= enPassantKeys[rights.EnPassantCol]
	}
	return hash
}

// WeakHash returns a cheap material signature of snap: the count of each
// kind per colour packed four bits at a time. Positions with different
// material always differ.
func WeakHash(snap chess.Snapshot) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			occ := snap[row][col]
			if occ.IsEmpty() {
				continue
			}
			shift := 4 * (uint(occ.Colour)*uint(chess.NumKinds) + uint(occ.Kind))
			hash += 1 << shift
		}
	}
	return hash
}
