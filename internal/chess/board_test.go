package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				sq := Square{Row: row, Col: col}
				if b.Occupied(sq) {
					t.Errorf("Occupied(%v) = true; want false", sq)
				}
			}
		}
	})

	t.Run("off-board reads are empty", func(t *testing.T) {
		for _, sq := range []Square{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {9, 9}} {
			if got := b.At(sq); got != nil {
				t.Errorf("At(%+v) = %v; want nil", sq, got)
			}
		}
	})
}

func TestPlaceAndRemove(t *testing.T) {
	b := NewBoard()
	knight := &Piece{ID: 1, Kind: Knight, Colour: White}
	g1 := MustParseSquare("g1")

	b.Place(knight, g1)

	if got := b.At(g1); got != knight {
		t.Fatalf("At(g1) = %v; want the knight", got)
	}
	if knight.Square != g1 {
		t.Errorf("knight.Square = %v; want g1", knight.Square)
	}
	if !knight.OnBoard {
		t.Error("knight.OnBoard = false; want true")
	}

	removed := b.Remove(g1)
	if removed != knight {
		t.Fatalf("Remove(g1) = %v; want the knight", removed)
	}
	if knight.OnBoard {
		t.Error("knight.OnBoard = true after Remove; want false")
	}
	if b.Occupied(g1) {
		t.Error("Occupied(g1) = true after Remove; want false")
	}
	if got := b.Remove(g1); got != nil {
		t.Errorf("Remove(empty) = %v; want nil", got)
	}
}

func TestPlaceOccupiedPanics(t *testing.T) {
	b := NewBoard()
	sq := MustParseSquare("d4")
	b.Place(&Piece{ID: 1, Kind: Rook, Colour: Black}, sq)

	defer func() {
		if recover() == nil {
			t.Error("Place on occupied square did not panic")
		}
	}()
	b.Place(&Piece{ID: 2, Kind: Bishop, Colour: Black}, sq)
}

func TestSnapshot(t *testing.T) {
	b := NewBoard()
	b.Place(&Piece{ID: 1, Kind: Queen, Colour: Black}, MustParseSquare("d8"))
	b.Place(&Piece{ID: 2, Kind: King, Colour: White}, MustParseSquare("e1"))

	snap := b.Snapshot()

	if got, want := snap[0][3], (Occupant{Kind: Queen, Colour: Black}); got != want {
		t.Errorf("snap[d8] = %v; want %v", got, want)
	}
	if got, want := snap[7][4], (Occupant{Kind: King, Colour: White}); got != want {
		t.Errorf("snap[e1] = %v; want %v", got, want)
	}
	if !snap[4][4].IsEmpty() {
		t.Errorf("snap[e4] = %v; want empty", snap[4][4])
	}
}

func TestOccupantLetter(t *testing.T) {
	tests := []struct {
		occ  Occupant
		want byte
	}{
		{Occupant{}, ' '},
		{Occupant{Kind: King, Colour: White}, 'K'},
		{Occupant{Kind: King, Colour: Black}, 'k'},
		{Occupant{Kind: Knight, Colour: Black}, 'n'},
		{Occupant{Kind: Pawn, Colour: White}, 'P'},
	}

	for _, tt := range tests {
		if got := tt.occ.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %q; want %q", tt.occ, got, tt.want)
		}
	}
}

func TestParsePromotion(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"N", Knight},
		{"n", Knight},
		{"B", Bishop},
		{"r", Rook},
		{"Q", Queen},
		{"", Queen},
		{"K", Queen},
		{"P", Queen},
		{"x", Queen},
		{"QQ", Queen},
	}

	for _, tt := range tests {
		if got := ParsePromotion(tt.in); got != tt.want {
			t.Errorf("ParsePromotion(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestMask(t *testing.T) {
	var m Mask
	if m.Any() {
		t.Error("empty mask Any() = true; want false")
	}

	m.Set(MustParseSquare("h1"))
	m.Set(MustParseSquare("a8"))
	m.Set(Square{Row: 9, Col: 0})

	if got := m.Count(); got != 2 {
		t.Errorf("Count() = %d; want 2", got)
	}
	squares := m.Squares()
	if len(squares) != 2 || squares[0].String() != "a8" || squares[1].String() != "h1" {
		t.Errorf("Squares() = %v; want [a8 h1] in row-major order", squares)
	}
	if m.Has(Square{Row: -1, Col: 0}) {
		t.Error("Has(off-board) = true; want false")
	}
}
