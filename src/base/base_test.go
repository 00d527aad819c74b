package base

import "testing"

func TestSquareFromAlgebraic(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		pos     string
		want    Square
		wantErr bool
	}{
		{name: "a1", pos: "a1", want: 0},
		{name: "e4", pos: "e4", want: 28},
		{name: "e8", pos: "e8", want: 60},
		{name: "h8", pos: "h8", want: 63},
		{name: "empty", pos: "", wantErr: true},
		{name: "bad file", pos: "m4", wantErr: true},
		{name: "bad rank", pos: "e9", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := SquareFromAlgebraic(tt.pos)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SquareFromAlgebraic(%q) err = %v, wantErr %v", tt.pos, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("SquareFromAlgebraic(%q) = %d, want %d", tt.pos, got, tt.want)
			}
		})
	}
}

func TestSquareRoundTrip(t *testing.T) {
	t.Parallel()
	for i := 0; i < BoardSquares; i++ {
		s := Square(i)
		back, err := SquareFromAlgebraic(s.String())
		if err != nil || back != s {
			t.Fatalf("round trip of %d through %q gave %d (%v)", i, s.String(), back, err)
		}
		if NewSquare(s.File(), s.Rank()) != s {
			t.Fatalf("file/rank of %d do not rebuild it", i)
		}
	}
}

func TestQuaterSquareSquare(t *testing.T) {
	t.Parallel()
	for i := 0; i < QuaterSquares; i++ {
		q := QuaterSquare(i)
		sq := q.Square()
		if sq.File() != q.File()/2 || sq.Rank() != q.Rank()/2 {
			t.Fatalf("quater %d lies in %v", i, sq)
		}
	}
}

func TestSquareSet(t *testing.T) {
	t.Parallel()
	s := NewSquareSet(63, 0, 28)
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	for _, sq := range []Square{0, 28, 63} {
		if !s.Contains(sq) {
			t.Errorf("set misses %v", sq)
		}
	}
	if s.Contains(1) || s.Contains(64) {
		t.Errorf("set reports squares it does not hold")
	}
	got := s.Squares()
	want := []Square{0, 28, 63}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Squares() = %v, want %v", got, want)
		}
	}
}

func TestPieceAssetKey(t *testing.T) {
	t.Parallel()
	tests := []struct {
		piece Piece
		key   string
		r     rune
	}{
		{Piece{Queen, White}, "wQ", 'Q'},
		{Piece{Knight, Black}, "bN", 'n'},
		{Piece{Pawn, White}, "wP", 'P'},
		{Piece{King, Black}, "bK", 'k'},
	}
	for _, tt := range tests {
		if got := tt.piece.AssetKey(); got != tt.key {
			t.Errorf("%v.AssetKey() = %q, want %q", tt.piece, got, tt.key)
		}
		if got := tt.piece.Rune(); got != tt.r {
			t.Errorf("%v.Rune() = %q, want %q", tt.piece, got, tt.r)
		}
	}
}
