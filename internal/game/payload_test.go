package game

import "testing"

func TestPayloadRoundTrip(t *testing.T) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := EncodePayload(At(r, c))
			got, ok := DecodePayload(p)
			if !ok || got != At(r, c) {
				t.Errorf("DecodePayload(%q) = %v, %v", p, got, ok)
			}
		}
	}
}

func TestDecodePayload(t *testing.T) {
	tests := []struct {
		input string
		want  Coord
		ok    bool
	}{
		{"1,2", At(1, 2), true},
		{" 0 , 1 ", At(0, 1), true},
		{"7,-1", At(7, -1), true}, // decodes; bounds are the reducer's job
		{"", Coord{}, false},
		{"1", Coord{}, false},
		{"1,", Coord{}, false},
		{",2", Coord{}, false},
		{"a,b", Coord{}, false},
		{"1,x", Coord{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := DecodePayload(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("DecodePayload(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}
