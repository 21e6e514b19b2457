package primitives

import (
	"slices"
	"testing"
)

func TestCharSet_Add(t *testing.T) {
	cs := DefaultCharSet()

	tests := []struct {
		name      string
		char      rune
		wantErr   bool
		wantCount int
	}{
		{"add 'A'", 'A', false, 1},
		{"add 'B'", 'B', false, 2},
		{"add 'Z'", 'Z', false, 3},
		{"add 'A' again", 'A', false, 3},
		{"add lowercase", 'a', true, 3},
		{"add out of range low", '@', true, 3},
		{"add out of range high", '[', true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cs.Add(tt.char)
			if (err != nil) != tt.wantErr {
				t.Errorf("Add() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := len(cs.Letters()); got != tt.wantCount {
				t.Errorf("len(Letters()) = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestCharSet_Contains(t *testing.T) {
	cs := DefaultCharSet()
	cs.Add('A')
	cs.Add('C')

	tests := []struct {
		name string
		char rune
		want bool
	}{
		{"contains 'A'", 'A', true},
		{"contains 'B'", 'B', false},
		{"contains 'C'", 'C', true},
		{"below range", '0', false},
		{"above range", 'a', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cs.Contains(tt.char); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCharSet_ContainsAll(t *testing.T) {
	alpha := Alphabet()
	for _, tt := range []struct {
		word string
		want bool
	}{
		{"CAT", true},
		{"", true},
		{"cat", false},
		{"CA T", false},
		{"NAÏVE", false},
	} {
		if got := alpha.ContainsAll(tt.word); got != tt.want {
			t.Errorf("ContainsAll(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestCharSet_Letters(t *testing.T) {
	cs := DefaultCharSet()
	cs.Add('Z')
	cs.Add('A')
	cs.Add('M')
	if got, want := cs.Letters(), []rune{'A', 'M', 'Z'}; !slices.Equal(got, want) {
		t.Errorf("Letters() = %q, want %q", got, want)
	}
	if got := len(Alphabet().Letters()); got != 26 {
		t.Errorf("len(Alphabet().Letters()) = %d, want 26", got)
	}
}
