package dragdrop

import (
	"errors"
	"testing"
)

func TestEncodeEffects_Empty(t *testing.T) {
	token, err := EncodeEffects()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "none" {
		t.Errorf("expected \"none\", got %q", token)
	}
}

func TestEncodeEffects_Single(t *testing.T) {
	for _, e := range []Effect{EffectMove, EffectCopy, EffectLink} {
		token, err := EncodeEffects(e)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", e, err)
		}
		if token != string(e) {
			t.Errorf("%s: expected %q, got %q", e, string(e), token)
		}
	}
}

func TestEncodeEffects_All(t *testing.T) {
	// "all" regardless of input order
	orders := [][]Effect{
		{EffectMove, EffectCopy, EffectLink},
		{EffectLink, EffectMove, EffectCopy},
		{EffectCopy, EffectLink, EffectMove},
	}
	for _, effects := range orders {
		token, err := EncodeEffects(effects...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", effects, err)
		}
		if token != "all" {
			t.Errorf("%v: expected \"all\", got %q", effects, token)
		}
	}
}

func TestEncodeEffects_Pairs(t *testing.T) {
	testCases := []struct {
		effects  []Effect
		expected string
	}{
		{[]Effect{EffectMove, EffectCopy}, "copyMove"},
		{[]Effect{EffectCopy, EffectMove}, "copyMove"},
		{[]Effect{EffectLink, EffectCopy}, "copyLink"},
		{[]Effect{EffectMove, EffectLink}, "linkMove"},
	}

	for _, tc := range testCases {
		token, err := EncodeEffects(tc.effects...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tc.effects, err)
		}
		if token != tc.expected {
			t.Errorf("%v: expected %q, got %q", tc.effects, tc.expected, token)
		}
	}
}

func TestEncodeEffects_Duplicates(t *testing.T) {
	// Duplicates are not collapsed; they sort and fold like any other
	// collection.
	token, err := EncodeEffects(EffectMove, EffectMove)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "moveMove" {
		t.Errorf("expected \"moveMove\", got %q", token)
	}
}

func TestEncodeEffects_Invalid(t *testing.T) {
	for _, bad := range []Effect{"42", "paste", ""} {
		_, err := EncodeEffects(bad)
		if err == nil {
			t.Fatalf("%q: expected error, got none", bad)
		}
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%q: expected ErrInvalidConfig, got %v", bad, err)
		}
	}
}

func TestEncodeEffects_InvalidAmongValid(t *testing.T) {
	_, err := EncodeEffects(EffectMove, "shred")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
