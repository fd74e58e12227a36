package engine

import (
	"reflect"
	"testing"
)

func TestEngine_Split_NPlusOneParts(t *testing.T) {
	e := newTestEngine(t)
	parts, err := e.Split(",", "a,b,c", NFA)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(parts, want) {
		t.Errorf("Split = %v, want %v", parts, want)
	}
}

func TestEngine_Split_BoundaryMatchesProduceEmptyParts(t *testing.T) {
	e := newTestEngine(t)
	parts, err := e.Split(",", ",a,,b,", NFA)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	want := []string{"", "a", "", "b", ""}
	if !reflect.DeepEqual(parts, want) {
		t.Errorf("Split = %v, want %v", parts, want)
	}
}

func TestEngine_Split_NoMatchReturnsWholeInput(t *testing.T) {
	e := newTestEngine(t)
	parts, err := e.Split(",", "abc", NFA)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(parts) != 1 || parts[0] != "abc" {
		t.Errorf("Split with no delimiter = %v, want [\"abc\"]", parts)
	}
}
