// A wrapper around *testing.T. I hate the if a != b { t.ErrorF(....) } pattern.
// Used by the listupdate tests and anything rendering their results.
package assert

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// a == b
func Equal[T comparable](t *testing.T, actual T, expected T) {
	t.Helper()
	if actual != expected {
		t.Errorf("expected '%v' to equal '%v'", actual, expected)
		t.FailNow()
	}
}

// Two lists are equal (same length & same values in the same order)
func List[T comparable](t *testing.T, actuals []T, expecteds []T) {
	t.Helper()
	if len(actuals) != len(expecteds) {
		t.Errorf("expected %d values %v, got %d: %v", len(expecteds), expecteds, len(actuals), actuals)
		t.FailNow()
	}

	for i, actual := range actuals {
		if actual != expecteds[i] {
			t.Errorf("expected %v, got %v (first difference at position %d: '%v' instead of '%v')", expecteds, actuals, i, actual, expecteds[i])
			t.FailNow()
		}
	}
}

// Same values, any order. Counts matter: [1,1,2] doesn't match [1,2,2]
func Permutation[T comparable](t *testing.T, actuals []T, expecteds []T) {
	t.Helper()
	counts := make(map[T]int, len(expecteds))
	for _, expected := range expecteds {
		counts[expected] += 1
	}
	for _, actual := range actuals {
		counts[actual] -= 1
	}
	for _, count := range counts {
		if count != 0 {
			t.Errorf("expected '%v' to be a permutation of '%v'", actuals, expecteds)
			t.FailNow()
		}
	}
}

// A value is nil
func Nil(t *testing.T, actual interface{}) {
	t.Helper()
	if actual != nil && !reflect.ValueOf(actual).IsNil() {
		t.Errorf("expected %v to be nil", actual)
		t.FailNow()
	}
}

// A value is not nil
func NotNil(t *testing.T, actual interface{}) {
	t.Helper()
	if actual == nil || reflect.ValueOf(actual).IsNil() {
		t.Errorf("expected %v to be not nil", actual)
		t.FailNow()
	}
}

// A value is true
func True(t *testing.T, actual bool) {
	t.Helper()
	if !actual {
		t.Error("expected true, got false")
		t.FailNow()
	}
}

// A value is false
func False(t *testing.T, actual bool) {
	t.Helper()
	if actual {
		t.Error("expected false, got true")
		t.FailNow()
	}
}

// The string contains the given value
func StringContains(t *testing.T, actual string, expected string) {
	t.Helper()
	if !strings.Contains(actual, expected) {
		t.Errorf("expected %s to contain %s", actual, expected)
		t.FailNow()
	}
}

// errors.Is(actual, expected)
func ErrorIs(t *testing.T, actual error, expected error) {
	t.Helper()
	if !errors.Is(actual, expected) {
		t.Errorf("expected '%v' to be '%v'", actual, expected)
		t.FailNow()
	}
}
