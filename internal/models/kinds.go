package models

import "fmt"

// TestKind says whether a test configuration runs against live or mock data.
type TestKind string

const (
	TestKindMock TestKind = "mock"
	TestKindLive TestKind = "live"
)

// ParseTestKind validates a raw kind value against the declared set.
func ParseTestKind(s string) (TestKind, error) {
	switch TestKind(s) {
	case TestKindMock, TestKindLive:
		return TestKind(s), nil
	}
	return "", fmt.Errorf("test kind %q: %w", s, ErrInvalidKind)
}

func (k TestKind) Valid() bool {
	_, err := ParseTestKind(string(k))
	return err == nil
}

// PredictionKind classifies the prediction output of a neural-network test.
// The value set is open: none are declared yet, registration is owned by
// whoever owns the prediction domain. An empty value is permitted; any
// unregistered non-empty value is rejected at write time.
type PredictionKind string

var predictionKinds = map[PredictionKind]struct{}{}

// RegisterPredictionKind adds a value to the declared set.
func RegisterPredictionKind(k PredictionKind) {
	predictionKinds[k] = struct{}{}
}

func (k PredictionKind) Valid() bool {
	if k == "" {
		return true
	}
	_, ok := predictionKinds[k]
	return ok
}

func (k PredictionKind) Validate() error {
	if !k.Valid() {
		return fmt.Errorf("prediction kind %q: %w", string(k), ErrInvalidKind)
	}
	return nil
}
