package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubLocator struct {
	coord domain.Coordinate
	err   error
	calls int
}

func (s *stubLocator) Locate(_ context.Context, _ string) (domain.Coordinate, error) {
	s.calls++
	return s.coord, s.err
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var testFence = domain.WorkplaceGeofence{
	Center:       domain.Coordinate{Latitude: 13.7563, Longitude: 100.5018},
	RadiusMeters: 50,
}

func testReading(lat, lng, accuracy float64) domain.LocationReading {
	return domain.LocationReading{
		Coordinate:     domain.Coordinate{Latitude: lat, Longitude: lng},
		AccuracyMeters: accuracy,
		Timestamp:      time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
}

func newVerifier(locator *stubLocator) *LocationVerifier {
	if locator == nil {
		return NewLocationVerifier(VerifierConfig{}, nil, zerolog.Nop())
	}
	return NewLocationVerifier(VerifierConfig{}, locator, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestVerifyLocation_AccuracyTooLow(t *testing.T) {
	v := newVerifier(nil)
	// Reading is dead center in the fence; poor accuracy must still reject.
	reading := testReading(13.7563, 100.5018, 150)

	res, err := v.VerifyLocation(context.Background(), reading, testFence, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Verified {
		t.Fatal("expected rejection")
	}
	if res.Reason != domain.ReasonAccuracyTooLow {
		t.Errorf("reason = %s, want ACCURACY_TOO_LOW", res.Reason)
	}
}

func TestVerifyLocation_OutsideRadius(t *testing.T) {
	v := newVerifier(nil)
	// ~111 m north of the fence center, 50 m radius.
	reading := testReading(13.7573, 100.5018, 10)

	res, err := v.VerifyLocation(context.Background(), reading, testFence, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Verified {
		t.Fatal("expected rejection")
	}
	if res.Reason != domain.ReasonOutsideRadius {
		t.Errorf("reason = %s, want OUTSIDE_RADIUS", res.Reason)
	}
	if res.DistanceMeters < 100 || res.DistanceMeters > 125 {
		t.Errorf("distance = %f, want ~111 m", res.DistanceMeters)
	}
}

func TestVerifyLocation_InsideRadius(t *testing.T) {
	v := newVerifier(nil)
	reading := testReading(13.7563, 100.5018, 10)

	res, err := v.VerifyLocation(context.Background(), reading, testFence, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Verified {
		t.Fatalf("expected success, got reason %s", res.Reason)
	}
	if res.AccuracyMeters != 10 {
		t.Errorf("accuracy = %f, want 10", res.AccuracyMeters)
	}
}

func TestVerifyLocation_DefaultRadiusApplied(t *testing.T) {
	v := newVerifier(nil)
	fence := domain.WorkplaceGeofence{Center: testFence.Center} // no radius configured
	// ~33 m from center: inside the 50 m default.
	reading := testReading(13.7566, 100.5018, 10)

	res, err := v.VerifyLocation(context.Background(), reading, fence, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Verified {
		t.Fatalf("expected success with default radius, got reason %s", res.Reason)
	}
}

func TestVerifyLocation_IPMismatch(t *testing.T) {
	// IP resolves ~560 km away from the GPS fix: well past the 10 km cut.
	locator := &stubLocator{coord: domain.Coordinate{Latitude: 18.7883, Longitude: 98.9853}}
	v := newVerifier(locator)
	reading := testReading(13.7563, 100.5018, 10)

	res, err := v.VerifyLocation(context.Background(), reading, testFence, "203.0.113.7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Verified {
		t.Fatal("expected rejection")
	}
	if res.Reason != domain.ReasonIPMismatch {
		t.Errorf("reason = %s, want IP_MISMATCH", res.Reason)
	}
}

func TestVerifyLocation_IPLookupFailureSkipsCheck(t *testing.T) {
	locator := &stubLocator{err: errors.New("lookup timeout")}
	v := newVerifier(locator)
	reading := testReading(13.7563, 100.5018, 10)

	res, err := v.VerifyLocation(context.Background(), reading, testFence, "203.0.113.7")
	if err != nil {
		t.Fatalf("lookup failure must not propagate: %v", err)
	}
	if !res.Verified {
		t.Fatalf("expected success when lookup degrades, got reason %s", res.Reason)
	}
	if locator.calls != 1 {
		t.Errorf("locator called %d times, want exactly 1 (no retry)", locator.calls)
	}
}

func TestVerifyLocation_NoClientIPSkipsLookup(t *testing.T) {
	locator := &stubLocator{coord: domain.Coordinate{Latitude: 0, Longitude: 0}}
	v := newVerifier(locator)
	reading := testReading(13.7563, 100.5018, 10)

	res, err := v.VerifyLocation(context.Background(), reading, testFence, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Verified {
		t.Fatal("expected success")
	}
	if locator.calls != 0 {
		t.Errorf("locator called %d times without a client ip", locator.calls)
	}
}

func TestVerifyLocation_InvalidCoordinateFailsFast(t *testing.T) {
	v := newVerifier(nil)
	reading := testReading(91.0, 100.5018, 10)

	_, err := v.VerifyLocation(context.Background(), reading, testFence, "")
	if !errors.Is(err, domain.ErrInvalidCoordinate) {
		t.Errorf("expected ErrInvalidCoordinate, got %v", err)
	}
}

func TestVerifyLocation_NegativeAccuracyRejected(t *testing.T) {
	v := newVerifier(nil)
	reading := testReading(13.7563, 100.5018, -1)

	_, err := v.VerifyLocation(context.Background(), reading, testFence, "")
	if !errors.Is(err, domain.ErrNegativeAccuracy) {
		t.Errorf("expected ErrNegativeAccuracy, got %v", err)
	}
}
