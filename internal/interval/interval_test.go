package interval

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"disjoint before", "2024-01-10", "2024-01-15", "2024-01-15", "2024-01-20", false},
		{"disjoint after", "2024-01-15", "2024-01-20", "2024-01-10", "2024-01-15", false},
		{"partial overlap", "2024-01-10", "2024-01-15", "2024-01-12", "2024-01-18", true},
		{"contained", "2024-01-10", "2024-01-20", "2024-01-12", "2024-01-14", true},
		{"identical", "2024-01-10", "2024-01-15", "2024-01-10", "2024-01-15", true},
		{"single shared night", "2024-01-10", "2024-01-15", "2024-01-14", "2024-01-16", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(day(tc.aStart), day(tc.aEnd), day(tc.bStart), day(tc.bEnd))
			if got != tc.want {
				t.Fatalf("Overlaps(%s,%s,%s,%s) = %v, want %v", tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
		})
	}
}

func TestClip(t *testing.T) {
	// booking fully inside the window is untouched
	s, e, ok := Clip(day("2024-01-12"), day("2024-01-14"), day("2024-01-10"), day("2024-01-20"))
	if !ok || !s.Equal(day("2024-01-12")) || !e.Equal(day("2024-01-14")) {
		t.Fatalf("inside clip = (%v,%v,%v)", s, e, ok)
	}

	// booking straddling both edges is trimmed to the window
	s, e, ok = Clip(day("2024-01-05"), day("2024-01-25"), day("2024-01-10"), day("2024-01-20"))
	if !ok || !s.Equal(day("2024-01-10")) || !e.Equal(day("2024-01-20")) {
		t.Fatalf("straddle clip = (%v,%v,%v)", s, e, ok)
	}

	// disjoint ranges yield no intersection
	if _, _, ok := Clip(day("2024-01-01"), day("2024-01-05"), day("2024-01-10"), day("2024-01-20")); ok {
		t.Fatal("disjoint ranges reported an intersection")
	}

	// a range ending exactly at the window start is disjoint (half-open)
	if _, _, ok := Clip(day("2024-01-05"), day("2024-01-10"), day("2024-01-10"), day("2024-01-20")); ok {
		t.Fatal("touching ranges reported an intersection")
	}
}

func TestNights(t *testing.T) {
	n, err := Nights(day("2024-01-10"), day("2024-01-15"))
	if err != nil || n != 5 {
		t.Fatalf("Nights = (%d, %v), want (5, nil)", n, err)
	}

	n, err = Nights(day("2024-01-10"), day("2024-01-11"))
	if err != nil || n != 1 {
		t.Fatalf("one night = (%d, %v)", n, err)
	}

	if _, err := Nights(day("2024-01-10"), day("2024-01-10")); err != ErrInvalidRange {
		t.Fatalf("zero-length range: err = %v, want ErrInvalidRange", err)
	}
	if _, err := Nights(day("2024-01-15"), day("2024-01-10")); err != ErrInvalidRange {
		t.Fatalf("reversed range: err = %v, want ErrInvalidRange", err)
	}
}

func TestDate(t *testing.T) {
	in := time.Date(2024, 3, 7, 22, 45, 11, 0, time.FixedZone("X", 3*3600))
	want := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC) // 22:45+03:00 is 19:45 UTC, same calendar day
	if got := Date(in); !got.Equal(want) {
		t.Fatalf("Date(%v) = %v, want %v", in, got, want)
	}
}
