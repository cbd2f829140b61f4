package utils

import (
	"math"
	"testing"
)

func cosine(a, b []float32) float64 {
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}

func TestTextToVector(t *testing.T) {
	const dims = 64

	beach := TextToVector("Beaches, water sports and nightlife", dims).Slice()
	if len(beach) != dims {
		t.Fatalf("len = %d, want %d", len(beach), dims)
	}

	var norm float64
	for _, v := range beach {
		norm += float64(v) * float64(v)
	}
	if math.Abs(norm-1) > 1e-5 {
		t.Errorf("vector is not normalized: |v|^2 = %v", norm)
	}

	again := TextToVector("beaches and water SPORTS, nightlife", dims).Slice()
	if math.Abs(cosine(beach, again)-1) > 1e-5 {
		t.Error("same words should produce the same direction")
	}

	mountains := TextToVector("snow mountains trekking", dims).Slice()
	if cosine(beach, mountains) >= cosine(beach, again) {
		t.Error("unrelated text should be further away")
	}

	for _, v := range TextToVector("a an of", dims).Slice() {
		if v != 0 {
			t.Fatal("short words only should give a zero vector")
		}
	}
}
