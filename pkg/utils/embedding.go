package utils

import (
	"hash/fnv"
	"math"
	"strings"
	"unicode"

	"github.com/pgvector/pgvector-go"
)

// TextToVector builds a normalized hashed bag-of-words vector. It is not a
// semantic embedding; it only makes texts that share words close under cosine
// distance, which is enough to rank a small destination catalog by interests.
func TextToVector(text string, dimensions int) pgvector.Vector {
	vector := make([]float32, dimensions)

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, word := range words {
		if len(word) < 3 {
			continue
		}
		h := hashWord(word)
		vector[h%uint32(dimensions)] += 1
		vector[(h>>16)%uint32(dimensions)] += 0.5
	}

	var magnitude float64
	for _, v := range vector {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)
	if magnitude > 0 {
		for i := range vector {
			vector[i] = float32(float64(vector[i]) / magnitude)
		}
	}

	return pgvector.NewVector(vector)
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}
