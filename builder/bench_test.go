package builder_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/happygraph/builder"
	"github.com/katalvlaran/happygraph/record"
)

// BenchmarkBuild_158 mirrors the size of the 2015 happiness dataset.
func BenchmarkBuild_158(b *testing.B) {
	store := record.Store{}
	for i := 0; i < 158; i++ {
		store.Add(record.Country{
			Name:           "C" + strconv.Itoa(i),
			Region:         "R" + strconv.Itoa(i%10),
			HappinessScore: 2.8 + float64(i)*0.03,
		})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = builder.Build(store)
	}
}
