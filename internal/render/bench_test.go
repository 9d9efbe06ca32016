package render

import (
	"testing"

	"github.com/san-kum/gravsim/internal/dynamo"
)

func BenchmarkMeshBuild(b *testing.B) {
	const n = 400
	f := dynamo.Frame{X: make([]float64, n), Y: make([]float64, n), R: make([]float64, n), Count: n}
	for i := range f.R {
		f.X[i] = float64(i) / n
		f.R[i] = 0.01
	}
	m := NewMesh(DefaultSectors)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Build(f)
	}
}
