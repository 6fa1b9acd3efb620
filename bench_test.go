package sobol

import "testing"

var (
	benchSink  float32
	benchSink4 [4]float32
	benchPoint [32]float32
)

func BenchmarkSample(b *testing.B) {
	var i uint32
	for b.Loop() {
		benchSink = Sample(i&(MaxSamples-1), 0, 1234567890)
		i++
	}
}

func BenchmarkSample4D(b *testing.B) {
	var i uint32
	for b.Loop() {
		benchSink4 = Sample4D(i&(MaxSamples-1), 0, 1234567890)
		i++
	}
}

func BenchmarkSample4DIncoherent(b *testing.B) {
	var i uint32
	for b.Loop() {
		benchSink4 = Sample4D((i*512)&(MaxSamples-1), (i*97)%32, i*0x9e3779b9)
		i++
	}
}

func BenchmarkShuffledSample(b *testing.B) {
	var i uint32
	for b.Loop() {
		benchSink = ShuffledSample(i&(MaxSamples-1), 5, 42)
		i++
	}
}

func BenchmarkPoint32(b *testing.B) {
	var i uint32
	for b.Loop() {
		Point(benchPoint[:], i&(MaxSamples-1), 42)
		i++
	}
}
