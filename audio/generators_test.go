package audio

import (
	"math"
	"testing"
)

func streamAll(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
	Err() error
}, chunks int) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < chunks; i++ {
		n, ok := s.Stream(buf)
		if !ok {
			t.Fatal("generator must stream indefinitely")
		}
		for _, frame := range buf[:n] {
			out = append(out, frame[0])
			if frame[0] != frame[1] {
				t.Fatal("generators are mono, channels must match")
			}
		}
	}
	if s.Err() != nil {
		t.Fatalf("generator error: %v", s.Err())
	}
	return out
}

func TestBlipGeneratorBounds(t *testing.T) {
	samples := streamAll(t, NewBlipGenerator(sampleRate), 8)
	for i, v := range samples {
		if math.Abs(v) > 1 {
			t.Fatalf("sample %d = %v, out of [-1,1]", i, v)
		}
	}
}

func TestBlipDecays(t *testing.T) {
	samples := streamAll(t, NewBlipGenerator(sampleRate), 16)
	peakEarly, peakLate := 0.0, 0.0
	half := len(samples) / 2
	for i, v := range samples {
		if i < half {
			peakEarly = math.Max(peakEarly, math.Abs(v))
		} else {
			peakLate = math.Max(peakLate, math.Abs(v))
		}
	}
	if peakLate >= peakEarly {
		t.Errorf("blip must decay: early peak %v, late peak %v", peakEarly, peakLate)
	}
}

func TestCrashGeneratorBounds(t *testing.T) {
	samples := streamAll(t, NewCrashGenerator(sampleRate), 8)
	for i, v := range samples {
		if math.Abs(v) > 1 {
			t.Fatalf("sample %d = %v, out of [-1,1]", i, v)
		}
	}
	if samples[0] != 0 {
		t.Errorf("crash must fade in from silence, got %v", samples[0])
	}
}
