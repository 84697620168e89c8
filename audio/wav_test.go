package audio

import (
	"bytes"
	"math"
	"testing"
)

func sineSamples(n int, freq float64, rate int) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = int16(16000 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}
	return samples
}

func TestWriteReadRoundTrip(t *testing.T) {
	samples := sineSamples(100, 440, 22050)

	var buf bytes.Buffer
	if err := WriteWAV(&buf, samples, 22050); err != nil {
		t.Fatalf("WriteWAV error: %v", err)
	}

	data := buf.Bytes()
	if !bytes.HasPrefix(data, []byte("RIFF")) {
		t.Errorf("output starts with %q, want RIFF", data[:4])
	}
	if len(data) != 44+len(samples)*2 {
		t.Errorf("len = %d, want %d", len(data), 44+len(samples)*2)
	}

	got, header, err := ReadWAV(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadWAV error: %v", err)
	}
	if header.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", header.SampleRate)
	}
	if header.NumChannels != 1 {
		t.Errorf("NumChannels = %d, want 1", header.NumChannels)
	}
	if header.BitsPerSample != 16 {
		t.Errorf("BitsPerSample = %d, want 16", header.BitsPerSample)
	}
	if header.NumSamples != len(samples) {
		t.Errorf("NumSamples = %d, want %d", header.NumSamples, len(samples))
	}
	for i := range samples {
		if got[i] != samples[i] {
			t.Fatalf("samples[%d] = %d, want %d", i, got[i], samples[i])
		}
	}
}

func TestWriteWAVEmptySamples(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWAV(&buf, nil, 8000); err != nil {
		t.Fatalf("WriteWAV error: %v", err)
	}
	if buf.Len() != 44 {
		t.Errorf("len = %d, want bare 44-byte container", buf.Len())
	}
}

func TestWriteWAVInvalidRate(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWAV(&buf, nil, 0); err == nil {
		t.Error("WriteWAV with rate 0 should fail")
	}
	if err := WriteWAV(&buf, nil, -8000); err == nil {
		t.Error("WriteWAV with negative rate should fail")
	}
}

func TestReadWAVRejectsGarbage(t *testing.T) {
	_, _, err := ReadWAV(bytes.NewReader([]byte("not a wav file at all")))
	if err == nil {
		t.Error("ReadWAV should reject non-RIFF data")
	}
}

func TestReadWAVFileMissing(t *testing.T) {
	_, _, err := ReadWAVFile("/nonexistent/path.wav")
	if err == nil {
		t.Error("ReadWAVFile should fail for missing path")
	}
}

func TestWriteWAVFileRoundTrip(t *testing.T) {
	path := t.TempDir() + "/out.wav"
	samples := sineSamples(50, 300, 16000)
	if err := WriteWAVFile(path, samples, 16000); err != nil {
		t.Fatalf("WriteWAVFile error: %v", err)
	}
	got, header, err := ReadWAVFile(path)
	if err != nil {
		t.Fatalf("ReadWAVFile error: %v", err)
	}
	if header.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", header.SampleRate)
	}
	if len(got) != len(samples) {
		t.Errorf("len = %d, want %d", len(got), len(samples))
	}
}
