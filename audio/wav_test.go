package audio

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	values := []struct {
		n int
		d time.Duration
	}{
		{0, 0},
		{BytesPerSample * SampleRate, time.Second},
		{BytesPerSample * SampleRate / 2, 500 * time.Millisecond},
		{BytesPerSample * SampleRate * 90, 90 * time.Second},
	}
	for _, ex := range values {
		if d := Duration(ex.n); d != ex.d {
			t.Errorf("%d bytes: expected %s, got %s", ex.n, ex.d, d)
		}
	}
}

func TestStereoInterleave(t *testing.T) {
	left := []byte{0x01, 0x02, 0x03, 0x04}
	right := []byte{0x11, 0x12, 0x13, 0x14}

	got := Stereo(left, right)
	want := []byte{0x01, 0x02, 0x11, 0x12, 0x03, 0x04, 0x13, 0x14}
	if !bytes.Equal(got, want) {
		t.Errorf("expected % x, got % x", want, got)
	}
}

func TestStereoPadsShorterChannel(t *testing.T) {
	left := []byte{0x01, 0x02, 0x03, 0x04}
	right := []byte{0x11, 0x12}

	got := Stereo(left, right)
	want := []byte{0x01, 0x02, 0x11, 0x12, 0x03, 0x04, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("expected % x, got % x", want, got)
	}

	// Symmetric when the left side is short.
	got = Stereo(right, left)
	want = []byte{0x11, 0x12, 0x01, 0x02, 0x00, 0x00, 0x03, 0x04}
	if !bytes.Equal(got, want) {
		t.Errorf("expected % x, got % x", want, got)
	}
}

func TestStereoDropsOddByte(t *testing.T) {
	got := Stereo([]byte{0x01, 0x02, 0x03}, nil)
	want := []byte{0x01, 0x02, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("expected % x, got % x", want, got)
	}
}

func TestEncodeWAV(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x11, 0x12}
	var buf bytes.Buffer
	if err := EncodeWAV(&buf, pcm, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := buf.Bytes()
	if len(b) != 44+len(pcm) {
		t.Fatalf("expected %d bytes, got %d", 44+len(pcm), len(b))
	}
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" || string(b[12:16]) != "fmt " {
		t.Fatalf("bad header magic: % x", b[:16])
	}
	if got := binary.LittleEndian.Uint32(b[4:8]); got != uint32(36+len(pcm)) {
		t.Errorf("riff size: expected %d, got %d", 36+len(pcm), got)
	}
	if got := binary.LittleEndian.Uint16(b[20:22]); got != 1 {
		t.Errorf("format: expected PCM (1), got %d", got)
	}
	if got := binary.LittleEndian.Uint16(b[22:24]); got != 2 {
		t.Errorf("channels: expected 2, got %d", got)
	}
	if got := binary.LittleEndian.Uint32(b[24:28]); got != SampleRate {
		t.Errorf("sample rate: expected %d, got %d", SampleRate, got)
	}
	if got := binary.LittleEndian.Uint32(b[28:32]); got != SampleRate*4 {
		t.Errorf("byte rate: expected %d, got %d", SampleRate*4, got)
	}
	if got := binary.LittleEndian.Uint16(b[32:34]); got != 4 {
		t.Errorf("block align: expected 4, got %d", got)
	}
	if got := binary.LittleEndian.Uint16(b[34:36]); got != 16 {
		t.Errorf("bits per sample: expected 16, got %d", got)
	}
	if got := binary.LittleEndian.Uint32(b[40:44]); got != uint32(len(pcm)) {
		t.Errorf("data size: expected %d, got %d", len(pcm), got)
	}
	if !bytes.Equal(b[44:], pcm) {
		t.Errorf("payload mismatch")
	}
}

func TestEncodeWAVBadChannels(t *testing.T) {
	if err := EncodeWAV(&bytes.Buffer{}, nil, 0); err == nil {
		t.Error("expected error for zero channels")
	}
}
