// Package audio turns the raw PCM accumulated from a KVS contact into a
// playable WAV file. Amazon Connect publishes both audio directions as
// signed 16 bit little-endian mono at 8 kHz; the constants here encode
// that contract rather than configure it.
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

const (
	SampleRate     = 8000
	BytesPerSample = 2
)

// Duration reports the play time of n bytes of one mono role buffer.
func Duration(n int) time.Duration {
	samples := n / BytesPerSample
	return time.Duration(samples) * time.Second / SampleRate
}

// Stereo interleaves two mono PCM buffers into one stereo buffer, left
// channel first. The shorter side is padded with silence so both
// channels cover the same time span; a trailing odd byte is dropped to
// keep sample alignment.
//
// By convention the customer's audio goes on the left channel and the
// agent's on the right, which keeps channel-split transcription simple.
func Stereo(left, right []byte) []byte {
	left = left[:len(left)-len(left)%BytesPerSample]
	right = right[:len(right)-len(right)%BytesPerSample]

	n := len(left)
	if len(right) > n {
		n = len(right)
	}

	out := make([]byte, 0, 2*n)
	for i := 0; i < n; i += BytesPerSample {
		out = appendSample(out, left, i)
		out = appendSample(out, right, i)
	}
	return out
}

func appendSample(out, pcm []byte, i int) []byte {
	if i+BytesPerSample <= len(pcm) {
		return append(out, pcm[i:i+BytesPerSample]...)
	}
	return append(out, 0, 0) // silence
}

// EncodeWAV writes pcm as a 16 bit PCM RIFF/WAVE stream. pcm must be
// interleaved when channels is greater than one.
func EncodeWAV(w io.Writer, pcm []byte, channels int) error {
	if channels < 1 {
		return fmt.Errorf("audio: invalid channel count %d", channels)
	}

	blockAlign := channels * BytesPerSample
	header := make([]byte, 44)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+len(pcm)))
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], SampleRate)
	binary.LittleEndian.PutUint32(header[28:32], uint32(SampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], 8*BytesPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(len(pcm)))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("audio: write wav header: %w", err)
	}
	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("audio: write wav data: %w", err)
	}
	return nil
}
