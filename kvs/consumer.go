// Package kvs delivers MKV fragments from an Amazon Kinesis Video
// Streams GetMedia payload to per-fragment callbacks. It owns the
// network side of fragment processing; the decoding itself lives in the
// ebml and fragment packages.
package kvs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heushreck/kvsaudio/ebml"
)

// fragmentMagic is the EBML header ID that opens every fragment in a
// GetMedia payload. The stream is split on its occurrences, the same
// boundary rule the KVS producer relies on.
var fragmentMagic = []byte{0x1a, 0x45, 0xdf, 0xa3}

const defaultChunkSize = 8192

// FragmentHandler receives one complete fragment: its raw bytes, the
// tree parsed from them and the time spent receiving it. raw and doc are
// owned by the handler once it returns; the consumer does not reuse them.
type FragmentHandler func(streamName string, raw []byte, doc *ebml.Document, elapsed time.Duration)

// ConsumerOptions configure a Consumer.
type ConsumerOptions struct {
	// StreamName identifies the stream in callbacks and log records, so
	// several consumers can share one handler.
	StreamName string
	// Logger receives consumer diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
	// ChunkSize is the read size against the media payload.
	ChunkSize int
}

// Consumer splits a GetMedia payload into MKV fragments and hands each
// one to the configured callbacks. Callbacks run on the goroutine that
// called Run, in fragment arrival order; per-role audio accumulation in
// a handler therefore needs no extra sequencing.
type Consumer struct {
	// OnFragment is called for every fragment that parses.
	OnFragment FragmentHandler
	// OnError is called for fragments that fail to parse. The consumer
	// drops the fragment and keeps reading; whether to abandon the
	// stream is the application's decision.
	OnError func(streamName string, err error)
	// OnComplete is called once when the payload ends gracefully.
	OnComplete func(streamName string)

	r     io.Reader
	name  string
	id    string
	chunk int
	log   *slog.Logger
}

// NewConsumer wraps a GetMedia payload stream. Set the callbacks before
// calling Run.
func NewConsumer(media io.Reader, opt ConsumerOptions) *Consumer {
	log := opt.Logger
	if log == nil {
		log = slog.Default()
	}
	chunk := opt.ChunkSize
	if chunk <= 0 {
		chunk = defaultChunkSize
	}

	return &Consumer{
		r:     media,
		name:  opt.StreamName,
		id:    uuid.NewString(),
		chunk: chunk,
		log:   log.With("stream", opt.StreamName),
	}
}

// Run reads the media payload until it ends or ctx is cancelled. It
// returns nil on a graceful end of stream, ctx.Err() on cancellation and
// the read error otherwise.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Info("starting media consumer", "consumer_id", c.id)

	var buf []byte
	chunk := make([]byte, c.chunk)
	started := time.Now()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := c.r.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			buf = c.emit(buf, &started)
		}
		if errors.Is(err, io.EOF) {
			c.flush(buf, started)
			c.log.Info("media stream complete", "consumer_id", c.id)
			if c.OnComplete != nil {
				c.OnComplete(c.name)
			}
			return nil
		}
		if err != nil {
			c.log.Error("media stream read failed", "consumer_id", c.id, "err", err)
			if c.OnError != nil {
				c.OnError(c.name, err)
			}
			return err
		}
	}
}

// emit delivers every complete fragment currently in buf and returns the
// unconsumed remainder.
func (c *Consumer) emit(buf []byte, started *time.Time) []byte {
	for {
		start := bytes.Index(buf, fragmentMagic)
		if start < 0 {
			// Keep a tail that could be the beginning of a magic split
			// across reads; anything before it cannot open a fragment.
			if tail := len(fragmentMagic) - 1; len(buf) > tail {
				buf = buf[len(buf)-tail:]
			}
			return buf
		}

		next := bytes.Index(buf[start+len(fragmentMagic):], fragmentMagic)
		if next < 0 {
			return buf[start:]
		}
		end := start + len(fragmentMagic) + next

		c.deliver(buf[start:end], time.Since(*started))
		*started = time.Now()
		buf = buf[end:]
	}
}

// flush delivers the trailing fragment once the stream has ended.
func (c *Consumer) flush(buf []byte, started time.Time) {
	if start := bytes.Index(buf, fragmentMagic); start >= 0 {
		c.deliver(buf[start:], time.Since(started))
	}
}

func (c *Consumer) deliver(raw []byte, elapsed time.Duration) {
	// The working buffer is reused across reads, so the fragment handed
	// out must not alias it.
	frag := append([]byte(nil), raw...)

	doc, err := ebml.Parse(frag)
	if err != nil {
		c.log.Warn("dropping undecodable fragment", "consumer_id", c.id, "size", len(frag), "err", err)
		if c.OnError != nil {
			c.OnError(c.name, err)
		}
		return
	}

	if c.OnFragment != nil {
		c.OnFragment(c.name, frag, doc, elapsed)
	}
}
