// Command consumer reads an Amazon Connect audio stream from Kinesis
// Video Streams and writes the call as a stereo WAV file, customer audio
// on the left channel and agent audio on the right.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"

	"github.com/heushreck/kvsaudio/audio"
	"github.com/heushreck/kvsaudio/ebml"
	"github.com/heushreck/kvsaudio/fragment"
	"github.com/heushreck/kvsaudio/kvs"
)

func main() {
	var (
		region = flag.String("region", "us-east-1", "region of the KVS stream")
		stream = flag.String("stream", "", "KVS stream name (required)")
		after  = flag.String("after-fragment", "", "resume after this fragment number instead of live")
		out    = flag.String("o", "combined_stereo_audio.wav", "output WAV file")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *stream == "" {
		log.Error("missing -stream")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(*region))
	if err != nil {
		log.Error("load aws config", "err", err)
		os.Exit(1)
	}

	opt := kvs.MediaOptions{StreamName: *stream, Start: kvs.StartNow()}
	if *after != "" {
		opt.Start = kvs.StartAfterFragment(*after)
	}
	media, err := kvs.OpenMedia(ctx, cfg, opt)
	if err != nil {
		log.Error("open media", "err", err)
		os.Exit(1)
	}
	defer media.Close()

	var (
		fromCustomer []byte
		toCustomer   []byte
		tracks       fragment.AudioTracks
		resolved     bool
	)

	c := kvs.NewConsumer(media, kvs.ConsumerOptions{StreamName: *stream, Logger: log})
	c.OnFragment = func(name string, raw []byte, doc *ebml.Document, elapsed time.Duration) {
		tags, err := fragment.ExtractTags(doc)
		if err != nil {
			log.Warn("skipping fragment", "err", err)
			return
		}
		log.Info("fragment received",
			"elapsed", elapsed,
			"fragment", tags.Get(fragment.TagContinuationToken),
			"millis_behind_live", tags.Get(fragment.TagMillisBehindNow),
			"producer_timestamp", tags.Get(fragment.TagProducerTimestamp),
			"server_timestamp", tags.Get(fragment.TagServerTimestamp))

		// Track definitions are stable per stream, resolve them once.
		if !resolved {
			tracks, err = fragment.ResolveAudioTracks(doc, log)
			if err != nil {
				log.Warn("skipping fragment", "err", err)
				return
			}
			resolved = true
		}

		refs, err := fragment.SimpleBlocks(doc)
		if err != nil {
			log.Warn("skipping fragment", "err", err)
			return
		}
		for _, ref := range refs {
			blk, err := fragment.DecodeBlock(raw[ref.Offset : ref.Offset+ref.Size])
			if err != nil {
				log.Warn("dropping block", "err", err)
				continue
			}
			switch blk.TrackNumber {
			case tracks.FromCustomer:
				fromCustomer = append(fromCustomer, blk.Payload...)
			case tracks.ToCustomer:
				toCustomer = append(toCustomer, blk.Payload...)
			}
		}
		log.Debug("audio accumulated",
			"from_customer", audio.Duration(len(fromCustomer)),
			"to_customer", audio.Duration(len(toCustomer)))
	}
	c.OnError = func(name string, err error) {
		log.Warn("fragment error", "err", err)
	}

	if err := c.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error("consumer stopped", "err", err)
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Error("create output", "err", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := audio.EncodeWAV(f, audio.Stereo(fromCustomer, toCustomer), 2); err != nil {
		log.Error("write wav", "err", err)
		os.Exit(1)
	}
	log.Info("wrote stereo recording", "file", *out,
		"duration", audio.Duration(max(len(fromCustomer), len(toCustomer))))
}
