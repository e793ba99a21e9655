package kvs

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesisvideo"
	kvtypes "github.com/aws/aws-sdk-go-v2/service/kinesisvideo/types"
	"github.com/aws/aws-sdk-go-v2/service/kinesisvideomedia"
	mediatypes "github.com/aws/aws-sdk-go-v2/service/kinesisvideomedia/types"
)

// MediaOptions select the stream to read and where to start.
type MediaOptions struct {
	StreamName string
	Start      mediatypes.StartSelector
}

// StartNow starts reading at the newest available fragment.
func StartNow() mediatypes.StartSelector {
	return mediatypes.StartSelector{
		StartSelectorType: mediatypes.StartSelectorTypeNow,
	}
}

// StartAfterFragment resumes reading right after the given fragment
// number, typically the continuation token tag of the last fragment an
// application processed before an interruption.
func StartAfterFragment(number string) mediatypes.StartSelector {
	return mediatypes.StartSelector{
		StartSelectorType:   mediatypes.StartSelectorTypeFragmentNumber,
		AfterFragmentNumber: aws.String(number),
	}
}

// OpenMedia resolves the stream's GET_MEDIA data endpoint and starts a
// GetMedia call against it. The returned payload is the raw MKV fragment
// sequence, ready for a Consumer. Closing it is the caller's job.
//
// GetMedia endpoints are per stream and per API, so the endpoint lookup
// cannot be skipped or cached across streams.
func OpenMedia(ctx context.Context, cfg aws.Config, opt MediaOptions) (io.ReadCloser, error) {
	kv := kinesisvideo.NewFromConfig(cfg)
	ep, err := kv.GetDataEndpoint(ctx, &kinesisvideo.GetDataEndpointInput{
		APIName:    kvtypes.APINameGetMedia,
		StreamName: aws.String(opt.StreamName),
	})
	if err != nil {
		return nil, fmt.Errorf("kvs: get data endpoint for %s: %w", opt.StreamName, err)
	}

	media := kinesisvideomedia.NewFromConfig(cfg, func(o *kinesisvideomedia.Options) {
		o.BaseEndpoint = ep.DataEndpoint
	})
	out, err := media.GetMedia(ctx, &kinesisvideomedia.GetMediaInput{
		StartSelector: &opt.Start,
		StreamName:    aws.String(opt.StreamName),
	})
	if err != nil {
		return nil, fmt.Errorf("kvs: get media for %s: %w", opt.StreamName, err)
	}

	return out.Payload, nil
}
