package acquire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/pose"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/telemetry/tracing"
)

// MinKeypointConfidence - keypoints at or below this estimator
// confidence are treated as not detected.
const MinKeypointConfidence = 0.1

var (
	ErrNoVideoTrack = errors.New("video has no video track")
	ErrEmptyVideo   = errors.New("no frames could be read from video")
	ErrDecodeFailed = errors.New("video decode failed")
)

//go:generate mockgen -source=$GOFILE -destination=acquire_mocks_test.go -package=acquire_test

// Frame is one decoded video frame: the encoded image bytes plus its
// presentation timestamp from the start of the video.
type Frame struct {
	Data      []byte
	Timestamp time.Duration
}

// Track reads the frames of one video track strictly in presentation
// order. Next returns io.EOF after the last frame; any other error is
// terminal for the track.
type Track interface {
	Next(ctx context.Context) (*Frame, error)
	// FrameRate returns the nominal frames per second when the
	// container declares one.
	FrameRate() (float64, bool)
	Close() error
}

// VideoSource is the video-decode collaborator. Implementations open
// the first video track of a stored video and can materialize single
// frames at arbitrary timestamps.
type VideoSource interface {
	// OpenTrack returns ErrNoVideoTrack when the video has no video track.
	OpenTrack(ctx context.Context, videoID string) (Track, error)
	// SnapshotAt returns the encoded frame nearest to the given
	// timestamp, without interpolation.
	SnapshotAt(ctx context.Context, videoID string, at time.Duration) ([]byte, error)
}

// Keypoint is a raw estimator output for one joint.
type Keypoint struct {
	X          float64
	Y          float64
	Confidence float64
}

// Keypoints maps each tracked joint to its raw estimate; a nil slot
// means the estimator produced nothing for that joint.
type Keypoints [pose.NumJoints]*Keypoint

// PoseEstimator is the pose-estimation collaborator, invoked once per
// decoded frame.
type PoseEstimator interface {
	Estimate(ctx context.Context, frame *Frame) (Keypoints, error)
}

// Acquirer drives the decode and pose-estimation collaborators to turn
// a video into an ordered, timestamped pose timeline.
type Acquirer struct {
	source    VideoSource
	estimator PoseEstimator
}

func NewAcquirer(source VideoSource, estimator PoseEstimator) *Acquirer {
	return &Acquirer{
		source:    source,
		estimator: estimator,
	}
}

// Timeline reads every frame of the video's first video track and runs
// pose estimation on each one. A frame whose estimation fails is kept
// as an empty sample so frame indices stay aligned with the video;
// the call fails only when the track cannot be opened, the decode
// stream itself breaks, or no frames could be read at all.
func (a *Acquirer) Timeline(ctx context.Context, videoID string) (_ *pose.Timeline, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "acquire.formcheck.timeline")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	track, err := a.source.OpenTrack(ctx, videoID)
	if err != nil {
		if errors.Is(err, ErrNoVideoTrack) {
			return nil, ErrNoVideoTrack
		}
		return nil, fmt.Errorf("open video track: %w", err)
	}
	defer func() {
		if closeErr := track.Close(); closeErr != nil {
			log.Warnf("close track of video [%s]: %s", videoID, closeErr)
		}
	}()

	tl := pose.NewTimeline()
	if fps, ok := track.FrameRate(); ok && fps > 0 {
		tl.SetFrameDuration(time.Duration(float64(time.Second) / fps))
	}

	var estimationErrs error
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		frame, err := track.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if tl.Len() == 0 {
				return nil, fmt.Errorf("%w: %s", ErrDecodeFailed, err)
			}
			// stream broke after frames were already read
			return nil, fmt.Errorf("%w after %d frames: %s", ErrDecodeFailed, tl.Len(), err)
		}

		sample, err := a.estimateSample(ctx, frame)
		if err != nil {
			// keep the frame as an empty sample so indices stay aligned
			estimationErrs = multierr.Append(
				estimationErrs,
				fmt.Errorf("frame %d: %w", tl.Len(), err),
			)
			sample = pose.EmptySample()
		}
		tl.Append(sample, frame.Timestamp)
	}

	if estimationErrs != nil {
		log.Debugf("pose estimation failed for %d/%d frames of video [%s]: %s",
			len(multierr.Errors(estimationErrs)), tl.Len(), videoID, estimationErrs)
	}

	if tl.Len() == 0 {
		return nil, ErrEmptyVideo
	}

	log.Tracef("acquired timeline for video [%s]: %d frames", videoID, tl.Len())

	return tl, nil
}

func (a *Acquirer) estimateSample(ctx context.Context, frame *Frame) (pose.Sample, error) {
	keypoints, err := a.estimator.Estimate(ctx, frame)
	if err != nil {
		return pose.Sample{}, fmt.Errorf("estimate pose: %w", err)
	}

	var sample pose.Sample
	for j := 0; j < pose.NumJoints; j++ {
		kp := keypoints[j]
		if kp == nil || kp.Confidence <= MinKeypointConfidence {
			continue
		}
		sample.Joints[j] = &pose.Point{X: kp.X, Y: kp.Y}
	}
	return sample, nil
}
