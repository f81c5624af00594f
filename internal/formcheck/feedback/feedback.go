package feedback

import "time"

// Kind is the closed set of feedback categories produced by the
// form analysis rules.
type Kind string

const (
	KindDepth            Kind = "depth"
	KindKneeValgus       Kind = "knee_valgus"
	KindTorsoAngle       Kind = "torso_angle"
	KindHeelLift         Kind = "heel_lift"
	KindAscentRate       Kind = "ascent_rate"
	KindDetectionQuality Kind = "detection_quality"
	KindPositive         Kind = "positive"
)

// Evidence points to the video frame that most directly supports a
// feedback item, so the app can jump straight to it.
type Evidence struct {
	FrameIndex int           `json:"frameIndex"`
	Timestamp  time.Duration `json:"timestamp"`
}

// Item is one piece of coaching feedback handed to the caller.
// Created once by the aggregator; only Detail may be attached later,
// and only by the consumer.
type Item struct {
	Kind     Kind         `json:"kind"`
	Message  string       `json:"message"`
	Evidence *Evidence    `json:"evidence,omitempty"`
	Detail   *Explanation `json:"detail,omitempty"`
}

// IsIssue reports whether the item describes an actual form problem,
// as opposed to praise or a data-quality note.
func (i Item) IsIssue() bool {
	return i.Kind != KindPositive && i.Kind != KindDetectionQuality
}
