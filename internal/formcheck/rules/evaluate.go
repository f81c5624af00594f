package rules

import (
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/feedback"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/pose"
)

const (
	msgTooShort = "This video is too short to analyze. Record the full rep, from standing to standing."

	msgNoDetection = "Could not detect your body in this video. " +
		"Film from the side with your whole body in frame and try again."

	msgLowDetection = "Some frames were hard to analyze, so this feedback may be less accurate. " +
		"Better lighting and a steadier camera will help."

	msgPositive = "Great squat! Good depth, stable torso and solid foot position."
)

// Evaluate runs the full rule set over a timeline and returns the
// ordered feedback list. It is a pure function of its inputs: the same
// timeline and thresholds always produce the identical list.
//
// The detection quality gate runs first. A timeline with too few frames
// or with no tracked legs at all short-circuits into a single
// explanatory item - a successful answer, not an error. Otherwise the
// rules run in a fixed order (depth, knee valgus, torso angle, heel
// lift, ascent rate), a non-fatal quality warning is appended when
// detection was spotty, and a positive item is appended when no rule
// found an issue.
func Evaluate(tl *pose.Timeline, th Thresholds) []feedback.Item {
	th = th.withDefaults()

	if tl.Len() < MinAnalyzableFrames {
		return []feedback.Item{{
			Kind:    feedback.KindDetectionQuality,
			Message: msgTooShort,
		}}
	}

	detectionRatio := tl.DetectionRatio()
	if detectionRatio == 0 {
		return []feedback.Item{{
			Kind:    feedback.KindDetectionQuality,
			Message: msgNoDetection,
		}}
	}

	bottom, ok := tl.BottomFrameIndex()
	if !ok {
		// legs tracked but no hips at all - treat as undetectable
		return []feedback.Item{{
			Kind:    feedback.KindDetectionQuality,
			Message: msgNoDetection,
		}}
	}

	var items []feedback.Item
	for _, check := range []func() *feedback.Item{
		func() *feedback.Item { return checkDepth(tl, th, bottom) },
		func() *feedback.Item { return checkKneeValgus(tl, th, bottom) },
		func() *feedback.Item { return checkTorsoAngle(tl, th, bottom) },
		func() *feedback.Item { return checkHeelLift(tl, th) },
		func() *feedback.Item { return checkAscentRate(tl, th, bottom) },
	} {
		if item := check(); item != nil {
			items = append(items, *item)
		}
	}

	if detectionRatio < th.DetectionRatioWarnBelow {
		items = append(items, feedback.Item{
			Kind:    feedback.KindDetectionQuality,
			Message: msgLowDetection,
		})
	}

	if !anyIssue(items) {
		items = append(items, feedback.Item{
			Kind:     feedback.KindPositive,
			Message:  msgPositive,
			Evidence: anchor(tl, bottom),
		})
	}

	return items
}

func anyIssue(items []feedback.Item) bool {
	for _, item := range items {
		if item.IsIssue() {
			return true
		}
	}
	return false
}

func anchor(tl *pose.Timeline, frameIndex int) *feedback.Evidence {
	return &feedback.Evidence{
		FrameIndex: frameIndex,
		Timestamp:  tl.Timestamp(frameIndex),
	}
}
