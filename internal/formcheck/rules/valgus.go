package rules

import (
	"math"

	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/feedback"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/pose"
)

const msgKneeValgus = "Your knees are caving inward relative to your ankles. Push them out over your toes."

// checkKneeValgus flags frames where the horizontal knee gap collapses
// relative to the ankle gap. Among flagged frames it prefers the
// earliest one in the ascent (at or after bottom+1), falling back to
// the last flagged frame overall.
func checkKneeValgus(tl *pose.Timeline, th Thresholds, bottom int) *feedback.Item {
	ascentFlagged := -1
	lastFlagged := -1
	for i := 0; i < tl.Len(); i++ {
		s := tl.Sample(i)
		leftKnee, rightKnee := s.Joint(pose.LeftKnee), s.Joint(pose.RightKnee)
		leftAnkle, rightAnkle := s.Joint(pose.LeftAnkle), s.Joint(pose.RightAnkle)
		if leftKnee == nil || rightKnee == nil || leftAnkle == nil || rightAnkle == nil {
			continue
		}

		kneeGap := math.Abs(leftKnee.X - rightKnee.X)
		ankleGap := math.Abs(leftAnkle.X - rightAnkle.X)
		if ankleGap <= th.ValgusMinAnkleGap {
			continue
		}
		if kneeGap/ankleGap >= th.ValgusKneeAnkleRatioMin {
			continue
		}

		lastFlagged = i
		if i >= bottom+1 && ascentFlagged == -1 {
			ascentFlagged = i
		}
	}

	at := ascentFlagged
	if at == -1 {
		at = lastFlagged
	}
	if at == -1 {
		return nil
	}

	return &feedback.Item{
		Kind:     feedback.KindKneeValgus,
		Message:  msgKneeValgus,
		Evidence: anchor(tl, at),
	}
}
