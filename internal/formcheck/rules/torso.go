package rules

import (
	"math"

	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/feedback"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/pose"
)

const (
	msgTorsoLean        = "Your torso is leaning too far forward at the bottom of the squat. Keep your chest up."
	msgTorsoInstability = "Your torso angle changes abruptly mid-rep. Brace your core and keep a constant back angle."
)

// checkTorsoAngle runs two checks: excessive forward lean at the bottom
// frame, and instability of the torso/thigh relative angle across the
// rep. When the lean check fires, the instability check is skipped so
// the user gets one torso item at most.
func checkTorsoAngle(tl *pose.Timeline, th Thresholds, bottom int) *feedback.Item {
	if item := checkTorsoLean(tl, th, bottom); item != nil {
		return item
	}
	return checkTorsoInstability(tl, th)
}

func checkTorsoLean(tl *pose.Timeline, th Thresholds, bottom int) *feedback.Item {
	s := tl.Sample(bottom)
	hip, hipOK := s.HipMidpoint()
	shoulder, shoulderOK := s.ShoulderMidpoint()
	if !hipOK || !shoulderOK {
		return nil
	}

	lean := pose.AngleFromVertical(pose.Vector(hip, shoulder))
	if lean > th.TorsoLeanMaxDeg {
		return &feedback.Item{
			Kind:     feedback.KindTorsoAngle,
			Message:  msgTorsoLean,
			Evidence: anchor(tl, bottom),
		}
	}
	return nil
}

// torsoThighAngle is the relative angle between the hip->shoulder and
// knee->hip vectors for one frame, when all three midpoints exist.
func torsoThighAngle(s pose.Sample) (float64, bool) {
	hip, hipOK := s.HipMidpoint()
	shoulder, shoulderOK := s.ShoulderMidpoint()
	knee, kneeOK := s.KneeMidpoint()
	if !hipOK || !shoulderOK || !kneeOK {
		return 0, false
	}
	torso := pose.Vector(hip, shoulder)
	thigh := pose.Vector(knee, hip)
	return pose.AngleBetween(torso, thigh), true
}

func checkTorsoInstability(tl *pose.Timeline, th Thresholds) *feedback.Item {
	maxChange := 0.0
	maxChangeAt := -1

	prevAngle := 0.0
	prevIndex := -1
	for i := 0; i < tl.Len(); i++ {
		angle, ok := torsoThighAngle(tl.Sample(i))
		if !ok {
			prevIndex = -1
			continue
		}
		// only strictly consecutive frames count as a pair
		if prevIndex == i-1 {
			change := math.Abs(angle - prevAngle)
			if change > maxChange {
				maxChange = change
				maxChangeAt = i
			}
		}
		prevAngle = angle
		prevIndex = i
	}

	if maxChangeAt == -1 || maxChange <= th.TorsoAngleMaxChangeDeg {
		return nil
	}
	return &feedback.Item{
		Kind:     feedback.KindTorsoAngle,
		Message:  msgTorsoInstability,
		Evidence: anchor(tl, maxChangeAt),
	}
}
