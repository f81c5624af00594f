package rules

import (
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/feedback"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/pose"
)

const msgHeelLift = "Your heels are lifting off the ground during the rep. Keep your weight over mid-foot."

// checkHeelLift takes the first frame with both ankles detected as the
// ground baseline and flags the frame where the average ankle height
// rises the furthest above it.
func checkHeelLift(tl *pose.Timeline, th Thresholds) *feedback.Item {
	baseline := 0.0
	baselineSet := false
	maxLift := 0.0
	maxLiftAt := -1

	for i := 0; i < tl.Len(); i++ {
		s := tl.Sample(i)
		leftAnkle, rightAnkle := s.Joint(pose.LeftAnkle), s.Joint(pose.RightAnkle)
		if leftAnkle == nil || rightAnkle == nil {
			continue
		}
		avgY := (leftAnkle.Y + rightAnkle.Y) / 2

		if !baselineSet {
			baseline = avgY
			baselineSet = true
			continue
		}

		// y grows upward, so a positive delta means the heels came up
		lift := avgY - baseline
		if lift > th.HeelLiftMax && lift > maxLift {
			maxLift = lift
			maxLiftAt = i
		}
	}

	if maxLiftAt == -1 {
		return nil
	}
	return &feedback.Item{
		Kind:     feedback.KindHeelLift,
		Message:  msgHeelLift,
		Evidence: anchor(tl, maxLiftAt),
	}
}
