package rules

import (
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/feedback"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/pose"
)

const msgDepth = "Try to squat deeper - at the lowest point your knees stayed too open for a full-depth rep."

// checkDepth measures the knee angle (angle at the knee between the
// ankle and hip rays) at the bottom frame, averaged over the sides
// where it is computable. It never emits praise on success; the
// aggregator's positive fallback covers the no-issues case.
func checkDepth(tl *pose.Timeline, th Thresholds, bottom int) *feedback.Item {
	s := tl.Sample(bottom)

	var sum float64
	var sides int
	for _, side := range [][3]pose.JointID{
		{pose.LeftHip, pose.LeftKnee, pose.LeftAnkle},
		{pose.RightHip, pose.RightKnee, pose.RightAnkle},
	} {
		hip, knee, ankle := s.Joint(side[0]), s.Joint(side[1]), s.Joint(side[2])
		if hip == nil || knee == nil || ankle == nil {
			continue
		}
		sum += pose.AngleAtVertex(*knee, *ankle, *hip)
		sides++
	}
	if sides == 0 {
		return nil
	}

	kneeAngle := sum / float64(sides)
	if kneeAngle > th.DepthKneeAngleMaxDeg {
		return &feedback.Item{
			Kind:     feedback.KindDepth,
			Message:  msgDepth,
			Evidence: anchor(tl, bottom),
		}
	}
	return nil
}
