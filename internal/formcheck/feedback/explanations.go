package feedback

import "strings"

// Explanation is the display-only detail bundle attached to an Item:
// what the finding means, what usually causes it, and what to do about
// it. It carries no control-flow weight.
type Explanation struct {
	Summary      string   `json:"summary"`
	LikelyCauses []string `json:"likelyCauses"`
	Corrections  []string `json:"corrections"`
}

type explanationRule struct {
	kind Kind
	// messageContains further narrows the match within a kind;
	// empty means any message of that kind
	messageContains string
	explanation     Explanation
}

// the order matters: the first matching entry wins, so the narrowed
// entries for a kind must come before its catch-all
var explanationTable = []explanationRule{
	{
		kind: KindDepth,
		explanation: Explanation{
			Summary: "The hips did not drop low enough at the bottom of the rep; the knee stayed too open.",
			LikelyCauses: []string{
				"Limited ankle or hip mobility",
				"Load too heavy to control through the full range",
				"Stopping short out of habit or caution",
			},
			Corrections: []string{
				"Practice pause squats to a box set at parallel depth",
				"Work on ankle dorsiflexion and hip mobility between sessions",
				"Reduce the load until full depth feels controlled",
			},
		},
	},
	{
		kind: KindKneeValgus,
		explanation: Explanation{
			Summary: "The knees collapsed inward relative to the ankles, typically on the way up.",
			LikelyCauses: []string{
				"Weak hip abductors and glutes",
				"Stance too narrow or toes pointed too far forward",
				"Fatigue late in the set",
			},
			Corrections: []string{
				"Cue \"knees out over the toes\" through the whole rep",
				"Add banded squats and lateral band walks as accessories",
				"Stop the set before fatigue degrades knee control",
			},
		},
	},
	{
		kind:            KindTorsoAngle,
		messageContains: "leaning",
		explanation: Explanation{
			Summary: "The torso folded too far over the thighs at the bottom of the squat.",
			LikelyCauses: []string{
				"Weak upper back or core",
				"Hips rising faster than the bar path allows",
				"Limited ankle mobility forcing the trunk forward",
			},
			Corrections: []string{
				"Brace the core and keep the chest tall before descending",
				"Try front squats or goblet squats to groove a more upright torso",
				"Elevate the heels slightly to reduce the required forward lean",
			},
		},
	},
	{
		kind: KindTorsoAngle,
		explanation: Explanation{
			Summary: "The angle between torso and thighs changed abruptly mid-rep, a sign of lost trunk stiffness.",
			LikelyCauses: []string{
				"Losing the breath brace partway through the rep",
				"Load shifting forward onto the toes",
			},
			Corrections: []string{
				"Take a full breath and brace before each rep, hold it through the sticking point",
				"Lower the weight and focus on a smooth, constant tempo",
			},
		},
	},
	{
		kind: KindHeelLift,
		explanation: Explanation{
			Summary: "The heels rose off the floor during the rep, shifting the weight onto the toes.",
			LikelyCauses: []string{
				"Restricted ankle dorsiflexion",
				"Bar or body weight drifting forward",
				"Unstable or overly cushioned footwear",
			},
			Corrections: []string{
				"Keep the weight over mid-foot, grip the floor with the toes",
				"Stretch the calves and work on ankle mobility",
				"Squat in flat, stable shoes or use a small heel wedge",
			},
		},
	},
	{
		kind: KindAscentRate,
		explanation: Explanation{
			Summary: "The hips rose noticeably faster than the shoulders out of the bottom, tipping the trunk forward.",
			LikelyCauses: []string{
				"Quads giving out before the hips at the bottom position",
				"Rushing the ascent instead of driving the chest up",
			},
			Corrections: []string{
				"Think \"chest up first\" when driving out of the hole",
				"Add tempo squats and paused squats to strengthen the bottom position",
			},
		},
	},
	{
		kind:            KindDetectionQuality,
		messageContains: "too short",
		explanation: Explanation{
			Summary: "The clip contains too few usable frames to measure a full squat.",
			LikelyCauses: []string{
				"Recording started or stopped mid-rep",
				"Very short clip or aggressive trimming",
			},
			Corrections: []string{
				"Record the whole rep, from standing to standing",
			},
		},
	},
	{
		kind: KindDetectionQuality,
		explanation: Explanation{
			Summary: "Body landmarks could not be tracked reliably across the video.",
			LikelyCauses: []string{
				"Poor lighting or strong backlight",
				"Part of the body out of frame or obscured by equipment",
				"Camera too close or at an extreme angle",
			},
			Corrections: []string{
				"Film from the side, a few meters away, with the whole body in frame",
				"Improve lighting and avoid busy backgrounds",
			},
		},
	},
	{
		kind: KindPositive,
		explanation: Explanation{
			Summary: "No form issues were detected on this rep.",
			LikelyCauses: []string{
				"Solid depth, knee tracking, torso control and foot position",
			},
			Corrections: []string{
				"Keep doing what you are doing; consider a small load increase",
			},
		},
	},
}

// Explain returns the display detail for an item, or nil when no table
// entry matches its kind and message.
func Explain(item Item) *Explanation {
	for i := range explanationTable {
		rule := explanationTable[i]
		if rule.kind != item.Kind {
			continue
		}
		if rule.messageContains != "" && !strings.Contains(item.Message, rule.messageContains) {
			continue
		}
		expl := rule.explanation
		return &expl
	}
	return nil
}

// AttachDetails populates the Detail field of every item in place,
// for display. Items are otherwise never mutated after aggregation.
func AttachDetails(items []Item) {
	for i := range items {
		if items[i].Detail == nil {
			items[i].Detail = Explain(items[i])
		}
	}
}
