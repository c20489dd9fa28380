package profile

import (
	"github.com/athlyze/athlyze/internal/metrics"
	"github.com/athlyze/athlyze/internal/pose"
	"github.com/athlyze/athlyze/internal/segment"
)

// Sport identifiers accepted by the registry.
const (
	SportSprintStart   = "sprint_start"
	SportSprintRunning = "sprint_running"
	SportLongJump      = "long_jump"
	SportHighJump      = "high_jump"
	SportShotPut       = "shot_put"
	SportDiscus        = "discus"
	SportJavelin       = "javelin"
)

// Shared operand points. Midpoints smooth single-joint jitter and avoid
// picking a side where the sport doesn't care about handedness.
var (
	midHip      = metrics.Mid(pose.LeftHip, pose.RightHip)
	midShoulder = metrics.Mid(pose.LeftShoulder, pose.RightShoulder)
	midAnkle    = metrics.Mid(pose.LeftAnkle, pose.RightAnkle)
	midKnee     = metrics.Mid(pose.LeftKnee, pose.RightKnee)
	midWrist    = metrics.Mid(pose.LeftWrist, pose.RightWrist)
	midEar      = metrics.Mid(pose.LeftEar, pose.RightEar)
)

func angle3(a, b, c metrics.Point) metrics.Spec {
	return metrics.Spec{Kind: metrics.KindAngle, Points: []metrics.Point{a, b, c}}
}

func speedOf(p metrics.Point) metrics.Spec {
	return metrics.Spec{Kind: metrics.KindHorizontalSpeed, Points: []metrics.Point{p}}
}

func riseOf(p metrics.Point) metrics.Spec {
	return metrics.Spec{Kind: metrics.KindVerticalRise, Points: []metrics.Point{p}}
}

func clearanceOf(p metrics.Point) metrics.Spec {
	return metrics.Spec{Kind: metrics.KindGroundClearance, Points: []metrics.Point{p}}
}

func dropOf(a, b metrics.Point) metrics.Spec {
	return metrics.Spec{Kind: metrics.KindVerticalDrop, Points: []metrics.Point{a, b}}
}

func leanOf(a, b metrics.Point) metrics.Spec {
	return metrics.Spec{Kind: metrics.KindLean, Points: []metrics.Point{a, b}}
}

func trendOf(p metrics.Point) metrics.Spec {
	return metrics.Spec{Kind: metrics.KindSpeedTrend, Points: []metrics.Point{p}}
}

// leftLeg / rightLeg are the hip-knee-ankle chains used all over the
// profiles, always offered as side alternates.
var (
	leftLeg  = angle3(metrics.P(pose.LeftHip), metrics.P(pose.LeftKnee), metrics.P(pose.LeftAnkle))
	rightLeg = angle3(metrics.P(pose.RightHip), metrics.P(pose.RightKnee), metrics.P(pose.RightAnkle))
	leftArm  = angle3(metrics.P(pose.LeftShoulder), metrics.P(pose.LeftElbow), metrics.P(pose.LeftWrist))
	rightArm = angle3(metrics.P(pose.RightShoulder), metrics.P(pose.RightElbow), metrics.P(pose.RightWrist))
)

// builtins returns the seven stock profiles. Thresholds are profile data,
// not engine constants; deployments tune them through the override
// directory. Angles are degrees, distances and speeds are hip-width units
// ("scales") per the metric library.
func builtins() []Profile {
	return []Profile{
		longJump(),
		highJump(),
		sprintStart(),
		sprintRunning(),
		shotPut(),
		discus(),
		javelin(),
	}
}

func longJump() Profile {
	return Profile{
		Sport: SportLongJump,
		Name:  "Long jump",
		Phases: []segment.PhaseSpec{
			{
				Name:  "approach",
				Enter: segment.Guard{Metric: speedOf(midHip), Op: segment.OpGTE, Threshold: 2.5, MinHold: 3},
			},
			{
				Name:  "takeoff",
				Enter: segment.Guard{Metric: riseOf(midAnkle), Op: segment.OpGTE, Threshold: 3.0, MinHold: 2},
			},
			{
				Name:  "flight",
				Enter: segment.Guard{Metric: clearanceOf(midAnkle), Op: segment.OpGTE, Threshold: 0.8, MinHold: 3},
			},
			{
				Name:  "landing",
				Enter: segment.Guard{Metric: clearanceOf(midAnkle), Op: segment.OpLTE, Threshold: 0.4, MinHold: 2},
			},
		},
		Criteria: []Criterion{
			{
				ID:        "runup_acceleration",
				Name:      "Accelerating run-up",
				Phase:     "approach",
				Metric:    trendOf(midHip),
				Op:        OpGTE,
				Agg:       metrics.AggLast,
				Threshold: 0.5,
				NoCredit:  -0.5,
				Weight:    1,
				Feedback:  "Build speed all the way through the approach; the run-up should still be accelerating at the board.",
			},
			{
				ID:         "takeoff_extension",
				Name:       "Takeoff leg extension",
				Phase:      "takeoff",
				Metric:     leftLeg,
				Alternates: []metrics.Spec{rightLeg},
				Op:         OpGTE,
				Agg:        metrics.AggMax,
				Threshold:  165,
				NoCredit:   135,
				Weight:     1.5,
				Feedback:   "Fully extend the takeoff leg through the board: hip, knee and ankle should form a straight line at toe-off.",
			},
			{
				ID:        "takeoff_gaze",
				Name:      "Eyes ahead at takeoff",
				Phase:     "takeoff",
				Metric:    dropOf(metrics.P(pose.Nose), midEar),
				Op:        OpLTE,
				Agg:       metrics.AggMin,
				Threshold: 0.2,
				NoCredit:  0.6,
				Weight:    1,
				Feedback:  "Keep the eyes on the horizon at takeoff instead of looking down at the board.",
			},
			{
				ID:         "flight_leg_carry",
				Name:       "Free leg held long in flight",
				Phase:      "flight",
				Metric:     leftLeg,
				Alternates: []metrics.Spec{rightLeg},
				Op:         OpGTE,
				Agg:        metrics.AggMax,
				Threshold:  120,
				NoCredit:   90,
				Weight:     1,
				Feedback:   "Hold the free leg long during flight; tucking early cuts the jump short.",
			},
			{
				ID:       "landing_slide",
				Name:     "Sliding landing posture",
				Phase:    "landing",
				Metric:   angle3(midShoulder, midHip, midAnkle),
				Op:       OpRange,
				Agg:      metrics.AggMean,
				RangeLo:  80,
				RangeHi:  100,
				Margin:   30,
				Weight:   1,
				Feedback: "Land in a seated slide: torso folded to a right angle over the hips, heels leading into the pit.",
			},
		},
	}
}

func highJump() Profile {
	return Profile{
		Sport: SportHighJump,
		Name:  "High jump",
		Phases: []segment.PhaseSpec{
			{
				Name:  "approach",
				Enter: segment.Guard{Metric: speedOf(midHip), Op: segment.OpGTE, Threshold: 2.0, MinHold: 3},
			},
			{
				Name:  "takeoff",
				Enter: segment.Guard{Metric: riseOf(midHip), Op: segment.OpGTE, Threshold: 2.5, MinHold: 2},
			},
			{
				Name:  "flight",
				Enter: segment.Guard{Metric: clearanceOf(midAnkle), Op: segment.OpGTE, Threshold: 1.0, MinHold: 2},
			},
			{
				Name:  "landing",
				Enter: segment.Guard{Metric: riseOf(midHip), Op: segment.OpLTE, Threshold: -3.0, MinHold: 2},
			},
		},
		Criteria: []Criterion{
			{
				ID:        "upright_approach",
				Name:      "Tall running posture",
				Phase:     "approach",
				Metric:    dropOf(midShoulder, midHip),
				Op:        OpLTE,
				Agg:       metrics.AggMean,
				Threshold: -1.2,
				NoCredit:  -0.6,
				Weight:    1,
				Feedback:  "Run tall on the approach with the shoulders stacked high over the hips.",
			},
			{
				ID:     "curve_lean",
				Name:   "Lean into the curve",
				Phase:  "approach",
				Metric: angle3(metrics.P(pose.LeftShoulder), metrics.P(pose.RightShoulder), metrics.P(pose.RightHip)),
				Alternates: []metrics.Spec{
					angle3(metrics.P(pose.RightShoulder), metrics.P(pose.LeftShoulder), metrics.P(pose.LeftHip)),
				},
				Op:        OpLTE,
				Agg:       metrics.AggMin,
				Threshold: 150,
				NoCredit:  175,
				Weight:    1,
				Feedback:  "Lean away from the bar through the curve; the body should bank like a cyclist in the final steps.",
			},
			{
				ID:         "takeoff_knee_drive",
				Name:       "Free knee drive",
				Phase:      "takeoff",
				Metric:     leftLeg,
				Alternates: []metrics.Spec{rightLeg},
				Op:         OpLTE,
				Agg:        metrics.AggMin,
				Threshold:  120,
				NoCredit:   150,
				Weight:     1.5,
				Feedback:   "Punch the free knee up hard at takeoff; it sets the vertical impulse.",
			},
			{
				ID:        "arch_over_bar",
				Name:      "Back arch over the bar",
				Phase:     "flight",
				Metric:    angle3(midShoulder, midHip, midKnee),
				Op:        OpGTE,
				Agg:       metrics.AggMax,
				Threshold: 160,
				NoCredit:  130,
				Weight:    1.5,
				Feedback:  "Push the hips up and arch the back as you cross the bar.",
			},
			{
				ID:       "l_landing",
				Name:     "L-shaped landing",
				Phase:    "landing",
				Metric:   angle3(midShoulder, midHip, midAnkle),
				Op:       OpRange,
				Agg:      metrics.AggMean,
				RangeLo:  80,
				RangeHi:  100,
				Margin:   30,
				Weight:   0.5,
				Feedback: "Finish in an L: legs up, torso flat, and meet the mat with the shoulders.",
			},
		},
	}
}

func sprintStart() Profile {
	return Profile{
		Sport: SportSprintStart,
		Name:  "Sprint start",
		Phases: []segment.PhaseSpec{
			{
				Name:  "set",
				Enter: segment.Guard{Metric: dropOf(midHip, midShoulder), Op: segment.OpLTE, Threshold: 0.5, MinHold: 3},
			},
			{
				Name:  "drive",
				Enter: segment.Guard{Metric: speedOf(midHip), Op: segment.OpGTE, Threshold: 1.5, MinHold: 2},
			},
			{
				Name:  "acceleration",
				Enter: segment.Guard{Metric: speedOf(midHip), Op: segment.OpGTE, Threshold: 4.0, MinHold: 3},
			},
		},
		Criteria: []Criterion{
			{
				ID:        "set_pelvis_height",
				Name:      "Pelvis above the shoulders",
				Phase:     "set",
				Metric:    dropOf(midHip, midShoulder),
				Op:        OpLTE,
				Agg:       metrics.AggMean,
				Threshold: 0,
				NoCredit:  1.0,
				Weight:    1,
				Feedback:  "In set, lift the hips until the pelvis sits above the shoulder line.",
			},
			{
				ID:        "set_head_neutral",
				Name:      "Head in line with the torso",
				Phase:     "set",
				Metric:    angle3(midHip, midEar, midShoulder),
				Op:        OpLTE,
				Agg:       metrics.AggMin,
				Threshold: 4,
				NoCredit:  20,
				Weight:    1,
				Feedback:  "Keep the head neutral in set, ears in line with the spine rather than craned up.",
			},
			{
				ID:        "set_gaze_down",
				Name:      "Gaze down at the blocks",
				Phase:     "set",
				Metric:    dropOf(metrics.P(pose.Nose), midShoulder),
				Op:        OpGTE,
				Agg:       metrics.AggMean,
				Threshold: 0,
				NoCredit:  -0.5,
				Weight:    0.5,
				Feedback:  "Look down at the track in set; raising the eyes early straightens the neck and costs drive.",
			},
			{
				ID:    "drive_leg_snap",
				Name:  "Explosive rear-leg extension",
				Phase: "drive",
				Metric: metrics.Spec{
					Kind:   metrics.KindAngularVelocity,
					Points: []metrics.Point{metrics.P(pose.LeftHip), metrics.P(pose.LeftKnee), metrics.P(pose.LeftAnkle)},
				},
				Alternates: []metrics.Spec{
					{
						Kind:   metrics.KindAngularVelocity,
						Points: []metrics.Point{metrics.P(pose.RightHip), metrics.P(pose.RightKnee), metrics.P(pose.RightAnkle)},
					},
				},
				Op:        OpGTE,
				Agg:       metrics.AggMax,
				Threshold: 400,
				NoCredit:  100,
				Weight:    1.5,
				Feedback:  "Snap the rear leg straight at the gun; the first push out of the blocks should be explosive.",
			},
			{
				ID:    "drive_split",
				Name:  "Split-stance drive",
				Phase: "drive",
				Metric: metrics.Spec{
					Kind: metrics.KindSymmetry,
					Points: []metrics.Point{
						metrics.P(pose.LeftHip), metrics.P(pose.LeftKnee), metrics.P(pose.LeftAnkle),
						metrics.P(pose.RightHip), metrics.P(pose.RightKnee), metrics.P(pose.RightAnkle),
					},
				},
				Op:        OpGTE,
				Agg:       metrics.AggMax,
				Threshold: 40,
				NoCredit:  10,
				Weight:    1,
				Feedback:  "Drive out in a split: one leg fully extended behind while the other stays folded in front.",
			},
		},
	}
}

func sprintRunning() Profile {
	return Profile{
		Sport: SportSprintRunning,
		Name:  "Sprint running",
		Phases: []segment.PhaseSpec{
			{
				Name:  "stride",
				Enter: segment.Guard{Metric: speedOf(midHip), Op: segment.OpGTE, Threshold: 3.0, MinHold: 3},
			},
		},
		Criteria: []Criterion{
			{
				ID:     "knee_lift",
				Name:   "High knee lift",
				Phase:  "stride",
				Metric: angle3(metrics.P(pose.LeftShoulder), metrics.P(pose.LeftHip), metrics.P(pose.LeftKnee)),
				Alternates: []metrics.Spec{
					angle3(metrics.P(pose.RightShoulder), metrics.P(pose.RightHip), metrics.P(pose.RightKnee)),
				},
				Op:        OpLTE,
				Agg:       metrics.AggMin,
				Threshold: 110,
				NoCredit:  150,
				Weight:    1.5,
				Feedback:  "Lift the knees toward hip height with each stride instead of shuffling low.",
			},
			{
				ID:     "heel_recovery",
				Name:   "High heel recovery",
				Phase:  "stride",
				Metric: dropOf(metrics.P(pose.LeftAnkle), metrics.P(pose.LeftKnee)),
				Alternates: []metrics.Spec{
					dropOf(metrics.P(pose.RightAnkle), metrics.P(pose.RightKnee)),
				},
				Op:        OpLTE,
				Agg:       metrics.AggMin,
				Threshold: 0,
				NoCredit:  1.0,
				Weight:    1,
				Feedback:  "Pull the heel up under the hip after toe-off and stay on the balls of the feet.",
			},
			{
				ID:         "arm_carriage",
				Name:       "Arms bent near ninety degrees",
				Phase:      "stride",
				Metric:     leftArm,
				Alternates: []metrics.Spec{rightArm},
				Op:         OpRange,
				Agg:        metrics.AggMean,
				RangeLo:    79,
				RangeHi:    105,
				Margin:     26,
				Weight:     1,
				Feedback:   "Carry the arms bent near ninety degrees; letting them open wastes the swing.",
			},
			{
				ID:    "arm_symmetry",
				Name:  "Even arm swing",
				Phase: "stride",
				Metric: metrics.Spec{
					Kind: metrics.KindSymmetry,
					Points: []metrics.Point{
						metrics.P(pose.LeftShoulder), metrics.P(pose.LeftElbow), metrics.P(pose.LeftWrist),
						metrics.P(pose.RightShoulder), metrics.P(pose.RightElbow), metrics.P(pose.RightWrist),
					},
				},
				Op:        OpLTE,
				Agg:       metrics.AggMean,
				Threshold: 25,
				NoCredit:  60,
				Weight:    0.5,
				Feedback:  "Swing the arms evenly; left and right elbows should mirror each other.",
			},
			{
				ID:        "forward_lean",
				Name:      "Slight forward lean",
				Phase:     "stride",
				Metric:    leanOf(midHip, midShoulder),
				Op:        OpGTE,
				Agg:       metrics.AggMean,
				Threshold: 10,
				NoCredit:  2,
				Weight:    1,
				Feedback:  "Run with a slight whole-body forward lean from the ankles, not bolt upright.",
			},
			{
				ID:        "stride_scissor",
				Name:      "Full stride separation",
				Phase:     "stride",
				Metric:    angle3(metrics.P(pose.LeftKnee), midHip, metrics.P(pose.RightKnee)),
				Op:        OpGTE,
				Agg:       metrics.AggMax,
				Threshold: 45,
				NoCredit:  15,
				Weight:    1,
				Feedback:  "Open a full stride at speed; the thighs should scissor wide, front knee driving as the rear leg extends.",
			},
		},
	}
}

func shotPut() Profile {
	return Profile{
		Sport: SportShotPut,
		Name:  "Shot put",
		Phases: []segment.PhaseSpec{
			{
				Name:  "glide",
				Enter: segment.Guard{Metric: angle3(midHip, midKnee, midAnkle), Op: segment.OpLTE, Threshold: 140, MinHold: 3},
			},
			{
				Name:  "transition",
				Enter: segment.Guard{Metric: speedOf(midHip), Op: segment.OpGTE, Threshold: 1.2, MinHold: 2},
			},
			{
				Name:  "delivery",
				Enter: segment.Guard{Metric: speedOf(midWrist), Op: segment.OpGTE, Threshold: 5.0, MinHold: 2},
			},
		},
		Criteria: []Criterion{
			{
				ID:         "glide_crouch",
				Name:       "Low crouched start",
				Phase:      "glide",
				Metric:     leftLeg,
				Alternates: []metrics.Spec{rightLeg},
				Op:         OpLTE,
				Agg:        metrics.AggMin,
				Threshold:  150,
				NoCredit:   175,
				Weight:     1,
				Feedback:   "Start the glide from a deep crouch over the rear leg; standing tall wastes the putt before it begins.",
			},
			{
				ID:        "rear_facing_setup",
				Name:      "Back to the board",
				Phase:     "glide",
				Metric:    leanOf(metrics.P(pose.LeftShoulder), metrics.P(pose.RightShoulder)),
				Op:        OpLTE,
				Agg:       metrics.AggMean,
				Threshold: 20,
				NoCredit:  45,
				Weight:    1,
				Feedback:  "Keep the back turned to the throw through the glide; opening early bleeds power.",
			},
			{
				ID:         "transition_leg_fold",
				Name:       "Trail leg folded in the shift",
				Phase:      "transition",
				Metric:     leftLeg,
				Alternates: []metrics.Spec{rightLeg},
				Op:         OpLTE,
				Agg:        metrics.AggMin,
				Threshold:  160,
				NoCredit:   178,
				Weight:     1,
				Feedback:   "Keep the trail leg folded under the pelvis during the shift across the circle.",
			},
			{
				ID:         "brace_front_leg",
				Name:       "Braced front leg",
				Phase:      "transition",
				Metric:     leftLeg,
				Alternates: []metrics.Spec{rightLeg},
				Op:         OpGTE,
				Agg:        metrics.AggMax,
				Threshold:  140,
				NoCredit:   110,
				Weight:     1,
				Feedback:   "Plant a firm front leg to block the glide's momentum and turn it upward.",
			},
			{
				ID:         "shot_at_neck",
				Name:       "Shot held at the neck",
				Phase:      "delivery",
				Metric:     metrics.Spec{Kind: metrics.KindDistance, Points: []metrics.Point{metrics.P(pose.LeftWrist), metrics.P(pose.Nose)}},
				Alternates: []metrics.Spec{{Kind: metrics.KindDistance, Points: []metrics.Point{metrics.P(pose.RightWrist), metrics.P(pose.Nose)}}},
				Op:         OpLTE,
				Agg:        metrics.AggFirst,
				Threshold:  1.0,
				NoCredit:   2.5,
				Weight:     0.5,
				Feedback:   "Keep the shot tucked against the neck until the strike begins; carrying it away early turns the putt into a throw.",
			},
			{
				ID:         "punch_extension",
				Name:       "Full arm punch",
				Phase:      "delivery",
				Metric:     leftArm,
				Alternates: []metrics.Spec{rightArm},
				Op:         OpGTE,
				Agg:        metrics.AggMax,
				Threshold:  160,
				NoCredit:   120,
				Weight:     1.5,
				Feedback:   "Finish the putt with a complete elbow extension; a bent arm at release caps the distance.",
			},
			{
				ID:        "hip_shoulder_drive",
				Name:      "Hips fire before the arm",
				Phase:     "delivery",
				Metric:    angle3(metrics.P(pose.LeftShoulder), midHip, metrics.P(pose.RightShoulder)),
				Op:        OpGTE,
				Agg:       metrics.AggMax,
				Threshold: 30,
				NoCredit:  10,
				Weight:    1,
				Feedback:  "Rotate the hips and chest around to face the sector as the arm strikes.",
			},
			{
				ID:         "release_angle",
				Name:       "Release between 30 and 60 degrees",
				Phase:      "delivery",
				Metric:     leanOf(metrics.P(pose.LeftShoulder), metrics.P(pose.LeftWrist)),
				Alternates: []metrics.Spec{leanOf(metrics.P(pose.RightShoulder), metrics.P(pose.RightWrist))},
				Op:         OpRange,
				Agg:        metrics.AggLast,
				RangeLo:    30,
				RangeHi:    60,
				Margin:     20,
				Weight:     1,
				Feedback:   "Let the shot go between thirty and sixty degrees above horizontal; flatter or steeper costs distance.",
			},
		},
	}
}

func discus() Profile {
	return Profile{
		Sport: SportDiscus,
		Name:  "Discus",
		Phases: []segment.PhaseSpec{
			{
				Name:  "swing",
				Enter: segment.Guard{Metric: speedOf(midWrist), Op: segment.OpGTE, Threshold: 1.0, MinHold: 3},
			},
			{
				Name:  "turn",
				Enter: segment.Guard{Metric: speedOf(midHip), Op: segment.OpGTE, Threshold: 1.5, MinHold: 2},
			},
			{
				Name:  "delivery",
				Enter: segment.Guard{Metric: riseOf(midWrist), Op: segment.OpGTE, Threshold: 2.0, MinHold: 2},
			},
		},
		Criteria: []Criterion{
			{
				ID:     "swing_reach_back",
				Name:   "Discus swept far back",
				Phase:  "swing",
				Metric: angle3(metrics.P(pose.RightWrist), metrics.P(pose.RightShoulder), metrics.P(pose.RightHip)),
				Alternates: []metrics.Spec{
					angle3(metrics.P(pose.LeftWrist), metrics.P(pose.LeftShoulder), metrics.P(pose.LeftHip)),
				},
				Op:        OpGTE,
				Agg:       metrics.AggMax,
				Threshold: 150,
				NoCredit:  100,
				Weight:    1,
				Feedback:  "Sweep the discus far behind the body on the preliminary swing to lengthen the pull.",
			},
			{
				ID:         "turn_stay_low",
				Name:       "Bent drive leg in the turn",
				Phase:      "turn",
				Metric:     leftLeg,
				Alternates: []metrics.Spec{rightLeg},
				Op:         OpLTE,
				Agg:        metrics.AggMin,
				Threshold:  140,
				NoCredit:   170,
				Weight:     1,
				Feedback:   "Stay low on a bent drive leg through the turn; popping up early kills the rhythm.",
			},
			{
				ID:    "circle_discipline",
				Name:  "Feet near the circle's center",
				Phase: "turn",
				Metric: metrics.Spec{
					Kind:   metrics.KindDistanceToPoint,
					Points: []metrics.Point{midAnkle},
					// Normalized-frame circle center; override per venue for pixel feeds.
					Target: []float64{0.42, 0.5},
				},
				Op:        OpLTE,
				Agg:       metrics.AggMax,
				Threshold: 1.5,
				NoCredit:  4.0,
				Weight:    0.5,
				Feedback:  "Keep the feet tracking through the middle of the circle during the turn.",
			},
			{
				ID:     "throw_low_to_high",
				Name:   "Hips open low to high",
				Phase:  "delivery",
				Metric: angle3(metrics.P(pose.RightKnee), metrics.P(pose.RightHip), metrics.P(pose.LeftKnee)),
				Alternates: []metrics.Spec{
					angle3(metrics.P(pose.LeftKnee), metrics.P(pose.LeftHip), metrics.P(pose.RightKnee)),
				},
				Op:       OpRange,
				Agg:      metrics.AggMean,
				RangeLo:  110,
				RangeHi:  160,
				Margin:   30,
				Weight:   1,
				Feedback: "Drive the throw from low to high: hips open wide as the discus comes through.",
			},
			{
				ID:     "release_arm_line",
				Name:   "Long arm at release",
				Phase:  "delivery",
				Metric: angle3(metrics.P(pose.RightShoulder), metrics.P(pose.RightWrist), metrics.P(pose.RightAnkle)),
				Alternates: []metrics.Spec{
					angle3(metrics.P(pose.LeftShoulder), metrics.P(pose.LeftWrist), metrics.P(pose.LeftAnkle)),
				},
				Op:        OpGTE,
				Agg:       metrics.AggMax,
				Threshold: 135,
				NoCredit:  100,
				Weight:    1.5,
				Feedback:  "Release with a long arm: shoulder, wrist and body stretched into one line.",
			},
		},
	}
}

func javelin() Profile {
	return Profile{
		Sport: SportJavelin,
		Name:  "Javelin",
		Phases: []segment.PhaseSpec{
			{
				Name:  "approach",
				Enter: segment.Guard{Metric: speedOf(midHip), Op: segment.OpGTE, Threshold: 2.0, MinHold: 3},
			},
			{
				Name:  "crossover",
				Enter: segment.Guard{Metric: metrics.Spec{Kind: metrics.KindDistance, Points: []metrics.Point{midWrist, metrics.P(pose.Nose)}}, Op: segment.OpGTE, Threshold: 1.8, MinHold: 3},
			},
			{
				Name:  "delivery",
				Enter: segment.Guard{Metric: speedOf(midWrist), Op: segment.OpGTE, Threshold: 6.0, MinHold: 2},
			},
		},
		Criteria: []Criterion{
			{
				ID:        "runup_acceleration",
				Name:      "Accelerating run-up",
				Phase:     "approach",
				Metric:    trendOf(midHip),
				Op:        OpGTE,
				Agg:       metrics.AggLast,
				Threshold: 0.3,
				NoCredit:  -0.5,
				Weight:    1,
				Feedback:  "Keep building speed through the run-up and into the crossovers.",
			},
			{
				ID:     "arm_drawn_back",
				Name:   "Javelin drawn fully back",
				Phase:  "crossover",
				Metric: angle3(metrics.P(pose.RightHip), metrics.P(pose.RightShoulder), metrics.P(pose.RightWrist)),
				Alternates: []metrics.Spec{
					angle3(metrics.P(pose.LeftHip), metrics.P(pose.LeftShoulder), metrics.P(pose.LeftWrist)),
				},
				Op:        OpGTE,
				Agg:       metrics.AggMax,
				Threshold: 90,
				NoCredit:  50,
				Weight:    1,
				Feedback:  "Draw the javelin fully back on a long straight arm during the withdrawal.",
			},
			{
				ID:        "impulse_step",
				Name:      "Airborne impulse step",
				Phase:     "crossover",
				Metric:    clearanceOf(midAnkle),
				Op:        OpGTE,
				Agg:       metrics.AggMax,
				Threshold: 0.5,
				NoCredit:  0.1,
				Weight:    1,
				Feedback:  "Drive a flat impulse step so both feet break contact before the plant.",
			},
			{
				ID:         "block_leg",
				Name:       "Stiff blocking leg",
				Phase:      "delivery",
				Metric:     leftLeg,
				Alternates: []metrics.Spec{rightLeg},
				Op:         OpGTE,
				Agg:        metrics.AggMax,
				Threshold:  150,
				NoCredit:   110,
				Weight:     1.5,
				Feedback:   "Slam a straight blocking leg into the ground and throw over it; a soft knee swallows the run-up.",
			},
			{
				ID:        "hip_drive",
				Name:      "Hips lead the throw",
				Phase:     "delivery",
				Metric:    angle3(metrics.P(pose.LeftShoulder), midHip, metrics.P(pose.RightShoulder)),
				Op:        OpGTE,
				Agg:       metrics.AggMax,
				Threshold: 30,
				NoCredit:  10,
				Weight:    1,
				Feedback:  "Lead with the hips: chest comes through to face the sector before the arm strikes.",
			},
		},
	}
}
