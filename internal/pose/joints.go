package pose

// Joint identifies a body keypoint in the 17-joint COCO vocabulary.
type Joint string

const (
	Nose          Joint = "nose"
	LeftEye       Joint = "left_eye"
	RightEye      Joint = "right_eye"
	LeftEar       Joint = "left_ear"
	RightEar      Joint = "right_ear"
	LeftShoulder  Joint = "left_shoulder"
	RightShoulder Joint = "right_shoulder"
	LeftElbow     Joint = "left_elbow"
	RightElbow    Joint = "right_elbow"
	LeftWrist     Joint = "left_wrist"
	RightWrist    Joint = "right_wrist"
	LeftHip       Joint = "left_hip"
	RightHip      Joint = "right_hip"
	LeftKnee      Joint = "left_knee"
	RightKnee     Joint = "right_knee"
	LeftAnkle     Joint = "left_ankle"
	RightAnkle    Joint = "right_ankle"
)

// Vocabulary lists all joints in COCO keypoint order.
var Vocabulary = []Joint{
	Nose,
	LeftEye,
	RightEye,
	LeftEar,
	RightEar,
	LeftShoulder,
	RightShoulder,
	LeftElbow,
	RightElbow,
	LeftWrist,
	RightWrist,
	LeftHip,
	RightHip,
	LeftKnee,
	RightKnee,
	LeftAnkle,
	RightAnkle,
}

var vocabularySet = func() map[Joint]struct{} {
	m := make(map[Joint]struct{}, len(Vocabulary))
	for _, j := range Vocabulary {
		m[j] = struct{}{}
	}
	return m
}()

// ValidJoint reports whether j belongs to the keypoint vocabulary.
func ValidJoint(j Joint) bool {
	_, ok := vocabularySet[j]
	return ok
}
