package pose

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads a sequence from its JSON wire form and validates it.
// The wire form is the object produced by upstream pose estimators:
//
//	{
//	  "coord_space": "pixel",
//	  "frames": [
//	    {"index": 0, "timestamp": 0.0,
//	     "keypoints": {"nose": {"x": 412.0, "y": 96.5, "confidence": 0.97}, ...}},
//	    ...
//	  ]
//	}
func Decode(r io.Reader) (Sequence, error) {
	var seq Sequence
	dec := json.NewDecoder(r)
	if err := dec.Decode(&seq); err != nil {
		return Sequence{}, fmt.Errorf("decode sequence: %w", err)
	}
	if err := seq.Validate(); err != nil {
		return Sequence{}, err
	}
	return seq, nil
}

// DecodeBytes is Decode over an in-memory payload.
func DecodeBytes(data []byte) (Sequence, error) {
	var seq Sequence
	if err := json.Unmarshal(data, &seq); err != nil {
		return Sequence{}, fmt.Errorf("decode sequence: %w", err)
	}
	if err := seq.Validate(); err != nil {
		return Sequence{}, err
	}
	return seq, nil
}
