package entity

import "time"

// CameraPosition describes where the map viewport looks.
type CameraPosition struct {
	Center Coordinate `json:"center"`
	Zoom   float64    `json:"zoom"`
	Pitch  float64    `json:"pitch"`
}

// CameraReason tells the renderer why the camera moved.
type CameraReason string

const (
	CameraReasonInitial   CameraReason = "initial"
	CameraReasonFirstFix  CameraReason = "first_fix"
	CameraReasonRecenter  CameraReason = "recenter"
	CameraReasonSearchHit CameraReason = "search_result"
)

// CameraCommand is an instruction to move the map camera.
type CameraCommand struct {
	Position CameraPosition `json:"position"`
	Animated bool           `json:"animated"`
	Duration time.Duration  `json:"duration"`
	Reason   CameraReason   `json:"reason"`
}
