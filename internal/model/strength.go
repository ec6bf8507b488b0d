package model

import "github.com/passguard/passguard-go/internal/strength"

// EvaluateRequest carries a candidate password to assess. The password is
// never stored or logged.
type EvaluateRequest struct {
	Password string `json:"password"`
}

// GenerateRequest carries the generation policy. A zero length means the
// default.
type GenerateRequest struct {
	Length         int  `json:"length"`
	ExcludeSimilar bool `json:"excludeSimilar"`
}

// GenerateResponse carries a freshly generated password together with its
// self-check assessment.
type GenerateResponse struct {
	Password   string              `json:"password"`
	Length     int                 `json:"length"`
	Assessment strength.Assessment `json:"assessment"`
}
