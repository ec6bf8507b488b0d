package service

import (
	"github.com/passguard/passguard-go/internal/crypto"
	"github.com/passguard/passguard-go/internal/model"
	"github.com/passguard/passguard-go/internal/strength"
)

// StrengthService composes the evaluator and the generator. It holds no
// mutable state and is safe for concurrent use.
type StrengthService struct {
	evaluator *strength.Evaluator
}

// NewStrengthService creates a StrengthService backed by the given evaluator.
func NewStrengthService(evaluator *strength.Evaluator) *StrengthService {
	return &StrengthService{evaluator: evaluator}
}

// Evaluate assesses the candidate in the request. It never fails.
func (s *StrengthService) Evaluate(req model.EvaluateRequest) strength.Assessment {
	return s.evaluator.Evaluate(req.Password)
}

// Generate produces a password for the requested policy and runs the result
// back through the evaluator. The class guarantee is structural, so the
// assessment always reports the maximum score.
func (s *StrengthService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	policy := crypto.Policy{
		Length:         req.Length,
		ExcludeSimilar: req.ExcludeSimilar,
		Special:        s.evaluator.SpecialChars,
	}
	if policy.Length == 0 {
		policy.Length = crypto.DefaultPolicy().Length
	}

	password, err := crypto.Generate(policy)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password:   password,
		Length:     len(password),
		Assessment: s.evaluator.Evaluate(password),
	}, nil
}
