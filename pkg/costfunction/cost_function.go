package costfunction

import (
	"github.com/sitelayout/planner/pkg/util"
)

// OptimizationCriteria selects the edge weighting policy of the cost graph.
// Closed set: every criteria maps to exactly one CostFunction. The zero value
// is the balanced default.
type OptimizationCriteria uint8

const (
	BALANCED OptimizationCriteria = iota
	MINIMAL_LENGTH
	MINIMAL_EARTHWORK
	MINIMAL_GRADE
)

func (c OptimizationCriteria) String() string {
	switch c {
	case MINIMAL_LENGTH:
		return "minimal_length"
	case MINIMAL_EARTHWORK:
		return "minimal_earthwork"
	case BALANCED:
		return "balanced"
	case MINIMAL_GRADE:
		return "minimal_grade"
	}
	return "unknown"
}

// ParseOptimizationCriteria maps the request string to a criteria. The empty
// string selects the balanced default.
func ParseOptimizationCriteria(s string) (OptimizationCriteria, error) {
	switch s {
	case "minimal_length":
		return MINIMAL_LENGTH, nil
	case "minimal_earthwork":
		return MINIMAL_EARTHWORK, nil
	case "balanced", "":
		return BALANCED, nil
	case "minimal_grade":
		return MINIMAL_GRADE, nil
	}
	return BALANCED, util.WrapErrorf(nil, util.ErrBadParamInput,
		"unknown optimization criteria: %q", s)
}

// CostFunction computes the weight of a grade-compliant edge from its
// great-circle distance (meters) and percent grade. Every implementation
// returns a weight >= distance: grade is only ever penalized.
type CostFunction interface {
	Weight(distanceM, gradePercent float64) float64
}

type MinimalLengthCost struct{}

func (MinimalLengthCost) Weight(distanceM, gradePercent float64) float64 {
	return distanceM
}

// MinimalEarthworkCost. steeper slopes mean more cut/fill, penalize linearly.
type MinimalEarthworkCost struct{}

func (MinimalEarthworkCost) Weight(distanceM, gradePercent float64) float64 {
	return distanceM * (1 + gradePercent/5)
}

type BalancedCost struct{}

func (BalancedCost) Weight(distanceM, gradePercent float64) float64 {
	return distanceM * (1 + gradePercent/10)
}

// MinimalGradeCost. quadratic penalty, strongly prefers flat routes.
type MinimalGradeCost struct{}

func (MinimalGradeCost) Weight(distanceM, gradePercent float64) float64 {
	halfGrade := gradePercent / 2
	return distanceM * (1 + halfGrade*halfGrade)
}

// NewCostFunction total mapping from criteria to weight strategy.
func NewCostFunction(criteria OptimizationCriteria) CostFunction {
	switch criteria {
	case MINIMAL_LENGTH:
		return MinimalLengthCost{}
	case MINIMAL_EARTHWORK:
		return MinimalEarthworkCost{}
	case MINIMAL_GRADE:
		return MinimalGradeCost{}
	case BALANCED:
		return BalancedCost{}
	}
	return BalancedCost{}
}
