package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evolab-go/evolab/pkg/errs"
	"github.com/evolab-go/evolab/pkg/framework"
)

func validCommon() Common {
	return Common{
		PopSize:        50,
		NumGenerations: 100,
		Bounds:         framework.UniformBounds(3, -5, 5),
		NumObjectives:  2,
		NumConstraints: 0,
	}
}

func TestBuildNSGA2_Valid(t *testing.T) {
	op, err := BuildNSGA2(NSGA2Config{Common: validCommon()})
	assert.NoError(t, err)
	assert.NotNil(t, op)
}

func TestBuildNSGA2_AggregatesViolations(t *testing.T) {
	_, err := BuildNSGA2(NSGA2Config{Common: Common{PopSize: -1, NumGenerations: 0}})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrConfiguration))

	var confErr *errs.ConfigurationError
	assert.True(t, errors.As(err, &confErr))
	assert.True(t, len(confErr.Errors()) >= 3)
}

func TestBuildNSGA2_RejectsPopSizeOfOne(t *testing.T) {
	common := validCommon()
	common.PopSize = 1
	_, err := BuildNSGA2(NSGA2Config{Common: common})
	assert.Error(t, err)
}

func TestBuildNSGA2_RejectsTooFewOffsprings(t *testing.T) {
	common := validCommon()
	common.NumOffsprings = 1
	_, err := BuildNSGA2(NSGA2Config{Common: common})
	assert.Error(t, err)
}

func TestBuildNSGA3_RequiresDivisions(t *testing.T) {
	_, err := BuildNSGA3(NSGA3Config{Common: validCommon(), Divisions: 0})
	assert.Error(t, err)
}

func TestBuildRNSGA2_RequiresReferencePoints(t *testing.T) {
	_, err := BuildRNSGA2(RNSGA2Config{Common: validCommon()})
	assert.Error(t, err)

	op, err := BuildRNSGA2(RNSGA2Config{
		Common:          validCommon(),
		ReferencePoints: [][]float64{{0, 0}},
		Epsilon:         0.1,
	})
	assert.NoError(t, err)
	assert.NotNil(t, op)
}

func TestBuildSPEA2_NegativeKRejected(t *testing.T) {
	_, err := BuildSPEA2(SPEA2Config{Common: validCommon(), K: -1})
	assert.Error(t, err)
}

func TestBuildREVEA_ReturnsReferenceVectors(t *testing.T) {
	op, refDirs, err := BuildREVEA(REVEAConfig{Common: validCommon(), Divisions: 6, RefreshEvery: 10})
	assert.NoError(t, err)
	assert.NotNil(t, op)
	assert.NotEmpty(t, refDirs)
}

func TestBuildIBEAHV_Valid(t *testing.T) {
	op, err := BuildIBEAHV(IBEAHVConfig{Common: validCommon(), ReferenceOffset: 1.1})
	assert.NoError(t, err)
	assert.NotNil(t, op)
}
