package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/regmon-lab/regmon/pkg/domain/model"
	"github.com/regmon-lab/regmon/pkg/domain/types"
)

func TestRisk_Scores(t *testing.T) {
	t.Run("inherent score", func(t *testing.T) {
		r := &model.Risk{Likelihood: 4, Impact: 5}
		gt.Value(t, r.InherentScore()).Equal(20)
	})

	t.Run("residual score with full assessment", func(t *testing.T) {
		r := &model.Risk{Likelihood: 4, Impact: 5, ResidualLikelihood: 2, ResidualImpact: 3}
		gt.Value(t, r.ResidualScore()).Equal(6)
	})

	t.Run("residual falls back to inherent when unset", func(t *testing.T) {
		r := &model.Risk{Likelihood: 4, Impact: 5}
		gt.Value(t, r.ResidualScore()).Equal(20)
	})

	t.Run("residual falls back per axis", func(t *testing.T) {
		r := &model.Risk{Likelihood: 4, Impact: 5, ResidualImpact: 2}
		l, i := r.ResidualAxes()
		gt.Value(t, l).Equal(4)
		gt.Value(t, i).Equal(2)
	})
}

func TestRisk_Axes(t *testing.T) {
	r := &model.Risk{Likelihood: 4, Impact: 5, ResidualLikelihood: 2, ResidualImpact: 3}

	l, i := r.Axes(types.ViewInherent)
	gt.Value(t, l).Equal(4)
	gt.Value(t, i).Equal(5)

	l, i = r.Axes(types.ViewResidual)
	gt.Value(t, l).Equal(2)
	gt.Value(t, i).Equal(3)
}
