package penalties

import (
	"math"
)

// Derivatives are added to the weights, so a penalty that shrinks the weights subtracts from
// them.

// **********************************************
// L1 (Lasso)
// **********************************************

type l1 float64

// λ is a small value close to 0 where λ > 0
func L1(λ float64) *l1 {
	p := l1(λ)
	return &p
}

// λ is a small value close to 0 where λ > 0
func Lasso(λ float64) *l1 {
	return L1(λ)
}

func (p *l1) TypeString() string {
	return "l1-lasso"
}

func (p *l1) Penalize(deriv, w float64) float64 {
	λ := float64(*p)
	if w == 0 {
		return deriv
	}

	return deriv - λ*math.Copysign(1, w)
}

// **********************************************
// L2 (Ridge)
// **********************************************

type l2 float64

// λ is a small value close to 0 where λ > 0
func L2(λ float64) *l2 {
	p := l2(λ)
	return &p
}

// λ is a small value close to 0 where λ > 0
func Ridge(λ float64) *l2 {
	return L2(λ)
}

func (p *l2) TypeString() string {
	return "l2-ridge"
}

func (p *l2) Penalize(deriv, w float64) float64 {
	return deriv - float64(*p)*w
}

// **********************************************
// L2 with the sign of the first implementation
// **********************************************

type l2Legacy float64

// L2Legacy returns an L2 penalty that adds λ*w to the derivative instead of subtracting it. Because
// derivatives are added to the weights, this pushes the weights away from zero. It exists only to
// reproduce weights trained before the sign was corrected; use L2 otherwise.
func L2Legacy(λ float64) *l2Legacy {
	p := l2Legacy(λ)
	return &p
}

func (p *l2Legacy) TypeString() string {
	return "l2-legacy"
}

func (p *l2Legacy) Penalize(deriv, w float64) float64 {
	return deriv + float64(*p)*w
}
