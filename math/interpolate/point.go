package interpolate

import (
	"fmt"
)

// Term is a single contribution of an axis to the tensor product: the grid
// point at Floor + Offset, weighted by Weight. Offsets range over -1 to 2.
type Term struct {
	Offset int
	Weight float64
}

// AxisPoint describes where a target coordinate lies along one axis and how
// the grid values around it are blended.
type AxisPoint struct {
	// Floor is the index of the grid point at or below the coordinate. For
	// constant resolution it is the index of the grid edge being held.
	Floor int
	// Fraction is the position of the coordinate within the interval
	// starting at Floor.
	Fraction float64
	Bounds   Bounds
	// Method is the method actually used for this coordinate.
	Method Method
	// Coeffs holds {1 - f, f} style weights for constant and linear methods
	// and {h00, h01, h10*s0, h11*s1} for cubic, where the h's are Hermite
	// basis functions and the s's are the axis's spacing multipliers.
	Coeffs []float64
	// Terms are the grid offsets and weights which Coeffs expand to.
	Terms []Term

	coeffs [4]float64
	terms  [4]Term
}

// Point is a target point resolved against a GriddedData. Points are cheap
// to recompute and are not safe for concurrent use.
type Point struct {
	Target []float64
	Axes   []AxisPoint
	// Bounds is the most severe bounds classification over all axes.
	Bounds Bounds

	version uint64
	// Buffers for the evaluator.
	counters, coords []int
}

// NewPoint resolves a target against a GriddedData.
func NewPoint(d *GriddedData, target []float64) (*Point, error) {
	p := &Point{}
	if err := p.Init(d, target); err != nil {
		return nil, err
	}
	return p, nil
}

// Init resolves a target against a GriddedData, reusing p's buffers. The
// target is copied.
func (p *Point) Init(d *GriddedData, target []float64) error {
	n := d.NDims()
	if len(target) != n {
		return fmt.Errorf(
			"%w: target has %d coordinates, but the grid has %d axes",
			ErrDimensionMismatch, len(target), n,
		)
	}

	if cap(p.Axes) < n {
		p.Axes = make([]AxisPoint, n)
		p.counters = make([]int, n)
		p.coords = make([]int, n)
	}
	p.Axes = p.Axes[:n]
	p.counters, p.coords = p.counters[:n], p.coords[:n]
	p.Target = append(p.Target[:0], target...)

	p.Bounds = InRange
	for dim := range p.Axes {
		ap := &p.Axes[dim]
		ap.resolve(d.axes[dim], target[dim])
		if ap.Bounds > p.Bounds {
			p.Bounds = ap.Bounds
		}
	}
	p.version = d.version()

	return nil
}

// current returns true if p was resolved against d's present configuration.
func (p *Point) current(d *GriddedData) bool {
	return len(p.Axes) == d.NDims() && p.version == d.version()
}

// Clone returns a deep copy of p.
func (p *Point) Clone() *Point {
	q := &Point{
		Target:   append([]float64(nil), p.Target...),
		Axes:     make([]AxisPoint, len(p.Axes)),
		Bounds:   p.Bounds,
		version:  p.version,
		counters: make([]int, len(p.counters)),
		coords:   make([]int, len(p.coords)),
	}
	for i := range p.Axes {
		q.Axes[i] = p.Axes[i]
		q.Axes[i].Coeffs = q.Axes[i].coeffs[:len(p.Axes[i].Coeffs)]
		q.Axes[i].Terms = q.Axes[i].terms[:len(p.Axes[i].Terms)]
	}
	return q
}

// Floors returns the floor index of every axis.
func (p *Point) Floors() []int {
	out := make([]int, len(p.Axes))
	for i := range p.Axes {
		out[i] = p.Axes[i].Floor
	}
	return out
}

// Fractions returns the fraction of every axis.
func (p *Point) Fractions() []float64 {
	out := make([]float64, len(p.Axes))
	for i := range p.Axes {
		out[i] = p.Axes[i].Fraction
	}
	return out
}

// Methods returns the resolved method of every axis.
func (p *Point) Methods() []Method {
	out := make([]Method, len(p.Axes))
	for i := range p.Axes {
		out[i] = p.Axes[i].Method
	}
	return out
}

// boundsMethods maps the bounds of a coordinate to the method used for it.
var boundsMethods = [numBounds]func(a *Axis) Method{
	InRange:       func(a *Axis) Method { return a.interp },
	OutOfRange:    func(a *Axis) Method { return a.extrap },
	OutsideLimits: func(*Axis) Method { return MethodConstant },
}

// methodCoeffs maps a method to the function which fills in an AxisPoint's
// coefficients and terms.
var methodCoeffs = [numMethods]func(ap *AxisPoint, a *Axis){
	MethodConstant: constantCoeffs,
	MethodLinear:   linearCoeffs,
	MethodCubic:    cubicCoeffs,
}

func (ap *AxisPoint) resolve(a *Axis, x float64) {
	ap.Floor, ap.Fraction, ap.Bounds = a.Locate(x)
	ap.Method = boundsMethods[ap.Bounds](a)
	// There's no interval to blend over on single point axes or exactly on
	// the last grid point.
	if ap.Floor == a.Len()-1 {
		ap.Method = MethodConstant
	}
	methodCoeffs[ap.Method](ap, a)
}

func constantCoeffs(ap *AxisPoint, a *Axis) {
	if ap.Fraction > 0.5 {
		ap.Floor++
	}
	ap.Fraction = 0

	ap.coeffs[0], ap.coeffs[1] = 1, 0
	ap.Coeffs = ap.coeffs[:2]
	ap.terms[0] = Term{0, 1}
	ap.Terms = ap.terms[:1]
}

func linearCoeffs(ap *AxisPoint, a *Axis) {
	f := ap.Fraction

	ap.coeffs[0], ap.coeffs[1] = 1-f, f
	ap.Coeffs = ap.coeffs[:2]
	ap.terms[0] = Term{0, 1 - f}
	ap.terms[1] = Term{1, f}
	ap.Terms = ap.terms[:2]
}

// cubicCoeffs computes the Hermite weights for the interval starting at
// ap.Floor. The tangents at the floor and ceiling are centered differences
// scaled by the spacing multipliers, m0 = s0*(y1 - y_-1) and
// m1 = s1*(y2 - y0). At the edges of the grid the missing neighbor is
// clamped to the edge point and the multiplier is 1, giving a one-sided
// difference.
func cubicCoeffs(ap *AxisPoint, a *Axis) {
	f := ap.Fraction
	f2 := f * f
	f3 := f2 * f

	h00 := 2*f3 - 3*f2 + 1
	h01 := -2*f3 + 3*f2
	h10 := f3 - 2*f2 + f
	h11 := f3 - f2

	c := &ap.coeffs
	c[0], c[1] = h00, h01
	c[2] = h10 * a.mults[Floor][ap.Floor]
	c[3] = h11 * a.mults[Ceiling][ap.Floor]
	ap.Coeffs = c[:4]

	ap.terms[0] = Term{-1, -c[2]}
	ap.terms[1] = Term{0, c[0] - c[3]}
	ap.terms[2] = Term{1, c[1] + c[2]}
	ap.terms[3] = Term{2, c[3]}
	ap.Terms = ap.terms[:4]
}
