package physics

import "math"

// DerivFunc evaluates dx/dt for a state vector at time t.
type DerivFunc func(x []float64, t float64) []float64

// Ballistic is the projectile ODE over state [x, y, vx, vy]: constant
// horizontal velocity, constant downward acceleration G.
func Ballistic(x []float64, t float64) []float64 {
	return []float64{x[2], x[3], 0, -G}
}

type RK4 struct {
	k1, k2, k3, k4 []float64
	scratch        []float64
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make([]float64, n)
		r.k2 = make([]float64, n)
		r.k3 = make([]float64, n)
		r.k4 = make([]float64, n)
		r.scratch = make([]float64, n)
	}
}

func (r *RK4) Step(f DerivFunc, x []float64, t, dt float64) []float64 {
	n := len(x)
	r.ensureScratch(n)

	copy(r.k1, f(x, t))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*0.5*r.k1[i]
	}
	copy(r.k2, f(r.scratch, t+dt*0.5))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*0.5*r.k2[i]
	}
	copy(r.k3, f(r.scratch, t+dt*0.5))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*r.k3[i]
	}
	copy(r.k4, f(r.scratch, t+dt))

	result := make([]float64, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}
	return result
}

// Integrate steps the ballistic ODE numerically from the launch state
// until the projectile descends through the landing height. It exists as
// a cross-check on the closed-form solver; both should agree to within
// integration error.
func (l *Launch) Integrate(dt float64) ([]Sample, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if dt <= 0 {
		dt = 0.001
	}

	v0x, v0y := l.Components()
	x := []float64{0, l.InitialHeight, v0x, v0y}
	integ := NewRK4()

	out := make([]Sample, 0, 256)
	t := 0.0
	for {
		if x[1] >= l.FinalHeight {
			out = append(out, integratedSample(x, t, l.InitialHeight))
		}
		// Descending below the landing plane ends the flight. The start
		// point is exempt so downward launches still step at least once.
		if t > 0 && x[1] < l.FinalHeight && x[3] < 0 {
			break
		}
		if t > maxFlightTime {
			break
		}
		x = integ.Step(Ballistic, x, t, dt)
		t += dt
	}
	return out, nil
}

// maxFlightTime bounds integration for launches that never land.
const maxFlightTime = 600.0

func integratedSample(x []float64, t, h0 float64) Sample {
	v := math.Sqrt(x[2]*x[2] + x[3]*x[3])
	ke := 0.5 * v * v
	pe := G * (x[1] - h0)
	return Sample{
		Time:        t,
		X:           x[0],
		Y:           x[1],
		VX:          x[2],
		VY:          x[3],
		V:           v,
		Kinetic:     ke,
		Potential:   pe,
		TotalEnergy: ke + pe,
	}
}
