package metrics

import (
	"math"

	"github.com/san-kum/kinelab/internal/sim"
)

// Peak is the largest value seen at one state index.
type Peak struct {
	name  string
	index int
	max   float64
	seen  bool
}

func NewPeak(name string, index int) *Peak {
	return &Peak{name: name, index: index}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(f sim.Frame) {
	if p.index >= len(f.State) {
		return
	}
	v := f.State[p.index]
	if !p.seen || v > p.max {
		p.max = v
		p.seen = true
	}
}

func (p *Peak) Value() float64 { return p.max }

func (p *Peak) Reset() {
	p.max = 0
	p.seen = false
}

// Span is the peak-to-peak range at one state index, e.g. the full swing of
// a pendulum.
type Span struct {
	name     string
	index    int
	min, max float64
	samples  int
}

func NewSpan(name string, index int) *Span {
	return &Span{name: name, index: index}
}

func (s *Span) Name() string { return s.name }

func (s *Span) Observe(f sim.Frame) {
	if s.index >= len(f.State) {
		return
	}
	v := f.State[s.index]
	if s.samples == 0 {
		s.min, s.max = v, v
	}
	s.min = math.Min(s.min, v)
	s.max = math.Max(s.max, v)
	s.samples++
}

func (s *Span) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.max - s.min
}

func (s *Span) Reset() {
	s.min, s.max = 0, 0
	s.samples = 0
}
