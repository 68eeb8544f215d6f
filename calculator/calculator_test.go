package calculator

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"blayer/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CalculatorSuite struct {
	suite.Suite
	params model.Params
}

func (s *CalculatorSuite) SetupTest() {
	s.params = model.DefaultParams()
}

func (s *CalculatorSuite) TestCalculate() {
	p := Calculate(s.params, DefaultPoints)
	s.Require().Len(p.Y, DefaultPoints)
	s.Require().Len(p.Eta, DefaultPoints)
	s.Require().Len(p.U, DefaultPoints)
	s.InEpsilon(66666.67, p.Re, 0.01)
	s.InEpsilon(0.01936, p.Delta, 0.01)
	s.Equal(s.params, p.Params)
}

// 末点：y = delta，eta = delta * sqrt(U/(nu x))，u = tanh(eta)
func (s *CalculatorSuite) TestLastPoint() {
	p := Calculate(s.params, DefaultPoints)
	last := len(p.Y) - 1

	s.Equal(p.Delta, p.Y[last])
	wantEta := p.Delta * math.Sqrt(s.params.UInf/(s.params.Nu*s.params.X))
	s.Equal(wantEta, p.Eta[last])
	// delta * sqrt(U/(nu x)) 化简为 5
	s.InDelta(5.0, p.Eta[last], 1e-9)
	s.Equal(math.Tanh(wantEta), p.U[last])
	s.InDelta(1.0, p.U[last], 1e-3)
}

func (s *CalculatorSuite) TestIdempotent() {
	a := Calculate(s.params, DefaultPoints)
	b := Calculate(s.params, DefaultPoints)
	s.Equal(a, b)
	for i := range a.Y {
		s.Equal(math.Float64bits(a.Y[i]), math.Float64bits(b.Y[i]))
		s.Equal(math.Float64bits(a.Eta[i]), math.Float64bits(b.Eta[i]))
		s.Equal(math.Float64bits(a.U[i]), math.Float64bits(b.U[i]))
	}
}

func (s *CalculatorSuite) TestCalculatorRun() {
	c := NewCalculator(Config{Params: s.params, Points: DefaultPoints})
	p := c.Run()
	s.Same(p, c.BuildData())

	c.SetParams(model.Params{Nu: 1e-6, UInf: 2, X: 0.5})
	q := c.BuildData()
	s.NotSame(p, q)
	s.Equal(2.0, q.Params.UInf)
	s.InEpsilon(1e6, q.Re, 1e-12)
}

func (s *CalculatorSuite) TestCalculatorDefaultsPoints() {
	c := NewCalculator(Config{Params: s.params})
	s.Len(c.Run().Y, DefaultPoints)
}

func TestCalculatorSuite(t *testing.T) {
	suite.Run(t, new(CalculatorSuite))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	content := "[flow]\nnu = 1e-6\nu_inf = 3\n\n[sampling]\npoints = 50\n\n[figure]\noutput = out.svg\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1e-6, cfg.Params.Nu)
	assert.Equal(t, 3.0, cfg.Params.UInf)
	assert.Equal(t, 1.0, cfg.Params.X)
	assert.Equal(t, 50, cfg.Points)
	assert.Equal(t, "out.svg", cfg.Output)
	assert.Equal(t, 8.0, cfg.Figure.Width)
	assert.Equal(t, ":9000", cfg.Addr)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.ini"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultParams(), cfg.Params)
	assert.Equal(t, DefaultPoints, cfg.Points)
	assert.Equal(t, model.DefaultFigure(), cfg.Figure)
	assert.Equal(t, "profile.png", cfg.Output)
}

func TestLoadRepoConfig(t *testing.T) {
	cfg, err := LoadConfig("../conf/config.ini")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultParams(), cfg.Params)
	assert.Equal(t, DefaultPoints, cfg.Points)
}
