package calculator

import (
	"sync"

	"blayer/model"

	log "github.com/sirupsen/logrus"
)

// 计算流程：参数 -> Re_x -> delta -> y 采样 -> eta -> u
func Calculate(p model.Params, n int) *model.Profile {
	re := ReynoldsNumber(p.UInf, p.X, p.Nu)
	delta := BoundaryLayerThickness(re, p.X)
	ys := Sample(delta, n)
	etas := EtaSlice(ys, p.X, p.UInf, p.Nu)
	return &model.Profile{
		Params: p,
		Re:     re,
		Delta:  delta,
		Y:      ys,
		Eta:    etas,
		U:      VelocityRatioSlice(etas),
	}
}

// Calculator 持有当前来流参数和最近一次的计算结果，可被多个连接共享
type Calculator struct {
	mu     sync.RWMutex
	params model.Params
	points int
	last   *model.Profile
}

func NewCalculator(cfg Config) *Calculator {
	points := cfg.Points
	if points < 2 {
		points = DefaultPoints
	}
	return &Calculator{
		params: cfg.Params,
		points: points,
	}
}

func (c *Calculator) SetParams(p model.Params) {
	c.mu.Lock()
	c.params = p
	c.last = nil
	c.mu.Unlock()
	log.WithFields(log.Fields{
		"nu":    p.Nu,
		"u_inf": p.UInf,
		"x":     p.X,
	}).Info("设置来流参数")
}

func (c *Calculator) Params() model.Params {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.params
}

// 运行一次计算
func (c *Calculator) Run() *model.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	profile := Calculate(c.params, c.points)
	c.last = profile
	n := len(profile.Y)
	log.WithFields(log.Fields{
		"re":     profile.Re,
		"delta":  profile.Delta,
		"points": n,
		"eta":    profile.Eta[n-1],
		"u":      profile.U[n-1],
	}).Info("边界层速度剖面计算完成")
	return profile
}

// 获取最近一次结果，没有则先计算
func (c *Calculator) BuildData() *model.Profile {
	c.mu.RLock()
	last := c.last
	c.mu.RUnlock()
	if last != nil {
		return last
	}
	return c.Run()
}
