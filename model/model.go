package model

// 来流参数，单位：m^2/s, m/s, m
type Params struct {
	Nu   float64 `json:"nu"`
	UInf float64 `json:"u_inf"`
	X    float64 `json:"x"`
}

func DefaultParams() Params {
	return Params{
		Nu:   1.5e-5,
		UInf: 1,
		X:    1,
	}
}

// 一次计算的结果
// Y, Eta, U 下标一一对应同一个物理点
type Profile struct {
	Params Params    `json:"params"`
	Re     float64   `json:"re"`
	Delta  float64   `json:"delta"`
	Y      []float64 `json:"y"`
	Eta    []float64 `json:"eta"`
	U      []float64 `json:"u"`
}

// 绘图配置，宽高单位为英寸
type Figure struct {
	Width           float64
	Height          float64
	Title           string
	XLabel          string
	YLabel          string
	CurveLabel      string
	FreeStreamLabel string
}

func DefaultFigure() Figure {
	return Figure{
		Width:           8,
		Height:          6,
		Title:           "Boundary Layer Velocity Profile Over a Flat Plate",
		XLabel:          "u/U_inf (Normalized Velocity)",
		YLabel:          "y (m)",
		CurveLabel:      "Velocity Profile",
		FreeStreamLabel: "Free Stream Velocity",
	}
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const (
	MsgEnv     = "env"
	MsgEnvSet  = "envSet"
	MsgStart   = "start"
	MsgStarted = "started"
	MsgStop    = "stop"
	MsgStopped = "stopped"
)
