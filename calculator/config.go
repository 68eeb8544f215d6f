package calculator

import (
	"blayer/model"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

const DefaultPoints = 100

type Config struct {
	Params model.Params
	Points int

	Figure model.Figure
	Output string

	Addr     string
	LogLevel string
}

// 读取配置文件，文件不存在时使用默认值
func LoadConfig(path string) (Config, error) {
	file, err := ini.LooseLoad(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	if len(file.Section("flow").Keys()) == 0 {
		log.WithField("path", path).Warn("配置文件为空或不存在，使用默认参数")
	}
	return loadCfg(file), nil
}

func loadCfg(file *ini.File) Config {
	params := model.DefaultParams()
	figure := model.DefaultFigure()

	flow := file.Section("flow")
	params.Nu = flow.Key("nu").MustFloat64(params.Nu)
	params.UInf = flow.Key("u_inf").MustFloat64(params.UInf)
	params.X = flow.Key("x").MustFloat64(params.X)

	fig := file.Section("figure")
	figure.Width = fig.Key("width").MustFloat64(figure.Width)
	figure.Height = fig.Key("height").MustFloat64(figure.Height)

	return Config{
		Params:   params,
		Points:   file.Section("sampling").Key("points").MustInt(DefaultPoints),
		Figure:   figure,
		Output:   fig.Key("output").MustString("profile.png"),
		Addr:     file.Section("server").Key("addr").MustString(":9000"),
		LogLevel: file.Section("log").Key("level").MustString("info"),
	}
}
