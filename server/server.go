package server

import (
	"net/http"
	"path"
	"strings"

	"blayer/calculator"
	"blayer/model"
	"blayer/renderer"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	c        *calculator.Calculator
	figure   model.Figure
}

func NewServer(addr string, upgrader websocket.Upgrader, c *calculator.Calculator, figure model.Figure) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		c:        c,
		figure:   figure,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("websocket upgrade: ", err)
		return
	}
	defer conn.Close()

	hub := NewHub(s.c, conn)
	defer hub.close()
	go hub.handleRequest()
	go hub.handleResponse()
	log.WithField("remote", r.RemoteAddr).Info("websocket 已连接")
	for {
		var msg model.Msg
		if err = conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("websocket read: ", err)
			}
			return
		}
		hub.msg <- msg
	}
}

// 按请求路径扩展名渲染当前速度剖面图
func (s *Server) servePlot(w http.ResponseWriter, r *http.Request) {
	format := strings.TrimPrefix(path.Ext(r.URL.Path), ".")
	contentType, ok := contentTypes[format]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", contentType)
	if err := renderer.WriteTo(w, s.c.BuildData(), s.figure, format); err != nil {
		log.WithField("format", format).Error("绘图失败: ", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

var contentTypes = map[string]string{
	"png": "image/png",
	"svg": "image/svg+xml",
	"pdf": "application/pdf",
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	mux.HandleFunc("/plot.png", s.servePlot)
	mux.HandleFunc("/plot.svg", s.servePlot)
	mux.HandleFunc("/plot.pdf", s.servePlot)
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.addr).Info("服务启动")
	if err := http.ListenAndServe(s.addr, s.Handler()); err != nil {
		return errors.Wrap(err, "ListenAndServe")
	}
	return nil
}
