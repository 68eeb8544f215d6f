package server

import (
	"encoding/json"

	"blayer/calculator"
	"blayer/model"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Hub 负责一个 websocket 连接的请求分发和结果回推
type Hub struct {
	c    *calculator.Calculator
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

func NewHub(c *calculator.Calculator, conn *websocket.Conn) *Hub {
	return &Hub{
		c:     c,
		conn:  conn,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
		done:  make(chan struct{}),
	}
}

// 只有这一个 goroutine 写连接
func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithField("type", reply.Type).Error("回推消息失败: ", err)
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			reply, ok := h.dispatch(msg)
			if !ok {
				continue
			}
			select {
			case h.reply <- reply:
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) dispatch(msg model.Msg) (model.Msg, bool) {
	switch msg.Type {
	case model.MsgEnv:
		var p model.Params
		if err := json.Unmarshal([]byte(msg.Content), &p); err != nil {
			log.WithField("content", msg.Content).Error("来流参数解析失败: ", err)
			return model.Msg{Type: model.MsgEnvSet, Content: err.Error()}, true
		}
		h.c.SetParams(p)
		return model.Msg{Type: model.MsgEnvSet, Content: "env is set"}, true
	case model.MsgStart:
		data, err := json.Marshal(h.c.Run())
		if err != nil {
			// NaN/Inf 无法编码为 JSON
			log.Error("计算结果编码失败: ", err)
			return model.Msg{Type: model.MsgStarted, Content: err.Error()}, true
		}
		return model.Msg{Type: model.MsgStarted, Content: string(data)}, true
	case model.MsgStop:
		return model.Msg{Type: model.MsgStopped, Content: "stopped"}, true
	default:
		log.WithField("type", msg.Type).Warn("no such type")
		return model.Msg{}, false
	}
}

func (h *Hub) close() {
	close(h.done)
}
