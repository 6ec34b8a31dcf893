// Package viz streams published transforms to websocket clients so
// the estimated frame can be watched live in a browser viewer.
package viz

import (
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fx "github.com/robotracks/odom.go/pkg/framework"
	"github.com/robotracks/odom.go/pkg/msgs"
)

// Frame is the JSON view of a transform sent to viewers.
type Frame struct {
	Stamp   int64   `json:"stamp_nsec"`
	Frame   string  `json:"frame"`
	Child   string  `json:"child"`
	Heading float64 `json:"heading"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// Server accepts websocket viewers on /frames and pushes every
// broadcast transform to each of them. It implements
// odometry.TransformSink and framework.Runnable.
type Server struct {
	Addr string

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// NewServer creates a Server listening on addr.
func NewServer(addr string) *Server {
	return &Server{Addr: addr, conns: make(map[*websocket.Conn]bool)}
}

// Name implements Named.
func (s *Server) Name() string {
	return "viz"
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/frames", websocket.Handler(s.serveViewer))
	srv := &http.Server{Addr: s.Addr, Handler: mux}
	glog.Infof("viz listening on %s", s.Addr)
	return fx.RunWithContextCloser(ctx, srv, func() error {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

// SendTransform implements TransformSink. Viewers that fail to
// receive are dropped.
func (s *Server) SendTransform(msg *msgs.TransformStamped) error {
	stamp := msg.Stamp.Time()
	data, err := json.Marshal(&Frame{
		Stamp:   stamp.UnixNano(),
		Frame:   msg.FrameId,
		Child:   msg.ChildFrameId,
		Heading: msg.Heading,
		X:       msg.Translation.X,
		Y:       msg.Translation.Y,
	})
	if err != nil {
		return err
	}
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.conns))
	for conn := range s.conns {
		conns = append(conns, conn)
	}
	s.mu.Unlock()
	for _, conn := range conns {
		if err := websocket.Message.Send(conn, string(data)); err != nil {
			glog.Warningf("drop viewer %s: %v", conn.Request().RemoteAddr, err)
			s.drop(conn)
		}
	}
	return nil
}

func (s *Server) serveViewer(conn *websocket.Conn) {
	glog.V(1).Infof("viewer connected: %s", conn.Request().RemoteAddr)
	s.mu.Lock()
	s.conns[conn] = true
	s.mu.Unlock()
	// Viewers are write-only; block until the peer goes away.
	io.Copy(ioutil.Discard, conn)
	s.drop(conn)
	glog.V(1).Infof("viewer disconnected: %s", conn.Request().RemoteAddr)
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	conn.Close()
}
