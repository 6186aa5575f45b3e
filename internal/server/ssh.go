package server

import (
	"fmt"
	"io"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/gliderlabs/ssh"

	"noisy/gen"
	"noisy/internal/render"
)

// Defaults for a fresh session view.
const (
	DefaultStep = 0.05
	DefaultX    = 123.0
	DefaultY    = 132.0
	zoomFactor  = 1.25
	panCells    = 4
)

// Action is one decoded key press.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionZoomIn
	ActionZoomOut
	ActionSliceBack
	ActionSliceForward
	ActionDim1
	ActionDim2
	ActionDim3
	ActionQuit
)

// SSHServer serves live noise previews over SSH. The login name picks the
// generator kind: ssh -p 2222 simplex@host.
type SSHServer struct {
	addr    string
	hostKey string
	seed    int64
	gens    *GenCache
}

// NewSSHServer creates a new SSH server bound to the given address. A zero
// seed gives every generator kind its own random seed for the server's
// lifetime.
func NewSSHServer(addr, hostKey string, seed int64, gens *GenCache) *SSHServer {
	return &SSHServer{
		addr:    addr,
		hostKey: hostKey,
		seed:    seed,
		gens:    gens,
	}
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	// Set host key
	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	// Require PTY
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	kind, err := gen.ParseKind(sess.User())
	if err != nil {
		fmt.Fprintf(sess, "Error: %v. Log in as one of: %s\n", err, kindList())
		return
	}

	g, seed := s.gens.Get(kind, s.seed)
	log.Printf("Session opened: %s (%s, seed %d)", sess.RemoteAddr(), kind, seed)
	defer log.Printf("Session closed: %s (%s)", sess.RemoteAddr(), kind)

	st := &viewState{
		frame: render.Frame{
			Gen:      g,
			Kind:     kind,
			Seed:     seed,
			Dim:      2,
			View:     render.Viewport{X: DefaultX, Y: DefaultY, Step: DefaultStep},
			Gradient: render.ForKind(kind),
		},
	}
	engine := render.NewEngine(ptyReq.Window.Width, ptyReq.Window.Height)
	st.resize(engine.FieldSize())

	// Setup terminal
	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	io.WriteString(sess, render.ClearScreen())
	defer func() {
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
	}()

	actionCh := make(chan Action, 16)
	quitCh := make(chan struct{})

	// Goroutine: read input
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quitCh)
				return
			}
			for _, action := range parseInput(buf[:n]) {
				if action == ActionQuit {
					close(quitCh)
					return
				}
				select {
				case actionCh <- action:
				default:
				}
			}
		}
	}()

	io.WriteString(sess, engine.Render(st.frame))

	// Main render loop: redraw after every input or resize
	for {
		select {
		case <-quitCh:
			return
		case win, ok := <-winCh:
			if !ok {
				return
			}
			engine.Resize(win.Width, win.Height)
			st.resize(engine.FieldSize())
		case action := <-actionCh:
			st.apply(action)
		}
		if out := engine.Render(st.frame); len(out) > 0 {
			io.WriteString(sess, out)
		}
	}
}

// viewState is the per-session camera over a generator. It is only touched
// by the session's render loop.
type viewState struct {
	frame render.Frame
}

func (st *viewState) resize(w, h int) {
	st.frame.View.W = w
	st.frame.View.H = h
}

func (st *viewState) apply(a Action) {
	v := st.frame.View
	switch a {
	case ActionUp:
		v = v.Pan(0, -panCells)
	case ActionDown:
		v = v.Pan(0, panCells)
	case ActionLeft:
		v = v.Pan(-panCells, 0)
	case ActionRight:
		v = v.Pan(panCells, 0)
	case ActionZoomIn:
		v = v.Zoom(1 / zoomFactor)
	case ActionZoomOut:
		v = v.Zoom(zoomFactor)
	case ActionSliceBack:
		v = v.Slide(-1)
	case ActionSliceForward:
		v = v.Slide(1)
	case ActionDim1:
		st.frame.Dim = 1
	case ActionDim2:
		st.frame.Dim = 2
	case ActionDim3:
		st.frame.Dim = 3
	}
	st.frame.View = v
}

func kindList() string {
	names := make([]string, 0, len(gen.Kinds()))
	for _, k := range gen.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

// parseInput converts raw bytes into view actions.
// Handles WASD, arrow key escape sequences, zoom, slice and dimension keys,
// Q, and Ctrl-C.
func parseInput(data []byte) []Action {
	var actions []Action
	i := 0
	for i < len(data) {
		// Check for escape sequences (arrow keys)
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				actions = append(actions, ActionUp)
			case 'B':
				actions = append(actions, ActionDown)
			case 'C':
				actions = append(actions, ActionRight)
			case 'D':
				actions = append(actions, ActionLeft)
			}
			i += 3
			continue
		}

		// Single byte inputs
		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'w', 'W':
			actions = append(actions, ActionUp)
		case 's', 'S':
			actions = append(actions, ActionDown)
		case 'a', 'A':
			actions = append(actions, ActionLeft)
		case 'd', 'D':
			actions = append(actions, ActionRight)
		case '+', '=':
			actions = append(actions, ActionZoomIn)
		case '-', '_':
			actions = append(actions, ActionZoomOut)
		case 'z', 'Z':
			actions = append(actions, ActionSliceBack)
		case 'x', 'X':
			actions = append(actions, ActionSliceForward)
		case '1':
			actions = append(actions, ActionDim1)
		case '2':
			actions = append(actions, ActionDim2)
		case '3':
			actions = append(actions, ActionDim3)
		case 'q', 'Q':
			actions = append(actions, ActionQuit)
		case 3: // Ctrl-C
			actions = append(actions, ActionQuit)
		}
		i += size
	}
	return actions
}
