// SPDX-License-Identifier: EPL-2.0

package viewer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	dopplersim "github.com/studentenherz/Doppler-Effect-Simulator"
	"github.com/studentenherz/Doppler-Effect-Simulator/doppler"
	"github.com/studentenherz/Doppler-Effect-Simulator/formats/wav"
	"github.com/studentenherz/Doppler-Effect-Simulator/internal/hub"
	"github.com/studentenherz/Doppler-Effect-Simulator/internal/log"
)

const (
	defaultStatePoints      = 2000
	defaultTrajectoryPoints = 100
	maxPoints               = 100_000
)

type Config struct {
	Version string
	Debug   bool // request logging
}

// Server exposes an Engine over HTTP and pushes frame summaries to websocket
// clients.
type Server struct {
	app     *fiber.App
	engine  *Engine
	hub     *hub.Hub
	version string
	log     *slog.Logger
}

// NewServer wires routes and installs a frame callback on e that broadcasts
// through h. h must be running for websocket clients to connect.
func NewServer(e *Engine, h *hub.Hub, cfg Config) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "doppler-viewer",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	if cfg.Debug {
		app.Use(logger.New())
	}

	s := &Server{
		app:     app,
		engine:  e,
		hub:     h,
		version: cfg.Version,
		log:     log.With("component", "viewer"),
	}

	app.Get("/health", s.health)

	api := app.Group("/api")
	api.Get("/state", s.state)
	api.Get("/trajectory", s.trajectory)
	api.Get("/source", s.source)
	api.Post("/listener", s.moveListener)
	api.Get("/audio.wav", s.audio)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(s.handleWS))

	e.OnFrame(s.broadcast)
	return s
}

func (s *Server) App() *fiber.App { return s.app }

func (s *Server) Listen(addr string) error { return s.app.Listen(addr) }

// Serve accepts connections on ln until shutdown.
func (s *Server) Serve(ln net.Listener) error { return s.app.Listener(ln) }

func (s *Server) Shutdown(ctx context.Context) error {
	s.engine.Close()
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("shutting down viewer: %w", err)
	}
	return nil
}

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func toPoint(p doppler.Point) point { return point{X: p.X, Y: p.Y} }

type series struct {
	T []float64 `json:"t"`
	V []float64 `json:"v"`
}

type frameSummary struct {
	Type       string  `json:"type"`
	Job        string  `json:"job"`
	Listener   point   `json:"listener"`
	SampleRate int     `json:"sample_rate"`
	Samples    int     `json:"samples"`
	Delay      float64 `json:"delay"`
	Duration   float64 `json:"duration"`
	Reordered  bool    `json:"reordered"`
	ElapsedMS  float64 `json:"elapsed_ms"`
}

func summarize(f Frame) frameSummary {
	return frameSummary{
		Type:       "frame",
		Job:        f.Job,
		Listener:   toPoint(f.Listener),
		SampleRate: f.Result.SampleRate,
		Samples:    len(f.Result.Samples),
		Delay:      f.Result.Delay(),
		Duration:   f.Result.Duration(),
		Reordered:  f.Result.Reordered,
		ElapsedMS:  float64(f.Elapsed.Microseconds()) / 1000,
	}
}

func (s *Server) broadcast(f Frame) {
	if err := s.hub.BroadcastJSON(summarize(f)); err != nil {
		s.log.Warn("broadcast failed", "job", f.Job, "error", err)
	}
}

func (s *Server) handleWS(conn *websocket.Conn) {
	client := hub.NewClient(s.hub, conn)
	if client == nil {
		return
	}

	// New clients get the current frame straight away.
	if f, err := s.engine.Snapshot(); err == nil {
		s.broadcast(f)
	}
	client.Run()
}

func fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// queryInt parses an optional positive integer query parameter.
func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 2 || n > maxPoints {
		return 0, fmt.Errorf("%s must be an integer in [2, %d]", key, maxPoints)
	}
	return n, nil
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "version": s.version})
}

func (s *Server) state(c *fiber.Ctx) error {
	points, err := queryInt(c, "points", defaultStatePoints)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}

	f, err := s.engine.Snapshot()
	if err != nil {
		return fail(c, fiber.StatusConflict, err)
	}

	res := f.Result
	return c.JSON(fiber.Map{
		"frame":    summarize(f),
		"distance": decimate(res.Emission, res.Distance, points),
		"wave":     decimate(res.Times, res.Samples, points),
	})
}

// decimate keeps at most n evenly strided points, always including the last.
func decimate(t, v []float64, n int) series {
	if len(t) <= n {
		return series{T: t, V: v}
	}

	stride := (len(t) + n - 3) / (n - 1) // ceil((len-1)/(n-1))
	out := series{T: make([]float64, 0, n), V: make([]float64, 0, n)}
	for i := 0; i < len(t)-1; i += stride {
		out.T = append(out.T, t[i])
		out.V = append(out.V, v[i])
	}
	last := len(t) - 1
	out.T = append(out.T, t[last])
	out.V = append(out.V, v[last])
	return out
}

func (s *Server) trajectory(c *fiber.Ctx) error {
	points, err := queryInt(c, "points", defaultTrajectoryPoints)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}

	period := s.engine.InputDuration()
	if circ, ok := s.engine.Trajectory().(doppler.Circular); ok && circ.Period() > 0 {
		period = circ.Period()
	}
	if raw := c.Query("period"); raw != "" {
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil || !(p > 0) || !finiteFloat(p) {
			return fail(c, fiber.StatusBadRequest, errors.New("period must be a positive number"))
		}
		period = p
	}

	traj := s.engine.Trajectory()
	path := make([]point, points)
	for i := range path {
		t := period * float64(i) / float64(points-1)
		path[i] = toPoint(traj.Position(t))
	}
	return c.JSON(fiber.Map{"period": period, "points": path})
}

func (s *Server) source(c *fiber.Ctx) error {
	t, err := strconv.ParseFloat(c.Query("t"), 64)
	if err != nil || !finiteFloat(t) {
		return fail(c, fiber.StatusBadRequest, errors.New("t must be a finite number"))
	}

	p := s.engine.Trajectory().Position(t)
	return c.JSON(fiber.Map{"t": t, "x": p.X, "y": p.Y})
}

type listenerRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

func (s *Server) moveListener(c *fiber.Ctx) error {
	var req listenerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, fmt.Errorf("decoding body: %w", err))
	}
	if req.X == nil || req.Y == nil {
		return fail(c, fiber.StatusBadRequest, errors.New("x and y are required"))
	}

	job, err := s.engine.Submit(doppler.Point{X: *req.X, Y: *req.Y})
	switch {
	case errors.Is(err, ErrInvalidListener):
		return fail(c, fiber.StatusBadRequest, err)
	case err != nil:
		return fail(c, fiber.StatusServiceUnavailable, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"job": job})
}

func (s *Server) audio(c *fiber.Ctx) error {
	f, err := s.engine.Snapshot()
	if err != nil {
		return fail(c, fiber.StatusConflict, err)
	}

	var buf bytes.Buffer
	if err := wav.WriteWAV16(&buf, f.Result.SampleRate, dopplersim.ToPCM16(f.Result.Samples)); err != nil {
		return fail(c, fiber.StatusInternalServerError, err)
	}

	c.Set(fiber.HeaderContentType, "audio/wav")
	c.Set("X-Job", f.Job)
	return c.Send(buf.Bytes())
}
