// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/studentenherz/Doppler-Effect-Simulator/audio"
	"github.com/studentenherz/Doppler-Effect-Simulator/internal/hub"
	"github.com/studentenherz/Doppler-Effect-Simulator/internal/log"
	"github.com/studentenherz/Doppler-Effect-Simulator/viewer"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(args []string, stderr io.Writer, lookup env) error {
	cfg, rest, err := loadConfig("serve", args, stderr, lookup)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return errors.New("serve needs an input path")
	}

	traj, err := cfg.Trajectory()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	src, f, err := openSource(rest[0])
	if err != nil {
		return err
	}
	samples, rate, err := audio.ReadMono64(src, 0)
	_ = src.Close()
	_ = f.Close()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	h := hub.New("viewer")
	go h.Run(ctx)

	engine := viewer.NewEngine(samples, rate, traj, opts, cfg.Debounce)
	srv := viewer.NewServer(engine, h, viewer.Config{
		Version: version,
		Debug:   cfg.LogLevel == "debug",
	})
	if _, err := engine.Submit(opts.Listener); err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	errc := make(chan error, 1)
	go func() {
		log.Info("viewer listening", "addr", addr, "input", rest[0], "samples", len(samples), "rate", rate)
		errc <- srv.Listen(addr)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
