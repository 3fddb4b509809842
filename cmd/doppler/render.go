// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	dopplersim "github.com/studentenherz/Doppler-Effect-Simulator"
	"github.com/studentenherz/Doppler-Effect-Simulator/formats/wav"
	"github.com/studentenherz/Doppler-Effect-Simulator/internal/log"
)

func renderCmd(args []string, stdout, stderr io.Writer, lookup env) error {
	cfg, rest, err := loadConfig("render", args, stderr, lookup)
	if err != nil {
		return err
	}
	if len(rest) != 2 {
		return errors.New("render needs an input and an output path")
	}
	inPath, outPath := rest[0], rest[1]

	traj, err := cfg.Trajectory()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	src, f, err := openSource(inPath)
	if err != nil {
		return err
	}
	defer f.Close()
	defer src.Close()

	start := time.Now()
	res, err := dopplersim.Render(src, traj, opts)
	if err != nil {
		return err
	}
	log.Info("rendered",
		"input", inPath,
		"samples", len(res.Samples),
		"rate", res.SampleRate,
		"delay", res.Delay(),
		"reordered", res.Reordered,
		"elapsed", time.Since(start))

	samples, rate := res.Samples, res.SampleRate
	if cfg.OutRate != 0 && cfg.OutRate != rate {
		if samples, err = dopplersim.Resample(samples, rate, cfg.OutRate, 0); err != nil {
			return err
		}
		rate = cfg.OutRate
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	enc := wav.Encoder{BitDepth: cfg.BitDepth, Software: "doppler " + version}
	if err := enc.Encode(out, samples, rate); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	fmt.Fprintf(stdout, "wrote %s: %d samples at %d Hz\n", outPath, len(samples), rate)
	return nil
}
