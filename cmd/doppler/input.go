// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/studentenherz/Doppler-Effect-Simulator/audio"
	"github.com/studentenherz/Doppler-Effect-Simulator/formats/aiff"
	"github.com/studentenherz/Doppler-Effect-Simulator/formats/mp3"
	"github.com/studentenherz/Doppler-Effect-Simulator/formats/vorbis"
	"github.com/studentenherz/Doppler-Effect-Simulator/formats/wav"
	"github.com/studentenherz/Doppler-Effect-Simulator/internal/config"
	"github.com/studentenherz/Doppler-Effect-Simulator/internal/log"
)

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// loadConfig layers defaults, environment and flags, then initialises
// logging. It returns the positional arguments.
func loadConfig(name string, args []string, stderr io.Writer, lookup env) (config.Config, []string, error) {
	cfg := config.Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		return cfg, nil, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	log.Init(cfg.LogLevel)
	return cfg, fs.Args(), nil
}

// openSource decodes path with the decoder registered for its extension.
// Closing the returned source closes the file.
func openSource(path string) (audio.Source, *os.File, error) {
	dec, err := newRegistry().ForPath(path)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return src, f, nil
}
