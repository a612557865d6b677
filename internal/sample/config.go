// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package sample computes and prints a fixed set of
// quaternion operations on configurable inputs.
package sample

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sp4ghet/quaternion/linear"
)

// Config describes the inputs of a sample run.
// Quaternions are given as [w, x, y, z] and vectors
// as [x, y, z].
type Config struct {
	Q0     [4]float32 `yaml:"q0"`
	Q1     [4]float32 `yaml:"q1"`
	Vector [3]float32 `yaml:"vector"`
	Axis   [3]float32 `yaml:"axis"`
	Angle  float32    `yaml:"angle"`
	T      float32    `yaml:"t"`
}

// DefaultConfig returns the built-in sample inputs.
func DefaultConfig() Config {
	return Config{
		Q0:     [4]float32{0.9659258, 0.1929123, 0.07716493, 0.1543299},
		Q1:     [4]float32{0.5, 0.3633762, 0.4360515, 0.6540772},
		Vector: [3]float32{1, 1, 1},
		Axis:   [3]float32{10, 4, 8},
		Angle:  30,
		T:      0.34,
	}
}

// LoadYAML decodes a config from r.
// Fields missing from r keep their DefaultConfig value,
// and an empty document yields DefaultConfig.
func LoadYAML(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("sample: decode config: %w", err)
	}
	return c, nil
}

// LoadFile is like LoadYAML but reads the named file.
func LoadFile(name string) (Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return Config{}, fmt.Errorf("sample: open config: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}

func (c *Config) q0() linear.Q { return linear.MakeQ(c.Q0[0], c.Q0[1], c.Q0[2], c.Q0[3]) }

func (c *Config) q1() linear.Q { return linear.MakeQ(c.Q1[0], c.Q1[1], c.Q1[2], c.Q1[3]) }
