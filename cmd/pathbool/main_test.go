package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/test"
)

func TestReadPathData(t *testing.T) {
	data, err := readPathData("M0 0L1 0L1 1z")
	test.Error(t, err)
	test.String(t, data, "M0 0L1 0L1 1z")

	filename := filepath.Join(t.TempDir(), "a.path")
	test.Error(t, os.WriteFile(filename, []byte("M0 0L2 0L2 2z"), 0644))
	data, err = readPathData("@" + filename)
	test.Error(t, err)
	test.String(t, data, "M0 0L2 0L2 2z")

	_, err = readPathData("@" + filepath.Join(t.TempDir(), "missing"))
	test.That(t, err != nil)
}

func TestParseShape(t *testing.T) {
	s, err := parseShape("M0 0L6 0L6 6L0 6zM2 2L4 2L4 4L2 4z")
	test.Error(t, err)
	test.T(t, len(s), 2)
	test.Float(t, s.Area(), 32.0)

	_, err = parseShape("L1 1")
	test.That(t, err != nil)
}

func TestNewEngine(t *testing.T) {
	engine, err := newEngine("", false)
	test.Error(t, err)
	test.That(t, engine.Logger == nil)

	filename := filepath.Join(t.TempDir(), "tol.toml")
	test.Error(t, os.WriteFile(filename, []byte("max_depth = 8\n"), 0644))
	engine, err = newEngine(filename, true)
	test.Error(t, err)
	test.T(t, engine.Tolerance.MaxDepth, 8)
	test.That(t, engine.Logger != nil)

	test.Error(t, os.WriteFile(filename, []byte("depth = 8\n"), 0644))
	_, err = newEngine(filename, false)
	test.That(t, err != nil)
}
