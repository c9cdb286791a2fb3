package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFill(t *testing.T, dir, name string, w, h int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

type files struct {
	target, source, mask, output string
}

func setup(t *testing.T) files {
	dir := t.TempDir()
	return files{
		target: writeFill(t, dir, "target.png", 10, 10, color.RGBA{128, 128, 128, 255}),
		source: writeFill(t, dir, "source.png", 4, 4, color.White),
		mask:   writeFill(t, dir, "mask.png", 4, 4, color.White),
		output: filepath.Join(dir, "out.png"),
	}
}

func TestRun(t *testing.T) {
	f := setup(t)
	var stderr bytes.Buffer
	code := run(context.Background(), []string{
		"-target", f.target, "-source", f.source, "-mask", f.mask,
		"-output", f.output, "-mx", "3", "-my", "3",
	}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	r, err := os.Open(f.output)
	require.NoError(t, err)
	defer r.Close()
	out, err := png.Decode(r)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 10), out.Bounds())

	rgba := func(x, y int) [4]uint32 {
		r, g, b, a := out.At(x, y).RGBA()
		return [4]uint32{r >> 8, g >> 8, b >> 8, a >> 8}
	}
	assert.Equal(t, [4]uint32{128, 128, 128, 255}, rgba(0, 0))
	assert.Equal(t, [4]uint32{128, 128, 128, 255}, rgba(7, 7))
	assert.Equal(t, [4]uint32{255, 255, 255, 255}, rgba(3, 3))
	assert.Equal(t, [4]uint32{255, 255, 255, 255}, rgba(6, 6))
}

func TestRunFailures(t *testing.T) {
	f := setup(t)
	test := []struct {
		name    string
		args    []string
		message string
	}{
		{"missing_mask", []string{"-target", f.target, "-source", f.source, "-output", f.output, "-mx", "3", "-my", "3"}, "-mask"},
		{"missing_my", []string{"-target", f.target, "-source", f.source, "-mask", f.mask, "-output", f.output, "-mx", "3"}, "-my"},
		{"invalid_mx", []string{"-target", f.target, "-source", f.source, "-mask", f.mask, "-output", f.output, "-mx", "-3", "-my", "3"}, "USAGE"},
		{"unknown_flag", []string{"-target", f.target, "-bogus"}, "USAGE"},
		{"border", []string{"-target", f.target, "-source", f.source, "-mask", f.mask, "-output", f.output, "-mx", "0", "-my", "3"}, "does not fit"},
		{"decode", []string{"-target", f.target + ".missing", "-source", f.source, "-mask", f.mask, "-output", f.output, "-mx", "3", "-my", "3"}, "could not open input image"},
		{"bad_gamma", []string{"-target", f.target, "-source", f.source, "-mask", f.mask, "-output", f.output, "-mx", "3", "-my", "3", "-gamma", "0"}, "gamma"},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			code := run(context.Background(), tt.args, &stderr)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), tt.message)
			_, err := os.Stat(f.output)
			assert.True(t, os.IsNotExist(err), "no output on failure")
		})
	}
}
