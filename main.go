// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"

	"github.com/cpmech/gomesher/geom"
	"github.com/cpmech/gomesher/guide"
	"github.com/cpmech/gomesher/mesher"
	"github.com/cpmech/gomesher/place"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// meshOutput is the on-disk shape of a converged mesh: nodal coordinates,
// triangle connectivity and the final per-node boundary class, enough for
// a downstream FE assembler to pick up without re-running the mesher.
type meshOutput struct {
	Verts  [][2]float64  `json:"verts"`
	Cells  [][3]int      `json:"cells"`
	Class  []int         `json:"class"`
	Report mesher.Report `json:"report"`
}

func main() {

	// catch errors the way the teacher's CLI does: verbose stack dump on
	// panic and a red error line; the recover stops the panic, so the
	// process still exits with status 0
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\ngomesher -- spring-relaxation triangular mesh generator\n\n")

	settingsPath := flag.String("settings", "", "path to a settings JSON file (mesher.Settings)")
	outPath := flag.String("out", "", "path to write the resulting mesh as JSON (defaults to stdout)")
	guidePath := flag.String("guide", "", "optional guide mesh JSON file (only used when refinement=guide_mesh)")
	flag.Parse()
	if *settingsPath == "" {
		chk.Panic("please provide -settings <file.json>\n")
	}

	buf, err := io.ReadFile(*settingsPath)
	if err != nil {
		chk.Panic("cannot read settings file: %v\n", err)
	}
	var s mesher.Settings
	if err := json.Unmarshal(buf, &s); err != nil {
		chk.Panic("cannot parse settings file: %v\n", err)
	}
	s.Init()
	if err := s.Validate(); err != nil {
		chk.Panic("invalid settings: %v\n", err)
	}

	dom := place.Rectangle{Xmin: s.Xmin, Xmax: s.Xmax, Ymin: s.Ymin, Ymax: s.Ymax}

	var gm *guide.Mesh
	if s.Refinement == mesher.RefinementGuideMesh {
		if *guidePath == "" {
			chk.Panic("refinement=guide_mesh requires -guide <file.json>\n")
		}
		gm, err = loadGuideMesh(*guidePath)
		if err != nil {
			chk.Panic("cannot load guide mesh: %v\n", err)
		}
	}

	d, err := mesher.NewDriver(s, dom, gm, place.InteriorOptions{})
	if err != nil {
		chk.Panic("cannot build driver: %v\n", err)
	}

	if err := d.Run(context.Background()); err != nil {
		io.Pfyel("mesher run stopped with an error: %v\n", err)
	}

	io.Pf("iterations=%d worst_q=%.4f mean_q=%.4f rollbacks=%d converged=%v\n",
		d.Report.Iterations, d.Report.WorstQ, d.Report.MeanQ, d.Report.RollbackCount, d.Report.Converged)

	out := toMeshOutput(d)
	enc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		chk.Panic("cannot marshal mesh: %v\n", err)
	}
	if *outPath == "" {
		io.Pf("%s\n", string(enc))
		return
	}
	io.WriteFileV(*outPath, bytes.NewBuffer(enc))
}

func toMeshOutput(d *mesher.Driver) meshOutput {
	m := d.Mesh
	out := meshOutput{
		Verts:  make([][2]float64, len(m.P)),
		Cells:  make([][3]int, len(m.T)),
		Class:  make([]int, len(m.P)),
		Report: d.Report,
	}
	for i, p := range m.P {
		out.Verts[i] = [2]float64{p.X, p.Y}
		out.Class[i] = int(p.Class)
	}
	for i, t := range m.T {
		out.Cells[i] = [3]int{t[0], t[1], t[2]}
	}
	return out
}

// loadGuideMesh reads a {verts:[[x,y,h0]...]} JSON file (one desired
// length h0 per vertex) and triangulates it via guide.NewFromPoints.
func loadGuideMesh(path string) (*guide.Mesh, error) {
	buf, err := io.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw struct {
		Verts [][3]float64 `json:"verts"`
	}
	if err := json.Unmarshal(buf, &raw); err != nil {
		return nil, err
	}
	v := make([]geom.Point, len(raw.Verts))
	l0 := make([]float64, len(raw.Verts))
	for i, p := range raw.Verts {
		v[i] = geom.Point{X: p[0], Y: p[1]}
		l0[i] = p[2]
	}
	return guide.NewFromPoints(v, l0)
}
