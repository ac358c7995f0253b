// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/cpmech/hydro/godunov"
	"github.com/cpmech/hydro/grid"
	"github.com/cpmech/hydro/halo"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	// message
	if mpi.Rank() == 0 {
		io.PfWhite("\nhydro -- distributed structured-grid Godunov solver\n\n")
	}

	// command line: basename.pfg, basename.ibc and an optional basename.json
	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("Please, provide a basename. Ex.: duct")
	}
	basename := flag.Arg(0)

	cfg, err := grid.ReadConfig(basename + ".json")
	if err != nil {
		chk.Panic("%v", err)
	}

	opts := grid.LoadOptions{
		Rank:        mpi.Rank(),
		NProc:       mpi.Size(),
		ShadowDepth: cfg.ShadowDepth,
		Lx:          1, Ly: 1, Lz: 1,
	}
	g, gerr := grid.Load(basename+".pfg", basename+".ibc", opts)
	if gerr != nil {
		chk.Panic("%v", gerr)
	}

	log := grid.NewLogger(mpi.Rank(), cfg.LogLevel != "quiet")
	averager := godunov.AverageSolver{}

	for step := 0; step < cfg.NSteps; step++ {
		halo.Pack(g)
		if herr := halo.Exchange(g); herr != nil {
			log.Fatal(herr)
		}
		godunov.Step(g, cfg.Dt, averager)
		log.Msg("step %d/%d done\n", step+1, cfg.NSteps)
	}

	if mpi.Rank() == 0 {
		g.Report()
	}
}
