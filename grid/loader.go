// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"bufio"
	"os"
	"strconv"
)

// tokenScanner is the trivial whitespace tokenizer for the .pfg/.ibc text
// streams (spec §6.1). Reading these files is a narrow, external
// collaborator concern; this is the minimal implementation the loader
// needs, not a general parser.
type tokenScanner struct {
	sc *bufio.Scanner
}

func newTokenScanner(f *os.File) *tokenScanner {
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	return &tokenScanner{sc: sc}
}

func (t *tokenScanner) nextInt() (int, bool) {
	if !t.sc.Scan() {
		return 0, false
	}
	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, false
	}
	return v, true
}

// blockSpec is one block record from a .pfg file, stored as cell counts
// per axis (the file lists node counts)
type blockSpec struct {
	Ni, Nj, Nk int // cell counts (node counts minus one)
}

// ifaceRecord is one raw interface record from a .ibc file, blocks still
// one-based as on disk
type ifaceRecord struct {
	Id                     int
	Bid                    int // one-based source block
	I0, I1, J0, J1, K0, K1 int
	Nid                    int // one-based neighbor block
}

// readPfg parses a .pfg block-dimensions file
func readPfg(path string) ([]blockSpec, *Error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Errf(InputMissing, "cannot open block file %q: %v", path, err)
	}
	defer f.Close()
	ts := newTokenScanner(f)

	count, ok := ts.nextInt()
	if !ok {
		return nil, Errf(InputMalformed, "%q: cannot read block count", path)
	}
	specs := make([]blockSpec, count)
	for b := 0; b < count; b++ {
		ni1, ok1 := ts.nextInt()
		nj1, ok2 := ts.nextInt()
		nk1, ok3 := ts.nextInt()
		if !ok1 || !ok2 || !ok3 {
			return nil, Errf(InputMalformed, "%q: cannot read node counts for block %d", path, b)
		}
		if ni1 < 2 || nj1 < 2 || nk1 < 2 {
			return nil, Errf(InputMalformed, "%q: block %d has fewer than 1 cell along some axis", path, b)
		}
		specs[b] = blockSpec{Ni: ni1 - 1, Nj: nj1 - 1, Nk: nk1 - 1}
	}
	return specs, nil
}

// readIbc parses a .ibc interface file, skipping a two-token integer
// header and returning raw records in file order
func readIbc(path string) ([]ifaceRecord, *Error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Errf(InputMissing, "cannot open interface file %q: %v", path, err)
	}
	defer f.Close()
	ts := newTokenScanner(f)

	// the header is read as two integer tokens, whether they sit on one
	// line or two; lines are not skipped as such, so a header holding
	// anything other than exactly two integers is rejected as malformed
	if _, ok := ts.nextInt(); !ok {
		return nil, Errf(InputMalformed, "%q: cannot read header line 1", path)
	}
	if _, ok := ts.nextInt(); !ok {
		return nil, Errf(InputMalformed, "%q: cannot read header line 2", path)
	}

	count, ok := ts.nextInt()
	if !ok {
		return nil, Errf(InputMalformed, "%q: cannot read interface count", path)
	}
	recs := make([]ifaceRecord, count)
	for i := 0; i < count; i++ {
		vals := make([]int, 9)
		for j := range vals {
			v, ok := ts.nextInt()
			if !ok {
				return nil, Errf(InputMalformed, "%q: cannot read interface record %d", path, i)
			}
			vals[j] = v
		}
		recs[i] = ifaceRecord{
			Id: vals[0], Bid: vals[1],
			I0: vals[2], I1: vals[3],
			J0: vals[4], J1: vals[5],
			K0: vals[6], K1: vals[7],
			Nid: vals[8],
		}
	}
	return recs, nil
}

// pairConsecutive reorders raw interface records so that the two halves
// of every id occupy consecutive positions: the first occurrence of an id
// takes the next even slot (reserving the following odd slot for its
// mate); the second occurrence is placed directly after its mate (spec
// §4.1 "Interface pairing", E4).
func pairConsecutive(recs []ifaceRecord) ([]ifaceRecord, *Error) {
	counts := make(map[int]int)
	for _, r := range recs {
		counts[r.Id]++
	}
	for id, n := range counts {
		if n != 2 {
			return nil, Errf(InputMalformed, "interface id %d appears %d times; every id must appear exactly twice", id, n)
		}
	}

	out := make([]ifaceRecord, len(recs))
	firstSeen := make(map[int]int) // id -> position of first half
	next := 0
	for _, r := range recs {
		if pos, seen := firstSeen[r.Id]; seen {
			out[pos+1] = r
			delete(firstSeen, r.Id)
		} else {
			out[next] = r
			firstSeen[r.Id] = next
			next += 2
		}
	}
	if len(firstSeen) > 0 {
		for id := range firstSeen {
			return nil, Errf(InputMalformed, "interface id %d appears only once; every id must appear exactly twice", id)
		}
	}
	return out, nil
}
