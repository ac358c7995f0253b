// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func writeFixture(tst *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tst.Fatalf("cannot write fixture %s: %v", name, err)
	}
	return path
}

func Test_read_pfg01(tst *testing.T) {

	chk.PrintTitle("read_pfg01")

	dir := tst.TempDir()
	path := writeFixture(tst, dir, "two.pfg", "2\n3 3 3\n5 5 5\n")

	specs, err := readPfg(path)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(specs), 2)
	chk.IntAssert(specs[0].Ni, 2)
	chk.IntAssert(specs[1].Ni, 4)
}

func Test_read_pfg_malformed01(tst *testing.T) {

	chk.PrintTitle("read_pfg_malformed01")

	dir := tst.TempDir()
	path := writeFixture(tst, dir, "bad.pfg", "1\n1 1 1\n")

	_, err := readPfg(path)
	if err == nil {
		tst.Fatalf("expected an error for a block with fewer than one cell along an axis")
	}
	chk.IntAssert(int(err.Kind), int(InputMalformed))
}

func Test_read_pfg_missing01(tst *testing.T) {

	chk.PrintTitle("read_pfg_missing01")

	_, err := readPfg("/does/not/exist.pfg")
	if err == nil {
		tst.Fatalf("expected an error for a missing file")
	}
	chk.IntAssert(int(err.Kind), int(InputMissing))
}

// Test_ibc_pair_consecutive01 exercises E4: ids [7,3,7,3] in file order
// must come out with both halves of an id at consecutive positions.
func Test_ibc_pair_consecutive01(tst *testing.T) {

	chk.PrintTitle("ibc_pair_consecutive01")

	dir := tst.TempDir()
	path := writeFixture(tst, dir, "e4.ibc",
		"0 0\n"+
			"4\n"+
			"7 1 2 2 0 2 0 2 2\n"+
			"3 2 0 0 0 2 0 2 2\n"+
			"7 2 0 0 0 2 0 2 2\n"+
			"3 1 2 2 0 2 0 2 2\n")

	recs, err := readIbc(path)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(recs), 4)

	ordered, perr := pairConsecutive(recs)
	if perr != nil {
		tst.Fatalf("unexpected error: %v", perr)
	}
	chk.IntAssert(ordered[0].Id, 7)
	chk.IntAssert(ordered[1].Id, 7)
	chk.IntAssert(ordered[2].Id, 3)
	chk.IntAssert(ordered[3].Id, 3)
}

func Test_ibc_pair_consecutive_odd_count01(tst *testing.T) {

	chk.PrintTitle("ibc_pair_consecutive_odd_count01")

	recs := []ifaceRecord{
		{Id: 1, Bid: 1, Nid: 2},
		{Id: 1, Bid: 2, Nid: 1},
		{Id: 1, Bid: 1, Nid: 2},
	}
	_, err := pairConsecutive(recs)
	if err == nil {
		tst.Fatalf("expected an error: id 1 appears three times")
	}
	chk.IntAssert(int(err.Kind), int(InputMalformed))
}
