// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dlog"
)

func readJSON[T any](ctx context.Context, r io.Reader) (T, error) {
	var ret T
	if err := lowmemjson.NewDecoder(bufio.NewReader(r)).DecodeThenEOF(&ret); err != nil {
		var zero T
		return zero, err
	}
	dlog.Debug(ctx, "... done reading")
	return ret, nil
}

func readJSONFile[T any](ctx context.Context, filename string) (T, error) {
	fh, err := os.Open(filename)
	if err != nil {
		var zero T
		return zero, err
	}
	defer func() {
		_ = fh.Close()
	}()
	ctx = dlog.WithField(ctx, "glist.read-json-file", filename)
	dlog.Debug(ctx, "reading...")
	return readJSON[T](ctx, fh)
}

// writeJSON writes obj to w as tab-indented JSON.  Nothing is
// written to w unless all of obj encodes successfully.
func writeJSON(w io.Writer, obj any) error {
	var buffer bytes.Buffer
	if err := lowmemjson.NewEncoder(lowmemjson.NewReEncoder(&buffer, lowmemjson.ReEncoderConfig{
		Indent:                "\t",
		ForceTrailingNewlines: true,
	})).Encode(obj); err != nil {
		return err
	}
	_, err := buffer.WriteTo(w)
	return err
}
