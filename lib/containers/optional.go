// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"git.lukeshu.com/go/lowmemjson"
)

// Optional[T] is a T that may be absent.  The zero Optional is
// absent.
//
// It is the element type of choice for Lists that need to hold
// "null" elements; it encodes to and decodes from JSON `null` when
// absent.
type Optional[T any] struct {
	OK  bool
	Val T
}

func Some[T any](val T) Optional[T] {
	return Optional[T]{OK: true, Val: val}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

var (
	_ fmt.Stringer         = Optional[bool]{}
	_ lowmemjson.Encodable = Optional[bool]{}
	_ lowmemjson.Decodable = (*Optional[bool])(nil)
	_ json.Marshaler       = Optional[bool]{}
	_ json.Unmarshaler     = (*Optional[bool])(nil)
)

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	if !o.OK {
		return "<absent>"
	}
	return fmt.Sprint(o.Val)
}

// EncodeJSON implements lowmemjson.Encodable.
func (o Optional[T]) EncodeJSON(w io.Writer) error {
	if !o.OK {
		_, err := io.WriteString(w, "null")
		return err
	}
	return lowmemjson.Encode(w, o.Val)
}

// DecodeJSON implements lowmemjson.Decodable.
func (o *Optional[T]) DecodeJSON(r io.RuneScanner) error {
	c, _, err := r.ReadRune()
	if err != nil {
		return err
	}
	if c == 'n' {
		for _, want := range "ull" {
			got, _, err := r.ReadRune()
			if err != nil {
				return err
			}
			if got != want {
				return fmt.Errorf("invalid character %q in literal null (expecting %q)", got, want)
			}
		}
		*o = Optional[T]{}
		return nil
	}
	if err := r.UnreadRune(); err != nil {
		return err
	}
	var val T
	if err := lowmemjson.NewDecoder(r).Decode(&val); err != nil {
		return err
	}
	*o = Some(val)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.OK {
		return []byte("null"), nil
	}
	return json.Marshal(o.Val)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(dat []byte) error {
	if string(bytes.TrimSpace(dat)) == "null" {
		*o = Optional[T]{}
		return nil
	}
	var val T
	if err := json.Unmarshal(dat, &val); err != nil {
		return err
	}
	*o = Some(val)
	return nil
}
