// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package strategies implements a handful of stateless
// containers.Chooser and containers.Transformer implementations.
//
// Everything that accepts a containers.Optional is safe to use on
// absent elements: choosers reject them, and transformers pass them
// through unchanged.
package strategies
