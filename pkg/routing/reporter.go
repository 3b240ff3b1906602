// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Routegen - Routegen derives concrete URL paths from file-path templates containing bracketed field segments, plus the data-query shapes needed to materialize them.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package routing

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/bartekus/routegen/pkg/record"
)

// Reporter is the side channel for resolution diagnostics. It receives one
// call per unresolved segment with a human-readable message and the
// offending record.
type Reporter interface {
	ReportUnresolved(msg string, rec record.Value)
}

// WriterReporter writes each diagnostic to Out, with the record serialized
// for debugging.
type WriterReporter struct {
	Out io.Writer
}

func (w WriterReporter) ReportUnresolved(msg string, rec record.Value) {
	fmt.Fprintf(w.Out, "%s\nrecord: %s", msg, spew.Sdump(rec.Interface()))
}
