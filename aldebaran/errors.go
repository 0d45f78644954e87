// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aldebaran

import "errors"

// ErrInvalidHeader is returned when the "des (...)" header line is
// missing or malformed.
var ErrInvalidHeader = errors.New("aldebaran: invalid header line")

// ErrInvalidTransition is returned when a transition line cannot be
// parsed in either the quoted or the VLTS unquoted form.
var ErrInvalidTransition = errors.New("aldebaran: invalid transition line")
