// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"time"
)

// TimeSeed returns a seed based on the current time, for runs
// where the user did not ask for a specific seed. The value
// should be logged so that the run can be reproduced.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}
