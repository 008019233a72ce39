// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serviceb

import (
	"fmt"
	"time"
)

// FormatLocalDateTime renders t as an ISO-8601 local date-time without a
// zone. The fraction is omitted when zero and otherwise printed with 3, 6
// or 9 digits, whichever is the shortest exact form; seconds are omitted
// when both seconds and fraction are zero.
func FormatLocalDateTime(t time.Time) string {
	base := t.Format("2006-01-02T15:04")

	nanos := t.Nanosecond()
	if t.Second() == 0 && nanos == 0 {
		return base
	}

	base += fmt.Sprintf(":%02d", t.Second())
	switch {
	case nanos == 0:
		return base
	case nanos%1_000_000 == 0:
		return base + fmt.Sprintf(".%03d", nanos/1_000_000)
	case nanos%1_000 == 0:
		return base + fmt.Sprintf(".%06d", nanos/1_000)
	default:
		return base + fmt.Sprintf(".%09d", nanos)
	}
}
