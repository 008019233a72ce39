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

// Package utils holds small data helpers shared by the simulations and the CLI.
package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/service-b/pkg/errors"
)

const (
	// DefaultDateInputLayout parses dates like 2023-09-23.
	DefaultDateInputLayout = "2006-01-02"

	// DefaultDateOutputLayout renders dates like 23-09-2023.
	DefaultDateOutputLayout = "02-01-2006"

	// DefaultIDLength is the length of identifiers from GenerateRandomID.
	DefaultIDLength = 8

	// DefaultBatchSize is used by BatchProcess when size is not positive.
	DefaultBatchSize = 100

	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	lowerKeys    = cases.Lower(language.Und)
)

// TransformData returns a copy of data with lower-cased keys and trimmed
// string values. Non-string values are kept as is.
func TransformData(data map[string]any) (map[string]any, error) {
	if data == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "input data must be a map")
	}

	out := make(map[string]any, len(data))
	for k, v := range data {
		if s, ok := v.(string); ok {
			v = strings.TrimSpace(s)
		}
		out[lowerKeys.String(k)] = v
	}

	slog.Debug("transformed data", "keys", len(out))
	return out, nil
}

// ValidateAndProcessData returns a copy of data without nil values.
func ValidateAndProcessData(data map[string]any) (map[string]any, error) {
	if data == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "input data must be a map")
	}

	out := make(map[string]any, len(data))
	for k, v := range data {
		if v != nil {
			out[k] = v
		}
	}
	return out, nil
}

// FormatDate re-renders date from the in layout to the out layout. Empty
// layouts fall back to the defaults.
func FormatDate(date, in, out string) (string, error) {
	return AddDaysToDate(date, 0, in, out)
}

// AddDaysToDate parses date with the in layout, adds days and renders the
// result with the out layout. Empty layouts fall back to the defaults.
func AddDaysToDate(date string, days int, in, out string) (string, error) {
	if in == "" {
		in = DefaultDateInputLayout
	}
	if out == "" {
		out = DefaultDateOutputLayout
	}

	t, err := time.Parse(in, date)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"invalid date", err, map[string]any{"date": date, "layout": in})
	}

	formatted := t.AddDate(0, 0, days).Format(out)
	slog.Debug("formatted date", "from", date, "to", formatted, "days", days)
	return formatted, nil
}

// GenerateRandomID returns an identifier of upper-case letters and digits.
// A non-positive length uses DefaultIDLength.
func GenerateRandomID(length int) (string, error) {
	if length <= 0 {
		length = DefaultIDLength
	}

	limit := big.NewInt(int64(len(idAlphabet)))
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, "crypto/rand failed", err)
		}
		b.WriteByte(idAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// BatchProcess calls fn on consecutive slices of at most size items.
// It stops at the first error or when ctx is done.
func BatchProcess[T any](ctx context.Context, items []T, size int, fn func(context.Context, []T) error) error {
	if size <= 0 {
		size = DefaultBatchSize
	}

	for start := 0; start < len(items); start += size {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(errors.ErrCodeInterrupted, "batch processing interrupted", err)
		}

		end := min(start+size, len(items))
		slog.Debug("processing batch", "start", start, "size", end-start)
		if err := fn(ctx, items[start:end]); err != nil {
			return fmt.Errorf("batch starting at %d: %w", start, err)
		}
	}
	return nil
}
