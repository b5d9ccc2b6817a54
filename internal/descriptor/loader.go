// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import "context"

// Loader is the interface for a format-specific descriptor loader.
type Loader interface {
	// Load reads the descriptor fragments found at the given paths and
	// merges them into a single record.
	Load(ctx context.Context, paths ...string) (*Descriptor, error)
}
