// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// KeyDigest folds identity parts into a fixed-length hex key.
//
// Parts are joined with a NUL separator so ("ab","c") and ("a","bc") differ.
// Used for state-store keys whose raw components (session, widget path) are
// client-influenced and unbounded in length.
func KeyDigest(parts ...string) string {
	sum := blake2b.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:16])
}
