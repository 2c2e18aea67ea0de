// Copyright 2025 DoniLite. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

// Version is overridden at build time with
// -ldflags "-X github.com/DoniLite/akasio/core.Version=...".
var Version = "0.2.0"
