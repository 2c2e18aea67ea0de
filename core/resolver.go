// Copyright 2025 DoniLite. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

// Resolve looks requestPath up as an exact key of table. Only a JSON string
// value is a usable destination.
func Resolve(table any, requestPath string) Outcome {
	entries, ok := table.(map[string]any)
	if !ok {
		// a non-object document has no keys
		return Outcome{Kind: NotFound}
	}

	value, ok := entries[requestPath]
	if !ok {
		return Outcome{Kind: NotFound}
	}

	destination, ok := value.(string)
	if !ok {
		return Outcome{Kind: MalformedEntry}
	}

	return Outcome{Kind: Found, Destination: destination}
}

func (k OutcomeKind) String() string {
	switch k {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case MalformedEntry:
		return "malformed_entry"
	default:
		return "unknown"
	}
}
