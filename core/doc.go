// Copyright 2025 DoniLite. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
# Akasio Core

The core package implements the akasio redirect service.
For each request the JSON redirect table is read from disk, the request path
is looked up as an exact key and the caller is answered with:

  - 302 Found and a Location header when the key maps to a string
  - 404 Not Found when the key is absent
  - 500 Internal Server Error when the table cannot be read or parsed,
    or when the entry is not a string

It also provides the config file parsing, the logger construction and the
optional parse cache used by the akasio command.
*/
package core
