/*
Package moduleid derives the stable string identity of a module from its
resolved location.

An id is the module's uri made relative to the project root, slash
separated and prefixed with `./`, e.g. `./src/index.js`. A uri outside the
root keeps its `../` segments. A resource query, if any, is carried over
unchanged: `./logo.svg?inline`.

Ids are assigned once per uri and never change; the Allocator guarantees
that two distinct uris never share an id.
*/
package moduleid
