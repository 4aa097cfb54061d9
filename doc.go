// Package argbind converts the dynamically typed values of a native
// handler call (the this value plus positional arguments) into typed Go
// destinations, stopping at the first value that fails validation. The
// host engine stays behind a narrow boundary: it supplies Values and
// surfaces the returned error at the script call site.
package argbind
