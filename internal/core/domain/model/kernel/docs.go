// Package kernel contains the shared building blocks of the domain model.
//
// Currently this is the UUID value object used as the identity of the Order
// aggregate. It wraps github.com/google/uuid so the rest of the domain never
// depends on the library directly, and so a zero-value identifier can be
// detected and rejected during validation.
package kernel
