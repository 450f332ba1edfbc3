// Package domain defines the core measurement types shared by every other
// package: dimensions, unit systems, unit families, the Unit interface, and
// the quantity error taxonomy.
//
// This package contains pure domain logic with ZERO external dependencies
// outside the Go standard library. The dependency direction is always:
//
//	number, units, registry, convert, ... → domain (CORRECT)
//	domain → anything else (FORBIDDEN)
//
// Dimensions and families are singletons: two units are compatible only when
// they report the identical *Dimension pointer, and they belong to the same
// family only when they report the identical *Family pointer.
package domain
