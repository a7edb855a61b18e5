package haxxor

// Override interfaces let a type seal or open its own fields instead of going
// through reflection. When a type implements one of them, the Processor calls
// it with the module registry and skips the struct-tag plan for that action.

// Sealable bypasses reflection for Seal.
type Sealable interface {
	// Seal replaces the receiver's sensitive fields with encoded hashes.
	// The receiver is a clone, so mutations are safe.
	Seal(r *Registry) error
}

// Openable bypasses reflection for Open.
type Openable interface {
	// Open decrypts the receiver's reversible fields in place.
	// The receiver is a clone, so mutations are safe.
	Open(r *Registry) error
}
