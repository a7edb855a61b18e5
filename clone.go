package haxxor

// Cloner allows types to provide deep copy logic.
// Implementing this interface is required for use with Processor, which seals
// and opens a clone so the caller's value is never modified.
//
// For simple value types with no pointers, slices, or maps, Clone can simply return
// the receiver value:
//
//	func (a Account) Clone() Account { return a }
//
// For types with reference fields, copy them so sealing the clone cannot
// reach the original:
//
//	func (a Account) Clone() Account {
//	    keys := make([]string, len(a.RecoveryKeys))
//	    copy(keys, a.RecoveryKeys)
//	    return Account{ID: a.ID, RecoveryKeys: keys}
//	}
type Cloner[T any] interface {
	Clone() T
}
