/*
File    : mython/runtime/truthy.go
*/
package runtime

// IsTrue implements Mython's truthiness rule (§4.3): None is false;
// Number is true iff nonzero; String is true iff non-empty; Bool is its
// own value; anything else (Class, ClassInstance) is false.
func IsTrue(holder ObjectHolder) bool {
	if holder.IsNone() {
		return false
	}
	switch v := holder.Get().(type) {
	case *Number:
		return v.Value != 0
	case *String:
		return v.Value != ""
	case *Bool:
		return v.Value
	default:
		return false
	}
}
