package injector

import "reflect"

// callResult holds the raw outputs of calling a function target.
type callResult struct {
	out []reflect.Value

	// hasErr is true if the final output is the error result.
	hasErr bool

	// numVals is the number of value outputs before the error, 0 or 1.
	numVals int
}

// Err returns the error output of the call, if any.
func (r *callResult) Err() error {
	if !r.hasErr || len(r.out) == 0 {
		return nil
	}

	final := r.out[len(r.out)-1]
	if final.IsValid() && !final.IsNil() {
		return final.Interface().(error)
	}

	return nil
}

// Value returns the value output unchanged, or nil if the function
// returns no value.
func (r *callResult) Value() interface{} {
	if r.numVals == 0 {
		return nil
	}

	return r.out[0].Interface()
}
