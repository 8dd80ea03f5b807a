package promise

import "runtime/debug"

// catch runs f and captures any panic as a [PanicError], along with a stack
// trace taken at the point of the panic.
// It returns nil if f returns normally.
func catch(f func()) (pe *PanicError) {
	ok := false
	defer func() {
		if ok {
			return
		}
		v := recover()
		if v == nil {
			panic("promise: handlers must not call runtime.Goexit")
		}
		pe = &PanicError{Value: v, Stack: debug.Stack()}
	}()
	f()
	ok = true
	return nil
}
