package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This turns arbitrary comparable values into random readable names. Names are
// memoized forever and generated lazily, so the memory only grows when debug
// output is actually on. It is much easier to follow "BraveOtter" through a log
// than a coordinate tuple.

var (
	memoMu sync.Mutex
	memo   map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in order of demand, so they are nondeterministic as a
	// reminder that the same name doesn't mean the same value between runs.
	petname.NonDeterministicMode()
}

// Name returns the memoized name for obj, which must be comparable. Nil
// pointers, maps, slices and interfaces are all named "Ø".
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[obj] = r
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
