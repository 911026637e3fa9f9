//go:build js && wasm

// Command cryptwasm exposes the codec to JavaScript. Build with
// GOOS=js GOARCH=wasm and load it with wasm_exec.js; the functions are
// registered as globals named crypt_*.
package main

import (
	"fmt"
	"syscall/js"

	"github.com/ai8future/crypt/host"
)

// stringFunc adapts a string-returning function taking n string arguments.
func stringFunc(n int, fn func(args []string) string) js.Func {
	return js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) != n {
			return fmt.Sprintf("error:args: expected %d arguments, got %d", n, len(args))
		}
		values := make([]string, n)
		for i, arg := range args {
			values[i] = arg.String()
		}
		return fn(values)
	})
}

func main() {
	global := js.Global()

	global.Set("crypt_get_name", js.FuncOf(func(js.Value, []js.Value) any {
		return host.GetName()
	}))
	global.Set("crypt_get_num_algorithms", js.FuncOf(func(js.Value, []js.Value) any {
		return host.GetNumAlgorithms()
	}))
	global.Set("crypt_get_algorithm", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) != 1 || args[0].Type() != js.TypeNumber {
			return "error:args: expected a numeric index"
		}
		return host.GetAlgorithm(args[0].Int())
	}))
	global.Set("crypt_header_prefix", stringFunc(1, func(a []string) string {
		return host.HeaderPrefix(a[0])
	}))
	global.Set("crypt_header_suffix", stringFunc(1, func(a []string) string {
		return host.HeaderSuffix(a[0])
	}))
	global.Set("crypt_encrypt", stringFunc(3, func(a []string) string {
		return host.Encrypt(a[0], a[1], a[2])
	}))
	global.Set("crypt_decrypt", stringFunc(3, func(a []string) string {
		return host.Decrypt(a[0], a[1], a[2])
	}))

	select {}
}
