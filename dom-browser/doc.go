// Package dombrowser implements harrier.Browser on top of syscall/js for
// programs compiled with GOOS=js GOARCH=wasm.
//
//	router := harrier.NewRouter(dombrowser.New())
//	router.Get("/", showHome)
//	if err := router.Listen(); err != nil {
//	    panic(err)
//	}
//	select {}
package dombrowser
