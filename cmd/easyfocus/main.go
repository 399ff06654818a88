package main

import "runtime"

func init() {
	// GTK must run on the thread that started the process.
	runtime.LockOSThread()
}

func main() {
	Execute()
}
