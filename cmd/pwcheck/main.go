// Command pwcheck evaluates password strength locally.  Nothing is stored
// or sent over the network.
//
// Usage:
//
//	pwcheck analyze [--stdin] [-o text|json|yaml]
//	pwcheck interactive
//	pwcheck breach-key [--breach-driver sha1] [--prefix-length 5]
//	pwcheck breach-match --range-file body.txt
//	pwcheck config
//	pwcheck version
package main

import "os"

var version = "dev" // set by the linker

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}
