// Package breach derives k-anonymous lookup keys for breached-password
// range queries.
//
// # Architecture
//
// The central abstraction is the [Deriver] interface.  A Deriver hashes a
// password and splits the uppercase hex digest into a short public prefix
// and a private suffix, returned together as a [Key].  Four digest drivers
// ship with this package:
//
//   - [DriverSHA1]: SHA-1, the digest used by the public Pwned Passwords
//     range API (default)
//   - [DriverSHA256]: SHA-256
//   - [DriverBlake2b]: BLAKE2b-256
//   - [DriverSHA3]: SHA3-256
//
// The [Manager] is a named driver registry and dispatcher in the same shape
// as a hashing manager: register [Deriver] implementations, designate a
// default, and derive keys through the Manager.
//
// # Quick start
//
//	m, err := breach.NewDefaultManager(breach.DefaultOptions())
//	if err != nil { log.Fatal(err) }
//
//	key, _ := m.Derive("hunter2")
//	fmt.Println(key.Prefix()) // send only this to the range endpoint
//
//	// body is the range response, fetched by the caller.
//	count, err := key.Lookup(body)
//
// # What leaves the process
//
// Only [Key.Prefix] is meant to be transmitted.  The suffix stays inside the
// Key: it is not exported, and both String and GoString print the prefix
// only, so a Key can be logged safely.  This package performs no network
// I/O; fetching the range body is the caller's job.
package breach
