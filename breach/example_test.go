package breach_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/hasbyte1/go-password-strength/breach"
)

// Example_rangeLookup derives the public prefix and checks a range body
// that the caller fetched separately.
func Example_rangeLookup() {
	m, err := breach.NewDefaultManager(breach.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	key, err := m.Derive("password")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(key.Prefix())

	body := "1E4C9B93F3F0682250B6CF8331B7EE68FD8:9545824\r\n"
	count, err := key.Lookup(strings.NewReader(body))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(count)
	// Output:
	// 5BAA6
	// 9545824
}

// ExampleNewDigestDeriver shows a non-default digest and prefix length.
func ExampleNewDigestDeriver() {
	d, err := breach.NewDigestDeriver(breach.DriverSHA3, breach.Options{PrefixLen: 6})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(d.Derive("password"))
	// Output: C0067D
}
