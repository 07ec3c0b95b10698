// Command hashpassword prints a bcrypt hash for the passwords section of
// the server config.
package main

import (
	"fmt"
	"os"

	"github.com/udisondev/minefield/internal/gameserver/admin"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpassword <password>")
		os.Exit(2)
	}

	hash, err := admin.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashing password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
