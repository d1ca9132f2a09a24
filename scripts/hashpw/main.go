package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// hashpw prints the bcrypt hash of its argument for use as
// admin_password_hash in the config file.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(hash))
}
