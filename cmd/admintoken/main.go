// Command admintoken mints an HS256 bearer token for the /admin routes.
// The secret must match the server's -s flag (or its JSON config value).
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/avasiljevs/userauth/internal/server/auth"
)

func main() {
	secret := flag.String("s", "", "signing secret (must match the server secret)")
	validity := flag.Duration("t", 24*time.Hour, "token validity")
	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "error: signing secret is required (-s)")
		os.Exit(1)
	}

	token, err := auth.GenerateAdminToken([]byte(*secret), *validity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
