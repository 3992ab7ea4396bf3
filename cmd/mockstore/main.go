// Command mockstore runs the in-memory customers data service, for local
// development without a real postgres + PostgREST deployment.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/baalimago/dbai/internal/mockstore"
	"github.com/baalimago/dbai/internal/store"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
)

func main() {
	port := flag.Int("port", 3000, "port to serve the customers collection on")
	seed := flag.Bool("seed", false, "seed the store with sample customers")
	flag.Parse()

	s := mockstore.New()
	if *seed {
		s.Seed(
			store.Customer{Email: "johndoe@gmail.com", FullName: "John Doe", Bio: "I am a software engineer"},
			store.Customer{Email: "janedoe@gmail.com", FullName: "Jane Doe", Bio: "I am a data scientist"},
			store.Customer{Email: "jimdoe@gmail.com", FullName: "Jim Doe", Bio: "I am a product manager"},
		)
	}
	addr := fmt.Sprintf(":%v", *port)
	ancli.Okf("serving customers collection on '%v'\n", addr)
	if err := http.ListenAndServe(addr, s); err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to serve: %v\n", err))
		os.Exit(1)
	}
}
