// Command server runs the table-ordering HTTP service, grounded on the
// original assignment's server binary (bind an address, register routes,
// serve forever).
package main

import (
	"flag"
	"log"

	"github.com/paidy/tableorders/cliaddr"
	"github.com/paidy/tableorders/httpapi"
	"github.com/paidy/tableorders/router"
	"github.com/paidy/tableorders/server"
	"github.com/paidy/tableorders/store"
)

func main() {
	storeKind := flag.String("store", "mem", "backing store: mem or redis")
	redisAddr := flag.String("redis-addr", "127.0.0.1:6379", "redis address, used when -store=redis")
	flag.Parse()

	address := cliaddr.DefaultAddress
	if flag.NArg() > 0 {
		address = flag.Arg(0)
	}
	if err := cliaddr.Validate(address); err != nil {
		log.Fatal(err)
	}

	r := router.New()
	httpapi.Register(r)

	db, err := newStore(*storeKind, *redisAddr)
	if err != nil {
		log.Fatal(err)
	}

	s := server.New("tcp", address, nil, r, db)
	if err := s.Run(); err != nil {
		log.Fatal(err)
	}
}

func newStore(kind, redisAddr string) (store.Store, error) {
	switch kind {
	case "mem":
		return store.NewMemStore(), nil
	case "redis":
		return store.NewRedisStore(redisAddr), nil
	default:
		return nil, errUnknownStoreKind(kind)
	}
}

type errUnknownStoreKind string

func (e errUnknownStoreKind) Error() string {
	return "unknown -store value " + string(e) + ", want mem or redis"
}
