// Command purge-sessions deletes expired rows from the sessions table used
// by SESSION_STORE=database. It is meant to run from cron.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/EmpoweredVote/Review-Backend/internal/config"
	"github.com/EmpoweredVote/Review-Backend/internal/db"
	"github.com/EmpoweredVote/Review-Backend/internal/session"
)

func main() {
	grace := flag.Duration("grace", 0, "keep sessions that expired less than this long ago")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	conn, err := db.Connect(db.Options{Driver: cfg.DBDriver, DSN: cfg.DSN, PoolSize: 1})
	if err != nil {
		log.Fatalf("DB connection error: %v", err)
	}
	defer db.Close(conn)

	store, err := session.NewDBStore(conn)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := store.PurgeExpired(ctx, time.Now().Add(-*grace))
	if err != nil {
		log.Fatalf("Error purging sessions: %v", err)
	}
	fmt.Printf("Deleted %d expired sessions\n", n)
}
