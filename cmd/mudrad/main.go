package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/server/api"
	"github.com/ayusman/mudra/internal/store"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "", "profile database path (default ~/.mudra/mudra.db)")
	flag.Parse()

	fmt.Println("Mudra - Gesture Stem Control Engine")

	path := *dbPath
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to get home directory: %v", err)
		}

		dbDir := filepath.Join(homeDir, ".mudra")
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
		path = filepath.Join(dbDir, "mudra.db")
	}

	st, err := store.New(path)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	engine := control.NewEngine(control.DefaultOptions())
	defer engine.Close()

	if err := loadProfiles(st, engine); err != nil {
		log.Printf("Failed to load saved profiles: %v", err)
	}

	cfg := server.Config{
		Store:  st,
		Engine: engine,
	}

	srv := server.New(cfg)

	fmt.Printf("Starting server on %s\n", *addr)
	if err := srv.ListenAndServe(*addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// loadProfiles registers every persisted profile with the engine and
// restores the active one. The built-in default stays active when nothing
// is marked active in the store.
func loadProfiles(st *store.Store, engine *control.Engine) error {
	profiles, err := st.Profiles().List()
	if err != nil {
		return err
	}

	for _, p := range profiles {
		mappings, err := st.Profiles().Mappings(p.ID)
		if err != nil {
			log.Printf("Failed to load mappings for %s: %v", p.Name, err)
			continue
		}
		engine.AddProfile(api.ProfileFromStore(p, mappings))
		if p.IsActive {
			engine.SetActiveProfile(p.ID)
		}
	}

	log.Printf("Loaded %d profiles from database", len(profiles))
	return nil
}
