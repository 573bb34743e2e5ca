package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jmarinco/go-inventario/app/cmd"
	"github.com/jmarinco/go-inventario/app/configs"
	"github.com/jmarinco/go-inventario/app/models"
	"github.com/jmarinco/go-inventario/app/repositories"
	"github.com/jmarinco/go-inventario/app/routes"
	"github.com/jmarinco/go-inventario/app/store"
	"github.com/jmarinco/go-inventario/app/utils/sessions"
)

func main() {
	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	demoMode := env.DemoMode || !env.BackendConfigured()
	gate := store.NewGate(demoMode, env.BackendConfigured())

	var backend store.Backend = store.NoopBackend{}
	var userRepo repositories.UserRepositoryImpl

	if demoMode {
		log.Println("✅ Running in demo mode: no remote backend, changes stay in memory.")
	} else {
		db, err := configs.OpenConnection()
		if err != nil {
			log.Fatal("DB connection failed:", err)
		}
		log.Println("✅ Database connected.")

		userRepo = repositories.NewUserRepository(db)
		owner, err := resolveOwner(userRepo, env.OwnerEmail)
		if err != nil {
			log.Fatal("Owner lookup failed:", err)
		}
		log.Printf("✅ Store owner: %s (%s)", owner.Email, owner.ID)

		backend = repositories.NewGormBackend(
			owner.ID,
			repositories.NewProductRepository(db),
			repositories.NewFolderRepository(db),
			repositories.NewCategoryRepository(db),
			repositories.NewOrderRepository(db),
			repositories.NewSettingsRepository(db),
			repositories.NewClaimedOfferRepository(db),
		)
	}

	st := store.New(gate, backend, store.LogSyncPolicy{})

	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st.LoadInitial(loadCtx)
	cancel()
	log.Println("✅ Store loaded.")

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("Session keys failed to load:", err)
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	log.Println("✅ Session store initialized.")

	router := routes.NewRouter(routes.RouterDeps{
		Env:          env,
		Store:        st,
		Gate:         gate,
		SessionStore: sessionStore,
		UserRepo:     userRepo,
	})

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}
}

// resolveOwner picks the account the single-owner store syncs against:
// OWNER_EMAIL when set, otherwise the oldest account.
func resolveOwner(userRepo repositories.UserRepositoryImpl, ownerEmail string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if ownerEmail != "" {
		u, err := userRepo.FindByEmail(ctx, ownerEmail)
		if err != nil {
			return nil, err
		}
		if u != nil {
			return u, nil
		}
		log.Printf("Warning: OWNER_EMAIL %s not found, falling back to the first account", ownerEmail)
	}

	u, err := userRepo.FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		log.Fatal("No accounts exist yet. Run `migrate` and `seed`, or create a user first.")
	}
	return u, nil
}
