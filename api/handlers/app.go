package handlers

import (
	"crypto/rand"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/drivewise/fleet-api/account"
	"github.com/drivewise/fleet-api/api"
	"github.com/drivewise/fleet-api/config"
	"github.com/drivewise/fleet-api/fleet"
	"github.com/drivewise/fleet-api/prefs"
	"github.com/drivewise/fleet-api/storage"
)

// App stores the router and the loaded stores, so they can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	Fleet    *fleet.Store
	Prefs    *prefs.Store
	Accounts *account.Store
}

// Initialize is invoked by main to open the snapshot directory, load every
// store and create a router
func (a *App) Initialize() error {
	snap, err := storage.NewFileSnapshot(a.Config.DataDir)
	if err != nil {
		zap.S().With(err).Error("failed to open snapshot directory")
		return err
	}

	a.Fleet = fleet.NewStore(snap)
	a.Fleet.Load()
	a.Prefs = prefs.NewStore(snap, a.Config.DefaultTheme)
	a.Prefs.Load()
	a.Accounts = account.NewStore(snap)
	a.Accounts.Load()
	zap.S().Infow("snapshots loaded", "vehicles", len(a.Fleet.All()))

	a.initializeRoutes()
	return nil
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	secret := []byte(a.Config.SessionSecret)
	if len(secret) == 0 {
		// ephemeral secret, sessions do not survive a restart
		secret = make([]byte, 32)
		_, _ = rand.Read(secret)
	}
	g := api.Guard{Accounts: a.Accounts, Secret: secret}
	g.SetupGoGuardian()

	r := mux.NewRouter()

	v := Vehicle{Store: a.Fleet}
	d := Dashboard{Store: a.Fleet}
	rem := Reminder{Store: a.Fleet, Prefs: a.Prefs}
	doc := Document{Store: a.Fleet}
	p := Preferences{Store: a.Prefs}
	acc := Account{DB: a.Accounts}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/signup", http.HandlerFunc(acc.SignupHandler)).Methods("POST")
	apiCreate.Handle("/auth/token", http.HandlerFunc(g.CreateToken)).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")
	apiCreate.Handle("/auth/forgot", http.HandlerFunc(acc.ForgotPasswordHandler)).Methods("POST")
	apiCreate.Handle("/auth/reset", http.HandlerFunc(acc.ResetPasswordHandler)).Methods("POST")

	apiCreate.Handle("/vehicles", api.Middleware(http.HandlerFunc(v.VehiclesHandler))).Methods("GET")
	apiCreate.Handle("/vehicles", api.Middleware(http.HandlerFunc(v.ReplaceVehiclesHandler))).Methods("PUT")
	apiCreate.Handle("/vehicle", api.Middleware(http.HandlerFunc(v.CreateVehicleHandler))).Methods("POST")
	apiCreate.Handle("/vehicle/{vehicle_id}", api.Middleware(http.HandlerFunc(v.VehicleByIDHandler))).Methods("GET")
	apiCreate.Handle("/vehicle/{vehicle_id}", api.Middleware(http.HandlerFunc(v.UpdateVehicleHandler))).Methods("PUT")
	apiCreate.Handle("/vehicle/{vehicle_id}", api.Middleware(http.HandlerFunc(v.DeleteVehicleHandler))).Methods("DELETE")
	apiCreate.Handle("/vehicle/{vehicle_id}/maintenance", api.Middleware(http.HandlerFunc(v.AddMaintenanceHandler))).Methods("POST")
	apiCreate.Handle("/vehicle/{vehicle_id}/crashes", api.Middleware(http.HandlerFunc(v.AddCrashHandler))).Methods("POST")
	apiCreate.Handle("/vehicle/{vehicle_id}/docs", api.Middleware(http.HandlerFunc(v.AddDocumentHandler))).Methods("POST")

	apiCreate.Handle("/dashboard", api.Middleware(http.HandlerFunc(d.DashboardHandler))).Methods("GET")
	apiCreate.Handle("/reminders", api.Middleware(http.HandlerFunc(rem.RemindersHandler))).Methods("GET")
	apiCreate.Handle("/documents", api.Middleware(http.HandlerFunc(doc.DocumentsHandler))).Methods("GET")

	apiCreate.Handle("/preferences", api.Middleware(http.HandlerFunc(p.GetPreferencesHandler))).Methods("GET")
	apiCreate.Handle("/preferences", api.Middleware(http.HandlerFunc(p.UpdatePreferencesHandler))).Methods("PUT")

	apiCreate.Handle("/account", api.Middleware(http.HandlerFunc(acc.AccountHandler))).Methods("GET")
	apiCreate.Handle("/account", api.Middleware(http.HandlerFunc(acc.DeleteAccountHandler))).Methods("DELETE")

	return r
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}
