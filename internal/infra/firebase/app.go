// Package firebase owns the Firebase app shared by Firestore, Auth and Cloud Messaging.
// Clients are created on first use so deployments that run on the in-memory store
// and local identity never touch Google credentials.
package firebase

import (
	"context"
	"log/slog"
	"sync"

	"storefront/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Apps lazily builds Firebase clients from one app instance
type Apps struct {
	cfg    *config.FirebaseConfig
	logger *slog.Logger

	appOnce sync.Once
	app     *firebase.App
	appErr  error

	mu        sync.Mutex
	firestore *firestore.Client
	auth      *auth.Client
	messaging *messaging.Client
}

// Params holds dependencies for Apps, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewApps creates the lazy client holder and closes Firestore on shutdown
func NewApps(params Params) *Apps {
	apps := &Apps{
		cfg:    params.Config.Firebase,
		logger: params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return apps.Close()
		},
	})

	return apps
}

func (a *Apps) clientOptions() []option.ClientOption {
	if a.cfg == nil || a.cfg.CredentialsPath == "" {
		// Application default credentials
		return nil
	}

	return []option.ClientOption{option.WithCredentialsFile(a.cfg.CredentialsPath)}
}

func (a *Apps) initApp(ctx context.Context) (*firebase.App, error) {
	a.appOnce.Do(func() {
		var fbConfig *firebase.Config
		if a.cfg != nil && a.cfg.ProjectID != "" {
			fbConfig = &firebase.Config{ProjectID: a.cfg.ProjectID}
		}

		a.app, a.appErr = firebase.NewApp(ctx, fbConfig, a.clientOptions()...)
		if a.appErr != nil {
			a.appErr = errors.Wrap(a.appErr, "failed to initialize Firebase app")

			return
		}

		a.logger.Info("Firebase app initialized", slog.String("project_id", a.projectID()))
	})

	return a.app, a.appErr
}

func (a *Apps) projectID() string {
	if a.cfg == nil {
		return ""
	}

	return a.cfg.ProjectID
}

// Firestore returns the shared Firestore client
func (a *Apps) Firestore(ctx context.Context) (*firestore.Client, error) {
	app, err := a.initApp(ctx)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.firestore == nil {
		client, err := app.Firestore(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get Firestore client")
		}
		a.firestore = client
	}

	return a.firestore, nil
}

// Auth returns the shared Firebase Auth client
func (a *Apps) Auth(ctx context.Context) (*auth.Client, error) {
	app, err := a.initApp(ctx)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.auth == nil {
		client, err := app.Auth(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get Auth client")
		}
		a.auth = client
	}

	return a.auth, nil
}

// Messaging returns the shared Cloud Messaging client
func (a *Apps) Messaging(ctx context.Context) (*messaging.Client, error) {
	app, err := a.initApp(ctx)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.messaging == nil {
		client, err := app.Messaging(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get messaging client")
		}
		a.messaging = client
	}

	return a.messaging, nil
}

// Close releases the Firestore connection if one was opened
func (a *Apps) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.firestore == nil {
		return nil
	}

	err := a.firestore.Close()
	a.firestore = nil

	return errors.WithStack(err)
}
