package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/notedeck/internal/auth"
	"github.com/cristianoliveira/notedeck/internal/domain"
	apperrors "github.com/cristianoliveira/notedeck/internal/errors"
	"github.com/cristianoliveira/notedeck/internal/hooks"
	"github.com/cristianoliveira/notedeck/internal/logging"
	"github.com/cristianoliveira/notedeck/internal/storage"
	"github.com/cristianoliveira/notedeck/internal/workspace"
)

// app holds the collaborators of one command invocation.
type app struct {
	store domain.Store
	auth  *auth.Service
	hooks workspace.Hooks
}

// appOpener builds an app. Commands take one so tests can use an in-memory store.
type appOpener func(ctx context.Context) (*app, error)

// openApp opens the configured storage backend and session.
func openApp(ctx context.Context) (*app, error) {
	store, err := storage.NewFromConfig(ctx)
	if err != nil {
		return nil, apperrors.Persistence("open storage", err)
	}
	svc, err := auth.NewServiceFromConfig(store)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("open session: %w", err)
	}
	return &app{store: store, auth: svc, hooks: hooks.NewFromConfig()}, nil
}

// Close releases the store.
func (a *app) Close() error {
	return a.store.Close()
}

// workspace returns a headless workspace loaded for the signed in user.
func (a *app) workspace(ctx context.Context, opts ...workspace.Option) (*workspace.Workspace, error) {
	base := []workspace.Option{
		workspace.WithHeadless(),
		workspace.WithContext(ctx),
		workspace.WithPasswordChanger(a.auth),
		workspace.WithHooks(a.hooks),
		workspace.WithLogger(logging.GetGlobal()),
	}
	ws := workspace.New(a.store, a.auth, append(base, opts...)...)
	if err := drive(ws, ws.Init()); err != nil {
		return nil, err
	}
	return ws, nil
}

// drive runs cmd to completion and returns the last failure the workspace
// recorded. Each command works on a fresh workspace.
func drive(ws *workspace.Workspace, cmd tea.Cmd) error {
	workspace.Drive(ws, cmd)
	return ws.LastError()
}

// withApp opens an app, runs fn and closes the app.
func withApp(ctx context.Context, open appOpener, fn func(*app) error) error {
	a, err := open(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
