package main

import (
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/davidm34/Venda-de-Ingressos/internal/config"
	"github.com/davidm34/Venda-de-Ingressos/internal/facade"
	"github.com/davidm34/Venda-de-Ingressos/internal/service"
	"github.com/davidm34/Venda-de-Ingressos/internal/session"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	cfg := &config.Config{}
	cfg.Storage.Dir = t.TempDir()
	cfg.Ticket.UnitPrice = "100"
	cfg.Auth.BcryptCost = bcrypt.MinCost
	f, err := facade.New(cfg, nil, nil)
	require.NoError(t, err)
	return &app{cfg: cfg, facade: f, sessions: &session.Holder{}}
}

func TestSessionFor(t *testing.T) {
	a := newTestApp(t)
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	ana, err := a.facade.CreateUser(cmd.Context(), service.CreateUserInput{
		Login: "ana", Password: "pw", Email: "ana@example.com",
	})
	require.NoError(t, err)
	bob, err := a.facade.CreateUser(cmd.Context(), service.CreateUserInput{
		Login: "bob", Password: "pw", Email: "bob@example.com",
	})
	require.NoError(t, err)

	t.Run("empty --as falls back to the held session", func(t *testing.T) {
		a.sessions.Login(ana.ID)
		sess, err := a.sessionFor(cmd, "")
		require.NoError(t, err)
		assert.Equal(t, ana.ID, sess.UserID)

		a.sessions.Logout()
		sess, err = a.sessionFor(cmd, "")
		require.NoError(t, err)
		assert.False(t, sess.Authenticated())
	})

	t.Run("--as overrides the held session", func(t *testing.T) {
		a.sessions.Login(ana.ID)
		defer a.sessions.Logout()
		sess, err := a.sessionFor(cmd, bob.Email)
		require.NoError(t, err)
		assert.Equal(t, bob.ID, sess.UserID)
	})

	t.Run("unknown --as email", func(t *testing.T) {
		_, err := a.sessionFor(cmd, "ghost@example.com")
		require.Error(t, err)
	})
}

func TestLoginCommandHoldsSession(t *testing.T) {
	a := newTestApp(t)
	user, err := a.facade.CreateUser(context.Background(), service.CreateUserInput{
		Login: "ana", Password: "s3cret", Email: "ana@example.com",
	})
	require.NoError(t, err)

	run := func(args ...string) error {
		root := newRootCmd(a)
		root.SetArgs(args)
		root.SetOut(io.Discard)
		root.SetErr(io.Discard)
		return root.ExecuteContext(context.Background())
	}

	require.NoError(t, run("login", "--email", "ana@example.com", "--password", "s3cret"))
	assert.Equal(t, user.ID, a.sessions.Current().UserID)

	require.NoError(t, run("logout"))
	assert.False(t, a.sessions.Current().Authenticated())

	require.Error(t, run("login", "--email", "ana@example.com", "--password", "wrong"))
	assert.False(t, a.sessions.Current().Authenticated())
}
