// Command ingressos is the non-graphical front end of the ticket-sales
// core: user, event, card and seat administration plus the purchase,
// cancellation and rating workflows.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/davidm34/Venda-de-Ingressos/internal/clock"
	"github.com/davidm34/Venda-de-Ingressos/internal/config"
	"github.com/davidm34/Venda-de-Ingressos/internal/facade"
	"github.com/davidm34/Venda-de-Ingressos/internal/logger"
	"github.com/davidm34/Venda-de-Ingressos/internal/session"
)

type app struct {
	cfg      *config.Config
	facade   *facade.Facade
	sessions *session.Holder
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	level := "info"
	if cfg.App.Debug {
		level = "debug"
	}
	if err := logger.Init(&logger.Config{
		Level:       level,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	f, err := facade.New(cfg, clock.NewSystem(), logger.Get())
	if err != nil {
		log.Fatalf("Failed to build facade: %v", err)
	}

	a := &app{cfg: cfg, facade: f, sessions: &session.Holder{}}
	root := newRootCmd(a)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "ingressos",
		Short:         "Ticket-sales booking core",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newUserCmd(a),
		newEventCmd(a),
		newSeatCmd(a),
		newCardCmd(a),
		newBuyCmd(a),
		newCancelCmd(a),
		newReactivateCmd(a),
		newRateCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newShellCmd(a),
		newResetCmd(a),
	)
	return root
}

// sessionFor resolves the --as email flag into the explicit session
// value the workflows take. When the flag is empty the holder's
// current session applies, so a login inside the shell carries over to
// the commands that follow it.
func (a *app) sessionFor(cmd *cobra.Command, email string) (session.Session, error) {
	if email == "" {
		return a.sessions.Current(), nil
	}
	user, err := a.facade.UserByEmail(cmd.Context(), email)
	if err != nil {
		return session.Session{}, err
	}
	if user == nil {
		return session.Session{}, fmt.Errorf("no user with email %s", email)
	}
	return session.Session{UserID: user.ID}, nil
}
