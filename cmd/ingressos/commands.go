package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
	"github.com/davidm34/Venda-de-Ingressos/internal/facade"
	"github.com/davidm34/Venda-de-Ingressos/internal/service"
)

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "user", Short: "Manage users"}

	var in service.CreateUserInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.facade.CreateUser(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Println(user.ID)
			return nil
		},
	}
	create.Flags().StringVar(&in.Login, "login", "", "login name")
	create.Flags().StringVar(&in.Password, "password", "", "password")
	create.Flags().StringVar(&in.Name, "name", "", "display name")
	create.Flags().StringVar(&in.CPF, "cpf", "", "CPF document number")
	create.Flags().StringVar(&in.Email, "email", "", "email (unique)")
	create.Flags().BoolVar(&in.Admin, "admin", false, "grant admin rights")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("password")

	var delEmail string
	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete a user by email",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.DeleteUser(cmd.Context(), delEmail)
		},
	}
	del.Flags().StringVar(&delEmail, "email", "", "email of the user")
	_ = del.MarkFlagRequired("email")

	count := &cobra.Command{
		Use:   "count",
		Short: "Print the number of registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.facade.UserCount(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(n)
			return nil
		},
	}

	cmd.AddCommand(create, del, count)
	return cmd
}

func newEventCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "event", Short: "Manage events"}

	var (
		in        service.CreateEventInput
		date      string
		asEmail   string
		organizer string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Register an event (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("parse date %q: %w", date, err)
			}
			in.Date = d
			if organizer != "" {
				event, err := a.facade.SeedEvent(cmd.Context(), in, organizer)
				if err != nil {
					return err
				}
				fmt.Println(event.ID)
				return nil
			}
			sess, err := a.sessionFor(cmd, asEmail)
			if err != nil {
				return err
			}
			event, err := a.facade.CreateEvent(cmd.Context(), sess, in)
			if err != nil {
				return err
			}
			fmt.Println(event.ID)
			return nil
		},
	}
	create.Flags().StringVar(&in.Name, "name", "", "event name")
	create.Flags().StringVar(&in.Description, "description", "", "event description")
	create.Flags().StringVar(&date, "date", "", "event date (2006-01-02)")
	create.Flags().StringVar(&asEmail, "as", "", "email of the admin creating the event")
	create.Flags().StringVar(&organizer, "seed-organizer", "", "seed the event without the admin gate, owned by this login")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("date")

	var showID string
	show := &cobra.Command{
		Use:   "show",
		Short: "Show an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			event, err := a.facade.EventByID(cmd.Context(), showID)
			if err != nil {
				return err
			}
			if event == nil {
				return fmt.Errorf("no event with id %s", showID)
			}
			active, err := a.facade.EventIsActive(cmd.Context(), showID)
			if err != nil {
				return err
			}
			avg, err := a.facade.AverageScore(cmd.Context(), showID)
			rating := "no ratings"
			if err == nil {
				rating = fmt.Sprintf("%.2f", avg)
			} else if !errors.Is(err, domain.ErrNoRatings) {
				return err
			}
			fmt.Printf("%s\n  date: %s\n  active: %v\n  organizer: %s\n  rating: %s\n",
				event.Name, event.Date.Format("2006-01-02"), active, event.Organizer, rating)
			return nil
		},
	}
	show.Flags().StringVar(&showID, "id", "", "event id")
	_ = show.MarkFlagRequired("id")

	cmd.AddCommand(create, show)
	return cmd
}

func newSeatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "seat", Short: "Manage an event's seat pool"}

	var eventID, label string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a seat to the pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.AddSeat(cmd.Context(), eventID, label)
		},
	}
	remove := &cobra.Command{
		Use:   "remove",
		Short: "Remove a seat from the pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.RemoveSeat(cmd.Context(), eventID, label)
		},
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "List the available seats",
		RunE: func(cmd *cobra.Command, args []string) error {
			seats, err := a.facade.AvailableSeats(cmd.Context(), eventID)
			if err != nil {
				return err
			}
			fmt.Println(strings.Join(seats, ", "))
			return nil
		},
	}
	for _, c := range []*cobra.Command{add, remove, list} {
		c.Flags().StringVar(&eventID, "event", "", "event id")
		_ = c.MarkFlagRequired("event")
	}
	for _, c := range []*cobra.Command{add, remove} {
		c.Flags().StringVar(&label, "label", "", "seat label")
		_ = c.MarkFlagRequired("label")
	}

	cmd.AddCommand(add, remove, list)
	return cmd
}

func newCardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "card", Short: "Manage payment cards"}

	var (
		email, number, expiry string
		cvv                   int
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Store a card for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := facade.ExpiryFromString(expiry)
			if err != nil {
				return err
			}
			card, err := a.facade.CreateCard(cmd.Context(), service.CreateCardInput{
				UserEmail: email,
				Number:    number,
				Expiry:    exp,
				CVV:       cvv,
			})
			if err != nil {
				return err
			}
			fmt.Println(card.ID)
			return nil
		},
	}
	create.Flags().StringVar(&email, "email", "", "owner email")
	create.Flags().StringVar(&number, "number", "", "card number (unique)")
	create.Flags().StringVar(&expiry, "expiry", "", "expiry (2006-01)")
	create.Flags().IntVar(&cvv, "cvv", 0, "security code")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("number")
	_ = create.MarkFlagRequired("expiry")

	var deleteID string
	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete (disable) a card",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.DeleteCard(cmd.Context(), deleteID)
		},
	}
	del.Flags().StringVar(&deleteID, "id", "", "card id")
	_ = del.MarkFlagRequired("id")

	cmd.AddCommand(create, del)
	return cmd
}

func newBuyCmd(a *app) *cobra.Command {
	var in service.PurchaseInput
	var asEmail string
	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Purchase a seat for an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.sessionFor(cmd, asEmail)
			if err != nil {
				return err
			}
			res, err := a.facade.Purchase(cmd.Context(), sess, in)
			if err != nil {
				return err
			}
			fmt.Printf("purchase %s ticket %s\n", res.PurchaseID, res.TicketID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.EventID, "event", "", "event id")
	cmd.Flags().StringVar(&in.CardID, "card", "", "card id")
	cmd.Flags().StringVar(&in.Seat, "seat", "", "seat label")
	cmd.Flags().StringVar(&asEmail, "as", "", "email of the buying user")
	_ = cmd.MarkFlagRequired("event")
	_ = cmd.MarkFlagRequired("card")
	_ = cmd.MarkFlagRequired("seat")
	return cmd
}

func newCancelCmd(a *app) *cobra.Command {
	var ticketID, asEmail string
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel one of your tickets (future events only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.sessionFor(cmd, asEmail)
			if err != nil {
				return err
			}
			return a.facade.CancelTicket(cmd.Context(), sess, ticketID)
		},
	}
	cmd.Flags().StringVar(&ticketID, "ticket", "", "ticket id")
	cmd.Flags().StringVar(&asEmail, "as", "", "email of the ticket owner")
	_ = cmd.MarkFlagRequired("ticket")
	_ = cmd.MarkFlagRequired("as")
	return cmd
}

func newReactivateCmd(a *app) *cobra.Command {
	var ticketID string
	cmd := &cobra.Command{
		Use:   "reactivate",
		Short: "Reactivate a cancelled ticket",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.ReactivateTicket(cmd.Context(), ticketID)
		},
	}
	cmd.Flags().StringVar(&ticketID, "ticket", "", "ticket id")
	_ = cmd.MarkFlagRequired("ticket")
	return cmd
}

func newRateCmd(a *app) *cobra.Command {
	var (
		eventID, comment, asEmail string
		score                     int
	)
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Rate a finished event",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.sessionFor(cmd, asEmail)
			if err != nil {
				return err
			}
			rating, err := a.facade.SubmitRating(cmd.Context(), sess, eventID, score, comment)
			if err != nil {
				return err
			}
			fmt.Println(rating.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&eventID, "event", "", "event id")
	cmd.Flags().IntVar(&score, "score", 0, "integer score")
	cmd.Flags().StringVar(&comment, "comment", "", "free-text comment")
	cmd.Flags().StringVar(&asEmail, "as", "", "email of the rating user")
	_ = cmd.MarkFlagRequired("event")
	_ = cmd.MarkFlagRequired("score")
	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and hold the session for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.facade.Authenticate(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			a.sessions.Login(user.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the held session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.sessions.Logout()
			return nil
		},
	}
}

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively; login carries across them",
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			fmt.Fprint(out, "> ")
			for scanner.Scan() {
				fields := strings.Fields(scanner.Text())
				if len(fields) > 0 {
					if fields[0] == "exit" || fields[0] == "quit" {
						return nil
					}
					// A fresh command tree per line keeps flag state
					// from leaking between invocations.
					root := newRootCmd(a)
					root.SetArgs(fields)
					root.SetOut(out)
					root.SetErr(cmd.ErrOrStderr())
					if err := root.ExecuteContext(cmd.Context()); err != nil {
						fmt.Fprintln(cmd.ErrOrStderr(), err)
					}
				}
				fmt.Fprint(out, "> ")
			}
			return scanner.Err()
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear every collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.Reset(cmd.Context())
		},
	}
}
