// Command backoffice-cli is the operator console of the back office.
//
//	backoffice-cli login -u admin -p secret
//	backoffice-cli customers list -search 555
//	backoffice-cli orders add -customer 3 -item 1:2 -item 4:1 -type delivery
//	backoffice-cli orders set 12 -payment paid
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/MikeMC777/ordenes-backoffice/internal/client"
	"github.com/MikeMC777/ordenes-backoffice/internal/config"
	"github.com/MikeMC777/ordenes-backoffice/internal/validate"
)

const usage = `usage: backoffice-cli <command> [args]

commands:
  register  -u USER -p PASS
  login     -u USER -p PASS
  logout
  whoami
  customers list|add|edit|rm
  products  list|add|edit|rm
  orders    list|show|add|set|rm
  dashboard
`

type cli struct {
	api   *client.Client
	out   io.Writer
	store sessionFile
}

func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	store := defaultSessionFile()
	session := &client.Session{}
	if t, err := store.Load(); err == nil {
		session.Set(t)
	}
	c := &cli{
		api:   client.New(cfg.APIBaseURL, client.WithSession(session)),
		out:   os.Stdout,
		store: store,
	}
	if err := c.run(ctx, os.Args[1:]); err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return c.register(ctx, rest)
	case "login":
		return c.login(ctx, rest)
	case "logout":
		return c.logout(ctx)
	case "whoami":
		name, err := c.api.Whoami(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, name)
		return nil
	case "customers":
		return c.customers(ctx, rest)
	case "products":
		return c.products(ctx, rest)
	case "orders":
		return c.orders(ctx, rest)
	case "dashboard":
		return c.dashboard(ctx)
	}
	return fmt.Errorf("unknown command %q\n\n%s", cmd, usage)
}

func report(w io.Writer, err error) {
	var re *client.RemoteError
	switch ve, isValidation := validate.As(err); {
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(w, "session missing or expired, run: backoffice-cli login")
	case isValidation:
		fmt.Fprintln(w, "invalid input:")
		printFields(w, ve)
	case errors.As(err, &re):
		fmt.Fprintf(w, "server error (%d): %s\n", re.Status, re.Message)
		printFields(w, re.Fields)
	default:
		fmt.Fprintln(w, err)
	}
}
