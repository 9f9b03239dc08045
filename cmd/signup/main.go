// Interactive sign-up: creates an encrypted account from a seed phrase in KEYSTORE_DIR.
// Usage: KEYSTORE_DIR=./accounts go run ./cmd/signup
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/AlexZinkM/wallet-session/internal/config"
	"github.com/AlexZinkM/wallet-session/internal/logging"
	"github.com/AlexZinkM/wallet-session/internal/model"
	"github.com/AlexZinkM/wallet-session/internal/prompt"
	"github.com/AlexZinkM/wallet-session/internal/session"
	"github.com/AlexZinkM/wallet-session/solana"
)

const maxAttempts = 3

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.New(config.GetLogLevel())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	keystore, err := solana.NewKeystore(config.GetKeystoreDir(), solana.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(context.Background(), keystore, prompt.New(), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printSink writes notifications to the terminal
type printSink struct {
	out io.Writer
}

func (s printSink) Notify(n model.Notification) {
	fmt.Fprintf(s.out, "%s: %s\n", n.Title, n.Body)
}

func run(ctx context.Context, provider session.KeyProvider, p *prompt.Prompter, out io.Writer) error {
	store := session.NewStore(provider, printSink{out: out})
	defer store.Close()

	if err := store.SetModalSessionState(model.SessionSignUp); err != nil {
		return err
	}
	controller := session.NewSignUpController(store)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		fields, err := readFields(p)
		if err != nil {
			return err
		}

		controller.OnSubmit(ctx, fields)
		if account := controller.Account(); account != nil {
			fmt.Fprintf(out, "Address: %s\n", account.Address)
			return nil
		}

		if failure := controller.Failure(); failure != "" {
			fmt.Fprintln(out, failure)
			continue
		}
		printFieldErrors(out, controller.Validation())
	}
	return errors.New("sign up failed: too many attempts")
}

func readFields(p *prompt.Prompter) (model.SignUpFields, error) {
	var fields model.SignUpFields
	var err error

	if fields.AccountName, err = p.Line("Account name"); err != nil {
		return fields, err
	}

	seed, err := p.Password("Seed phrase")
	if err != nil {
		return fields, err
	}
	fields.SeedPhrase = string(seed)
	clear(seed)

	password, err := p.Password("Password")
	if err != nil {
		return fields, err
	}
	fields.Password = string(password)
	clear(password)

	if fields.AcknowledgedWarning, err = p.Confirm("I understand that lost seed phrases cannot be recovered"); err != nil {
		return fields, err
	}
	if fields.AcknowledgedBackup, err = p.Confirm("I have backed up my seed phrase"); err != nil {
		return fields, err
	}
	return fields, nil
}

func printFieldErrors(out io.Writer, result model.ValidationResult) {
	fields := make([]string, 0, len(result.FieldErrors))
	for field := range result.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(out, "  - %s\n", result.FieldErrors[field])
	}
}
