package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/statement"
	authsvc "github.com/amirasaad/ledger/pkg/service/auth"
	stmtsvc "github.com/amirasaad/ledger/pkg/service/statement"
	usersvc "github.com/amirasaad/ledger/pkg/service/user"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  register  <name> <email>
  deposit   <email> <amount> [description]
  withdraw  <email> <amount> [description]
  balance   <email>
  statement <email> <statement_id>`

var (
	success = color.New(color.FgGreen, color.Bold)
	failure = color.New(color.FgRed, color.Bold)
	muted   = color.New(color.FgHiBlack)
)

type cli struct {
	users      *usersvc.Service
	statements *stmtsvc.Service
	auth       *authsvc.Service
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}
	if err := run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		_, _ = failure.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd string, args []string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.DB.Driver == config.DriverMemory {
		_, _ = muted.Println("warning: memory driver, nothing is kept after this command")
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return err
	}
	c := &cli{
		users:      usersvc.New(deps.Uow, deps.Logger),
		statements: stmtsvc.New(deps.Uow, deps.Logger),
		auth:       authsvc.NewWithBasic(deps.Uow, deps.Logger),
	}

	switch cmd {
	case "register":
		if len(args) < 2 {
			return errors.New("usage: register <name> <email>")
		}
		return c.register(ctx, args[0], args[1])
	case "deposit", "withdraw":
		if len(args) < 2 {
			return fmt.Errorf("usage: %s <email> <amount> [description]", cmd)
		}
		return c.operation(ctx, statement.OperationType(cmd), args[0], args[1], strings.Join(args[2:], " "))
	case "balance":
		if len(args) < 1 {
			return errors.New("usage: balance <email>")
		}
		return c.balance(ctx, args[0])
	case "statement":
		if len(args) < 2 {
			return errors.New("usage: statement <email> <statement_id>")
		}
		return c.statement(ctx, args[0], args[1])
	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		return string(b), err
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// login checks the password of email and returns the user id.
func (c *cli) login(ctx context.Context, email string) (uuid.UUID, error) {
	password, err := readPassword("Password: ")
	if err != nil {
		return uuid.Nil, err
	}
	u, err := c.auth.Login(ctx, email, password)
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID, nil
}

func (c *cli) register(ctx context.Context, name, email string) error {
	password, err := readPassword("Choose a password: ")
	if err != nil {
		return err
	}
	u, err := c.users.CreateUser(ctx, name, email, password)
	if err != nil {
		return err
	}
	_, _ = success.Printf("Registered %s <%s> id=%s\n", u.Name, u.Email, u.ID)
	return nil
}

func (c *cli) operation(ctx context.Context, opType statement.OperationType, email, rawAmount, description string) error {
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", rawAmount, err)
	}
	userID, err := c.login(ctx, email)
	if err != nil {
		return err
	}
	created, err := c.statements.CreateStatement(ctx, stmtsvc.CreateStatementInput{
		UserID:      userID,
		Type:        opType,
		Amount:      amount,
		Description: description,
	})
	if err != nil {
		return err
	}
	balance, err := c.statements.ComputeBalance(ctx, userID)
	if err != nil {
		return err
	}
	_, _ = success.Printf("%s %s recorded (id=%s). Balance: %s\n", opType, created.Amount, created.ID, balance.Amount)
	return nil
}

func (c *cli) balance(ctx context.Context, email string) error {
	userID, err := c.login(ctx, email)
	if err != nil {
		return err
	}
	balance, err := c.statements.GetBalance(ctx, userID)
	if err != nil {
		return err
	}
	for _, s := range balance.Statements {
		line := fmt.Sprintf("%s  %-8s %12s  %s  %s", s.CreatedAt.Format("2006-01-02 15:04"), s.Type, s.Amount, s.ID, s.Description)
		if s.Type == statement.Withdraw {
			_, _ = color.New(color.FgYellow).Println(line)
		} else {
			fmt.Println(line)
		}
	}
	_, _ = success.Printf("Balance: %s\n", balance.Amount)
	return nil
}

func (c *cli) statement(ctx context.Context, email, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return statement.ErrStatementNotFound
	}
	userID, err := c.login(ctx, email)
	if err != nil {
		return err
	}
	s, err := c.statements.GetStatementOperation(ctx, userID, id)
	if err != nil {
		return err
	}
	_, _ = success.Printf("%s %s on %s\n", s.Type, s.Amount, s.CreatedAt.Format("2006-01-02 15:04:05"))
	if s.Description != "" {
		_, _ = muted.Println(s.Description)
	}
	return nil
}
