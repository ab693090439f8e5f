package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/mentorhub/core/auth"
	"github.com/trezcool/mentorhub/core/navigation"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	gateway *auth.Gateway
	store   auth.Store
	policy  *navigation.Policy
	out     io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -email EMAIL - log in; the password will be prompted")
	fmt.Fprintln(cli.out, "  register -name NAME -email EMAIL [-role mentor|student] - create an account and log in")
	fmt.Fprintln(cli.out, "  whoami - print the logged in user")
	fmt.Fprintln(cli.out, "  logout - forget the logged in user")
	fmt.Fprintln(cli.out, "  routes - list the pages the logged in user can reach")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginEmail := loginCmd.String("email", "", "The user's email. The password will be prompted next.")

	registerCmd := flag.NewFlagSet("register", flag.ExitOnError)
	registerName := registerCmd.String("name", "", "The user's full name.")
	registerEmail := registerCmd.String("email", "", "The user's email. The password will be prompted next.")
	registerRole := registerCmd.String("role", "student", "The user's role: mentor or student.")

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		pwd, err := cli.readPassword("Enter password:")
		if err != nil {
			return err
		}
		if pwd == "" {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginEmail, pwd)
	case "register":
		if err := registerCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *registerName == "" || *registerEmail == "" {
			registerCmd.Usage()
			return errHelp
		}
		pwd, err := cli.readPassword("Enter password:")
		if err != nil {
			return err
		}
		confirm, err := cli.readPassword("Confirm password:")
		if err != nil {
			return err
		}
		if pwd == "" {
			registerCmd.Usage()
			return errHelp
		}
		return cli.register(*registerName, *registerEmail, pwd, confirm, *registerRole)
	case "whoami":
		return cli.whoami()
	case "logout":
		return cli.logout()
	case "routes":
		return cli.routes()
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) readPassword(prompt string) (string, error) {
	fmt.Fprint(cli.out, prompt)
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}
