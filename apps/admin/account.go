package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/trezcool/mentorhub/core/auth"
	"github.com/trezcool/mentorhub/core/user"
)

func (cli *commandLine) login(email, pwd string) error {
	sess, err := cli.gateway.Login(context.Background(), cli.store, email, pwd)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Logged in as %s (%s)\n", sess.User.Name, sess.User.Role)
	return nil
}

func (cli *commandLine) register(name, email, pwd, confirm, role string) error {
	sess, err := cli.gateway.Register(context.Background(), cli.store, auth.Registration{
		Name:            name,
		Email:           email,
		Password:        pwd,
		PasswordConfirm: confirm,
		Role:            user.Role(role),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Registered %s (%s)\n", sess.User.Name, sess.User.Role)
	return nil
}

func (cli *commandLine) whoami() error {
	usr, ok := cli.gateway.CurrentUser(cli.store)
	if !ok {
		return auth.ErrNoSession
	}
	data, err := json.MarshalIndent(usr, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, string(data))
	return nil
}

func (cli *commandLine) logout() error {
	if err := cli.gateway.Logout(cli.store); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Logged out")
	return nil
}

// routes lists the reachable pages; unauthenticated users only reach the public ones.
func (cli *commandLine) routes() error {
	var role user.Role
	if usr, ok := cli.gateway.CurrentUser(cli.store); ok {
		role = usr.Role
		for _, link := range cli.policy.Links(role) {
			fmt.Fprintf(cli.out, "* %-16s %s\n", link.Name, link.Path)
		}
	}
	for _, route := range cli.policy.Routes(role) {
		fmt.Fprintf(cli.out, "  %-16s %s\n", route.View, route.Path)
	}
	return nil
}
