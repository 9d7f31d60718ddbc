package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	adminName     string
	adminEmail    string
	adminPassword string

	adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Gerencia os usuários administradores",
	}

	adminCreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Cria um usuário administrador",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password := adminPassword
			if password == "" {
				password = os.Getenv("ADMIN_PASSWORD")
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			user, err := a.authenticator().CreateAdmin(cmd.Context(), adminName, adminEmail, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "administrador %s criado (id %d)\n", user.Email, user.ID)
			return nil
		},
	}
)

func init() {
	adminCreateCmd.Flags().StringVar(&adminName, "name", "", "nome do administrador")
	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "e-mail de login")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "senha (ou ADMIN_PASSWORD)")
	_ = adminCreateCmd.MarkFlagRequired("email")

	adminCmd.AddCommand(adminCreateCmd)
}
