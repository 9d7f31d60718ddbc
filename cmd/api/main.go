package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dashboard-api",
	Short: "API do painel de vendas e marketing da loja",
	RunE:  runServe,
}

func main() {
	rootCmd.AddCommand(serveCmd, syncCmd, migrateCmd, adminCmd)

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("falha ao executar o comando")
		os.Exit(1)
	}
}
