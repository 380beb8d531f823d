package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/lbcclient"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().Bool("yes", false, "supprime sans demander confirmation")
}

var deleteCmd = &cobra.Command{
	Use:   "delete <list_id>",
	Short: "Supprime une annonce sans la republier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listID := args[0]

		skipConfirm, _ := cmd.Flags().GetBool("yes")
		if !skipConfirm && !confirmDeletion(listID) {
			fmt.Fprintln(os.Stdout, "Suppression annulée.")
			return nil
		}

		auth, err := authProvider().NewContext()
		if err != nil {
			return err
		}

		client := lbcclient.NewClient(cfg)
		return client.DeleteAd(cmd.Context(), auth, listID)
	},
}

func confirmDeletion(listID string) bool {
	fmt.Fprintf(os.Stdout, "Supprimer définitivement l'annonce %s? [o/N] ", listID)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "o", "oui", "y", "yes":
		return true
	default:
		return false
	}
}
