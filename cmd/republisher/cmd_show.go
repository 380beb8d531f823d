package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/lbc-republisher/infrastructure/integrator/lbc/lbcclient"
	"github.com/vfg2006/lbc-republisher/pkg/utils"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <list_id>",
	Short: "Affiche les données brutes d'une annonce",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		auth, err := authProvider().NewContext()
		if err != nil {
			return err
		}

		client := lbcclient.NewClient(cfg)
		listing, err := client.FetchAd(cmd.Context(), auth, args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, utils.PrettyJson(listing))
		return nil
	},
}
