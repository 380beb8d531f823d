package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/lbc-republisher/internal/usecases/republishing"
	"github.com/vfg2006/lbc-republisher/pkg/log"
)

func init() {
	rootCmd.AddCommand(republishCmd)
}

var republishCmd = &cobra.Command{
	Use:   "republish <list_id>",
	Short: "Supprime et recrée une annonce existante via l'API privée",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listID := args[0]

		ctx, _ := log.WithCorrelationID(cmd.Context())

		result, err := republisherService().Republish(ctx, listID)
		if err != nil {
			// O ad_id novo sobrevive à falha da exclusão: as duas annonces
			// coexistem até a limpeza manual
			if result != nil && result.AdID != 0 {
				fmt.Fprintf(os.Stdout, "La nouvelle annonce #%d est en ligne; supprimez l'ancienne manuellement.\n", result.AdID)
			}
			return err
		}

		if result.State == republishing.StateCancelled {
			fmt.Fprintln(os.Stdout, "Republication annulée.")
		}

		return nil
	},
}
