package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yaronha/demo-llm-agent/pkg/models"
	"github.com/yaronha/demo-llm-agent/pkg/services"
)

var (
	updateColOwner       string
	updateColDescription string
	updateColCategory    string
	updateColMetadata    []string
)

var updateCollectionCmd = &cobra.Command{
	Use:   "collection NAME",
	Short: "Create or update a document collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metadata, err := parseKeyValues(updateColMetadata)
		if err != nil {
			return err
		}
		meta := make(map[string]any, len(metadata))
		for k, v := range metadata {
			meta[k] = v
		}
		if len(meta) == 0 {
			meta = nil
		}

		db, err := connectDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		col, err := services.NewCollectionService(db.Client).CreateOrUpdate(cmd.Context(), models.CollectionSpec{
			Name:        args[0],
			Description: updateColDescription,
			OwnerName:   updateColOwner,
			DBCategory:  updateColCategory,
			Meta:        meta,
		})
		if err != nil {
			return err
		}

		fmt.Println(color.GreenString("Collection %s saved", col.ID))
		return nil
	},
}

func init() {
	updateCollectionCmd.Flags().StringVarP(&updateColOwner, "owner", "o", "", "owner name")
	updateCollectionCmd.Flags().StringVarP(&updateColDescription, "description", "d", "", "collection description")
	updateCollectionCmd.Flags().StringVarP(&updateColCategory, "category", "c", "", "collection category")
	updateCollectionCmd.Flags().StringArrayVarP(&updateColMetadata, "metadata", "m", nil, "metadata key=value pair (repeatable)")
}
