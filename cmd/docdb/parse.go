package main

import (
	"github.com/spf13/cobra"

	"github.com/jdziat/docdb-go/pkg/resource"
)

type parseOutput struct {
	Protocol     string `json:"protocol"`
	Host         string `json:"host"`
	Port         string `json:"port"`
	Path         string `json:"path"`
	File         string `json:"file"`
	Query        string `json:"query"`
	Fragment     string `json:"fragment"`
	ResourceType string `json:"resourceType"`
	ResourceID   string `json:"resourceId"`
	Feed         bool   `json:"feed"`
}

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse URL",
		Short: "Show how a resource URL is split and which resource it addresses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, err := resource.ParseURL(args[0])
			if err != nil {
				return err
			}
			info, err := resource.ParsePath(parts.ResourcePath())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), parseOutput{
				Protocol:     parts.Protocol,
				Host:         parts.Host,
				Port:         parts.Port,
				Path:         parts.Path,
				File:         parts.File,
				Query:        parts.Query,
				Fragment:     parts.Fragment,
				ResourceType: info.ResourceType,
				ResourceID:   info.ResourceID,
				Feed:         info.Feed,
			})
		},
	}
}
