package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/jdziat/docdb-go"
	"github.com/jdziat/docdb-go/pkg/resource"
)

type signOutput struct {
	Verb          string `json:"verb"`
	ResourceType  string `json:"resourceType"`
	ResourceID    string `json:"resourceId"`
	Date          string `json:"date"`
	Canonical     string `json:"canonical"`
	Authorization string `json:"authorization"`
}

func newSignCommand(g *globalFlags) *cobra.Command {
	var (
		verb string
		path string
		key  string
		date string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Print the x-ms-date and Authorization headers for a request",
		Long: `sign computes the headers a request would carry without sending it. The
string that was signed is printed too, which helps when comparing against
another client.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				profile, err := g.resolveProfile()
				if err != nil {
					return err
				}
				key = profile.Key
			}

			at := time.Now()
			if date != "" {
				t, err := http.ParseTime(date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", date, err)
				}
				at = t
			}

			signed, res := docdb.Sign(key, verb, path, at)
			if !res.OK() {
				return writeResult(cmd.OutOrStdout(), res)
			}

			// Sign has already validated the path.
			info, _ := resource.ParsePath(path)
			return writeJSON(cmd.OutOrStdout(), signOutput{
				Verb:          verb,
				ResourceType:  info.ResourceType,
				ResourceID:    info.ResourceID,
				Date:          signed.Date,
				Canonical:     signed.Canonical,
				Authorization: signed.Authorization,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&verb, "verb", "X", "GET", "HTTP verb: GET, POST, PUT or DELETE")
	flags.StringVar(&path, "path", "", "Resource path, e.g. /dbs/mydb/colls")
	flags.StringVar(&key, "key", "", "Base64 master key (default: from profile)")
	flags.StringVar(&date, "date", "", "Request date in RFC 1123 format (default: now)")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}
