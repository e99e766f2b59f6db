package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/jdziat/docdb-go"
	"github.com/jdziat/docdb-go/internal/config"
	"github.com/jdziat/docdb-go/pkg/metrics"
)

type requestFlags struct {
	endpoint    string
	path        string
	key         string
	verb        string
	body        string
	bodyFile    string
	apiVersion  string
	timeout     time.Duration
	headers     []string
	showMetrics bool
}

func newRequestCommand(g *globalFlags) *cobra.Command {
	f := &requestFlags{}

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Sign and send one request and print the result envelope",
		Example: `  docdb request --endpoint https://acct.documents.azure.com/dbs --key "$KEY"
  docdb request --verb DELETE --path /dbs/mydb/colls/items/docs/1
  docdb request --verb PUT --path /dbs/mydb/colls/items/docs/1 --body-file doc.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, g, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.endpoint, "endpoint", "", "Account endpoint or full resource URL (env: "+config.EnvEndpoint+")")
	flags.StringVar(&f.path, "path", "", "Resource path appended to the endpoint, e.g. /dbs/mydb/colls")
	flags.StringVar(&f.key, "key", "", "Base64 master key (env: "+config.EnvKey+")")
	flags.StringVarP(&f.verb, "verb", "X", "GET", "HTTP verb: GET, POST, PUT or DELETE")
	flags.StringVarP(&f.body, "body", "d", "", "JSON body for POST and PUT")
	flags.StringVar(&f.bodyFile, "body-file", "", "Read the JSON body from a file, or - for stdin")
	flags.StringVar(&f.apiVersion, "api-version", "", "x-ms-version header value (env: "+config.EnvAPIVersion+")")
	flags.DurationVar(&f.timeout, "timeout", 0, "Request timeout, e.g. 30s (0 means none)")
	flags.StringArrayVarP(&f.headers, "header", "H", nil, "Extra header as 'Name: value' (repeatable)")
	flags.BoolVar(&f.showMetrics, "metrics", false, "Print request metrics in Prometheus text format to stderr")

	return cmd
}

func runRequest(cmd *cobra.Command, g *globalFlags, f *requestFlags) error {
	profile, err := g.resolveProfile()
	if err != nil {
		return err
	}

	endpoint := profile.Endpoint
	if f.endpoint != "" {
		endpoint = f.endpoint
	}
	if endpoint == "" {
		return fmt.Errorf("no endpoint: use --endpoint, %s or a profile", config.EnvEndpoint)
	}
	target := (&config.Profile{Endpoint: endpoint}).URL(f.path)

	key := profile.Key
	if f.key != "" {
		key = f.key
	}

	body, err := readBody(cmd.InOrStdin(), f)
	if err != nil {
		return err
	}

	logger := g.logger(cmd)
	opts := []docdb.Option{
		docdb.WithStructuredLogger(logger),
	}
	if g.verbose {
		opts = append(opts, docdb.WithClassifiedHooks(docdb.LoggingHook(logger), docdb.DebugHook(logger)))
	}

	apiVersion := profile.APIVersion
	if f.apiVersion != "" {
		apiVersion = f.apiVersion
	}
	opts = append(opts, docdb.WithAPIVersion(apiVersion))

	timeout := time.Duration(profile.Timeout)
	if f.timeout > 0 {
		timeout = f.timeout
	}
	opts = append(opts, docdb.WithTimeout(timeout))

	for _, h := range f.headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return fmt.Errorf("invalid header %q: expected 'Name: value'", h)
		}
		opts = append(opts, docdb.WithHeader(strings.TrimSpace(name), strings.TrimSpace(value)))
	}

	var reg *prometheus.Registry
	if f.showMetrics {
		reg = prometheus.NewRegistry()
		m := metrics.NewPrometheus(reg)
		opts = append(opts, docdb.WithMetrics(m), docdb.WithClassifiedHooks(docdb.MetricsHook(m)))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res := docdb.IssueRequest(ctx, target, key, f.verb, body, opts...)

	if reg != nil {
		if err := writeMetrics(cmd.ErrOrStderr(), reg); err != nil {
			return err
		}
	}

	return writeResult(cmd.OutOrStdout(), res)
}

// readBody returns the request body from --body or --body-file.
func readBody(stdin io.Reader, f *requestFlags) (string, error) {
	if f.bodyFile == "" {
		return f.body, nil
	}
	if f.body != "" {
		return "", fmt.Errorf("--body and --body-file are mutually exclusive")
	}

	var (
		data []byte
		err  error
	)
	if f.bodyFile == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(f.bodyFile)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	return string(data), nil
}

// writeMetrics dumps the registry in the Prometheus text exposition format.
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
