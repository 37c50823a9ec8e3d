package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
)

// stdout receives command output - can be replaced in tests.
var stdout io.Writer = os.Stdout

// GetPipeline prints the configuration of a pipeline job.
func GetPipeline(ctx context.Context, folder, appName string, creds Credentials) error {
	settings, err := resolveSettings(creds)
	if err != nil {
		return err
	}

	client, err := newCIClient(settings.CI, loadTimeouts().HTTPRequest)
	if err != nil {
		return fmt.Errorf("failed to create CI client: %w", err)
	}

	body, err := client.GetPipeline(ctx, folder, appName)
	if err != nil {
		return fmt.Errorf("failed to get pipeline %s/%s: %w", folder, appName, err)
	}

	_, err = fmt.Fprintln(stdout, body)
	return err
}
