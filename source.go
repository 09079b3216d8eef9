package keyfile

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// readSource fetches the raw bytes behind a key file location. Locations with
// an http or https scheme are fetched over the network with the request bound
// to ctx; everything else is treated as a local path.
func readSource(ctx context.Context, location string) ([]byte, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return readRemote(ctx, location)
	}

	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("keyfile: failed to read key file: %w", err)
	}
	return data, nil
}

func readRemote(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("keyfile: invalid key file location: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("keyfile: failed to fetch key file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("keyfile: failed to fetch key file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("keyfile: failed to read key file: %w", err)
	}
	return data, nil
}
