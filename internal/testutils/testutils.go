//go:build integration

// Package testutils provides shared infrastructure for integration tests.
package testutils

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// ImageFile defines an image served by the test image server.
type ImageFile struct {
	Name string
	Data []byte
}

// GenerateImageData generates deterministic image-like data of the given
// size, prefixed with a JPEG magic number so consumers that sniff content
// types accept it.
func GenerateImageData(t *testing.T, size int) []byte {
	t.Helper()
	data := make([]byte, size)
	copy(data, []byte{0xFF, 0xD8, 0xFF, 0xE0})
	for i := 4; i < size; i++ {
		data[i] = byte(i % 256)
	}
	return data
}

// StartImageServer starts an in-process HTTP server that serves the given
// images by name. Unknown paths return 404.
func StartImageServer(t *testing.T, files []ImageFile) *httptest.Server {
	t.Helper()

	fileMap := make(map[string][]byte)
	for _, f := range files {
		fileMap["/"+f.Name] = f.Data
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, ok := fileMap[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.Write(data)
	}))
}

// ImageServerEnv contains connection information for a containerised image
// server.
type ImageServerEnv struct {
	Container testcontainers.Container
	BaseURL   string
}

// Close terminates the image server container.
func (e *ImageServerEnv) Close(ctx context.Context) error {
	if e.Container != nil {
		return e.Container.Terminate(ctx)
	}
	return nil
}

// URL returns the full URL for the named image.
func (e *ImageServerEnv) URL(name string) string {
	return e.BaseURL + "/" + name
}

// StartImageContainer starts an nginx container serving the given images as
// static files. Returns an ImageServerEnv with connection information.
func StartImageContainer(t *testing.T, ctx context.Context, files []ImageFile) *ImageServerEnv {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "nginx:alpine",
		ExposedPorts: []string{"80/tcp"},
		WaitingFor:   wait.ForHTTP("/").WithPort("80"),
	}
	for _, f := range files {
		req.Files = append(req.Files, testcontainers.ContainerFile{
			Reader:            bytes.NewReader(f.Data),
			ContainerFilePath: "/usr/share/nginx/html/" + f.Name,
			FileMode:          0o644,
		})
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("start image container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "80")
	if err != nil {
		t.Fatalf("get container port: %v", err)
	}

	return &ImageServerEnv{
		Container: container,
		BaseURL:   fmt.Sprintf("http://%s:%s", host, port.Port()),
	}
}
