//go:build integration

package fetcher

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"gocloud.dev/blob/fileblob"

	seedhttp "github.com/seedbed-io/seedbed/internal/http"
	"github.com/seedbed-io/seedbed/internal/testutils"
)

func TestFetchFromContainerisedServer(t *testing.T) {
	ctx := context.Background()

	files := []testutils.ImageFile{
		{Name: "photo_001.jpg", Data: testutils.GenerateImageData(t, 256*1024)},
		{Name: "photo_002.jpg", Data: testutils.GenerateImageData(t, 64*1024)},
	}
	env := testutils.StartImageContainer(t, ctx, files)
	defer env.Close(ctx)

	dir := t.TempDir()
	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		t.Fatalf("open bucket: %v", err)
	}
	defer bucket.Close()

	f := New(seedhttp.NewClient(seedhttp.DefaultOptions()), bucket, Options{})

	for _, file := range files {
		dest := "Users/Alice_Test/Pictures/" + file.Name
		if err := f.Fetch(ctx, env.URL(file.Name), dest); err != nil {
			t.Fatalf("fetch %s: %v", file.Name, err)
		}

		got, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(dest)))
		if err != nil {
			t.Fatalf("read destination: %v", err)
		}
		if !bytes.Equal(got, file.Data) {
			t.Errorf("%s: destination bytes differ from served bytes", file.Name)
		}
	}
}

func TestFetchMissingImageLeavesNoDestination(t *testing.T) {
	ctx := context.Background()

	env := testutils.StartImageContainer(t, ctx, []testutils.ImageFile{
		{Name: "photo_001.jpg", Data: testutils.GenerateImageData(t, 1024)},
	})
	defer env.Close(ctx)

	dir := t.TempDir()
	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		t.Fatalf("open bucket: %v", err)
	}
	defer bucket.Close()

	f := New(seedhttp.NewClient(seedhttp.DefaultOptions()), bucket, Options{})

	if err := f.Fetch(ctx, env.URL("missing.jpg"), "Users/Alice_Test/Pictures/missing.jpg"); err == nil {
		t.Fatal("expected error for missing image")
	}
	if _, err := os.Stat(filepath.Join(dir, "Users", "Alice_Test", "Pictures", "missing.jpg")); !os.IsNotExist(err) {
		t.Error("failed fetch must not leave a destination behind")
	}
}
