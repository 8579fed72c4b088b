package storage

import (
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/app/models"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBucket = "report-cache"

type fakeObject struct {
	content  []byte
	header   http.Header
	modified time.Time
}

// fakeBucket answers the handful of S3 calls the cache makes, path-style.
type fakeBucket struct {
	mu      sync.Mutex
	objects map[string]*fakeObject
	deny    bool
}

func (b *fakeBucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.deny {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/"+testBucket+"/")
	switch r.Method {
	case http.MethodPut:
		content, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		header := http.Header{}
		for key, values := range r.Header {
			if key == "Content-Type" || strings.HasPrefix(key, "X-Amz-Meta-") {
				header[key] = values
			}
		}
		b.objects[name] = &fakeObject{content: content, header: header, modified: time.Now()}
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodHead, http.MethodGet:
		object, ok := b.objects[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		for key, values := range object.header {
			w.Header()[key] = values
		}
		w.Header().Set("ETag", `"etag"`)
		w.Header().Set("Last-Modified", object.modified.UTC().Format(http.TimeFormat))
		w.Header().Set("Content-Length", strconv.Itoa(len(object.content)))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			w.Write(object.content)
		}
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (b *fakeBucket) object(name string) (*fakeObject, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	object, ok := b.objects[name]
	return object, ok
}

func (b *fakeBucket) store(name string, object *fakeObject) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[name] = object
}

func (b *fakeBucket) denyAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deny = true
}

func (b *fakeBucket) age(name string, by time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[name].modified = b.objects[name].modified.Add(-by)
}

func newCache(t *testing.T, expiry time.Duration) (contracts.ReportCache, *fakeBucket) {
	t.Helper()
	bucket := &fakeBucket{objects: map[string]*fakeObject{}}
	server := httptest.NewTLSServer(bucket)
	t.Cleanup(server.Close)

	client, err := minio.New(strings.TrimPrefix(server.URL, "https://"), &minio.Options{
		Creds:     credentials.NewStaticV4("access", "secret", ""),
		Secure:    true,
		Region:    "us-east-1",
		Transport: server.Client().Transport,
	})
	require.NoError(t, err)
	return NewMinioReportCache(client, testBucket, expiry, zap.NewNop()), bucket
}

func pdf(name string) *models.ReportFile {
	return &models.ReportFile{FileName: name, ContentType: "application/pdf", Content: []byte("%PDF-1.4 " + name)}
}

func TestMinioReportCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on empty bucket", func(t *testing.T) {
		cache, _ := newCache(t, time.Hour)

		file, ok, err := cache.Get(ctx, "p1", "r1")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, file)
	})

	t.Run("put then get", func(t *testing.T) {
		cache, bucket := newCache(t, time.Hour)
		require.NoError(t, cache.Put(ctx, "p1", "r1", pdf("blood-test.pdf")))

		_, stored := bucket.object("reports/p1/r1.pdf")
		assert.True(t, stored)

		file, ok, err := cache.Get(ctx, "p1", "r1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "blood-test.pdf", file.FileName)
		assert.Equal(t, "application/pdf", file.ContentType)
		assert.Equal(t, []byte("%PDF-1.4 blood-test.pdf"), file.Content)
	})

	t.Run("entries are not shared between users", func(t *testing.T) {
		cache, _ := newCache(t, time.Hour)
		require.NoError(t, cache.Put(ctx, "p1", "r1", pdf("mine.pdf")))

		file, ok, err := cache.Get(ctx, "p2", "r1")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, file)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		cache, bucket := newCache(t, time.Hour)
		require.NoError(t, cache.Put(ctx, "p1", "r1", pdf("old.pdf")))
		bucket.age("reports/p1/r1.pdf", 2*time.Hour)

		_, ok, err := cache.Get(ctx, "p1", "r1")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("zero expiry keeps entries", func(t *testing.T) {
		cache, bucket := newCache(t, 0)
		require.NoError(t, cache.Put(ctx, "p1", "r1", pdf("old.pdf")))
		bucket.age("reports/p1/r1.pdf", 365*24*time.Hour)

		_, ok, err := cache.Get(ctx, "p1", "r1")

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing file name falls back to the report id", func(t *testing.T) {
		cache, bucket := newCache(t, time.Hour)
		bucket.store("reports/p1/r9.pdf", &fakeObject{
			content:  []byte("%PDF"),
			header:   http.Header{"Content-Type": {"application/pdf"}},
			modified: time.Now(),
		})

		file, ok, err := cache.Get(ctx, "p1", "r9")

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "r9.pdf", file.FileName)
	})

	t.Run("storage errors surface", func(t *testing.T) {
		cache, bucket := newCache(t, time.Hour)
		bucket.denyAll()

		_, _, err := cache.Get(ctx, "p1", "r1")
		assert.Error(t, err)
		assert.Error(t, cache.Put(ctx, "p1", "r1", pdf("x.pdf")))
	})
}
